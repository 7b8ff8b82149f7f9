package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO producto por debajo del umbral de stock bajo.
type LowStockItemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Available   int    `json:"available"`
	Critical    bool   `json:"critical"` // disponibilidad <= 2
}

// DashboardSummaryDTO resumen de negocio para la pantalla principal.
type DashboardSummaryDTO struct {
	TotalClients     int               `json:"total_clients"`
	TotalProducts    int               `json:"total_products"`
	TotalStockUnits  int               `json:"total_stock_units"`
	TodaySalesCount  int               `json:"today_sales_count"`
	TodayRevenue     decimal.Decimal   `json:"today_revenue"` // ventas de productos + servicios
	LowStock         []LowStockItemDTO `json:"low_stock"`
	OrdersByStatus   map[string]int    `json:"orders_by_status"`
	RecentOrders     []OrderResponse   `json:"recent_orders"`
}
