// Package analytics contiene el resumen de negocio de la pantalla principal.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/application/stock"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
)

const dashboardRecentOrders = 5 // órdenes en el widget de recientes

// DashboardUseCase genera el resumen del día: contadores, ingresos, stock bajo
// y estado del taller. Clasificación y agregados se calculan en lectura; nada
// de esto se almacena.
type DashboardUseCase struct {
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	stockRepo       repository.StockRepository
	saleRepo        repository.SaleRepository
	serviceSaleRepo repository.ServiceSaleRepository
	orderRepo       repository.ServiceOrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
	orderRepo repository.ServiceOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		stockRepo:       stockRepo,
		saleRepo:        saleRepo,
		serviceSaleRepo: serviceSaleRepo,
		orderRepo:       orderRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	serviceSales, err := uc.serviceSaleRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalClients:   len(clients),
		TotalProducts:  len(products),
		TodayRevenue:   decimal.Zero,
		LowStock:       []dto.LowStockItemDTO{},
		OrdersByStatus: map[string]int{},
		RecentOrders:   []dto.OrderResponse{},
	}

	for _, s := range sales {
		if inRange(s.CreatedAt, todayStart, todayEnd) {
			summary.TodaySalesCount++
			summary.TodayRevenue = summary.TodayRevenue.Add(s.Total)
		}
	}
	for _, s := range serviceSales {
		if inRange(s.CreatedAt, todayStart, todayEnd) {
			summary.TodaySalesCount++
			summary.TodayRevenue = summary.TodayRevenue.Add(s.Total)
		}
	}

	for _, p := range products {
		entries, err := uc.stockRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		available := 0
		for _, e := range entries {
			available += e.Remaining
		}
		summary.TotalStockUnits += available
		if available <= stock.LowStockThreshold {
			summary.LowStock = append(summary.LowStock, dto.LowStockItemDTO{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   available,
				Critical:    available <= stock.CriticalStockThreshold,
			})
		}
	}

	for _, o := range orders {
		summary.OrdersByStatus[o.Status]++
	}
	// Las más recientes: el repo lista en orden de creación, tomamos la cola.
	start := len(orders) - dashboardRecentOrders
	if start < 0 {
		start = 0
	}
	for _, o := range orders[start:] {
		summary.RecentOrders = append(summary.RecentOrders, *toOrderResponse(o))
	}

	return summary, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func toOrderResponse(o *entity.ServiceOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                o.ID,
		ClientID:          o.ClientID,
		EntryDate:         o.EntryDate,
		Equipment:         o.Equipment,
		ReceivedBy:        o.ReceivedBy,
		DefectDescription: o.DefectDescription,
		Accessories:       o.Accessories,
		PartsValue:        o.PartsValue,
		ServiceValue:      o.ServiceValue,
		TotalValue:        o.TotalValue,
		TechnicianID:      o.TechnicianID,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
	}
}
