package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest alta de un lote de stock.
type RegisterEntryRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ExpiryDate time.Time       `json:"expiry_date" validate:"required"`
}

// RemoveStockRequest salida agregada de stock con motivo (merma, daño, etc.).
type RemoveStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
}

// StockEntryResponse representación de un lote.
type StockEntryResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Remaining  int             `json:"remaining"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ExpiryDate time.Time       `json:"expiry_date"`
	EntryDate  time.Time       `json:"entry_date"`
	CreatedBy  string          `json:"created_by"`
}

// ProductStockResponse disponibilidad agregada de un producto, con la
// clasificación de stock bajo calculada en lectura (nunca almacenada).
type ProductStockResponse struct {
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Available   int                  `json:"available"`
	StockValue  decimal.Decimal      `json:"stock_value"`
	LowStock    bool                 `json:"low_stock"`  // disponibilidad <= 5
	Critical    bool                 `json:"critical"`   // disponibilidad <= 2
	Entries     []StockEntryResponse `json:"entries,omitempty"`
}

// StockSummaryResponse resumen de stock por producto.
type StockSummaryResponse struct {
	Items []ProductStockResponse `json:"items"`
}

// MovementResponse representación de un movimiento de stock.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
