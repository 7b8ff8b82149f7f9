package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de productos en una venta. El precio unitario lo
// aporta el llamador (normalmente copiado del lote elegido en pantalla).
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest alta de venta de productos. Items puede ser vacío
// (venta de total cero).
type CreateSaleRequest struct {
	ClientID string            `json:"client_id" validate:"required"`
	Items    []SaleItemRequest `json:"items" validate:"dive"`
}

// SaleItemResponse línea de una venta registrada.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"client_id"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedBy string             `json:"created_by"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}

// CreateServiceSaleRequest alta de venta de servicio de mostrador.
type CreateServiceSaleRequest struct {
	ClientID  string `json:"client_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// ServiceSaleResponse venta de servicio registrada.
type ServiceSaleResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

// ServiceSaleListResponse listado de ventas de servicio.
type ServiceSaleListResponse struct {
	Items []ServiceSaleResponse `json:"items"`
}

// ServiceResponse servicio del catálogo fijo.
type ServiceResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

// ServiceListResponse catálogo de servicios.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
}
