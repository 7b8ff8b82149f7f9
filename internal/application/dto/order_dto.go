package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest ingreso de un equipo al taller.
type CreateOrderRequest struct {
	ClientID          string          `json:"client_id" validate:"required"`
	EntryDate         time.Time       `json:"entry_date" validate:"required"`
	Equipment         string          `json:"equipment" validate:"required,oneof=PC Laptop"`
	DefectDescription string          `json:"defect_description" validate:"required"`
	Accessories       []string        `json:"accessories"`
	PartsValue        decimal.Decimal `json:"parts_value"`
	ServiceValue      decimal.Decimal `json:"service_value"`
}

// UpdateOrderRequest actualización parcial de una orden; los campos nil no se
// tocan. Status solo puede avanzar en la secuencia fija, nunca retroceder.
type UpdateOrderRequest struct {
	DefectDescription *string          `json:"defect_description"`
	Accessories       *[]string        `json:"accessories"`
	PartsValue        *decimal.Decimal `json:"parts_value"`
	ServiceValue      *decimal.Decimal `json:"service_value"`
	Status            *string          `json:"status"`
}

// AssignTechnicianRequest asignación (o reasignación) de técnico.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" validate:"required"`
}

// OrderResponse orden de servicio registrada.
type OrderResponse struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	EntryDate         time.Time       `json:"entry_date"`
	Equipment         string          `json:"equipment"`
	ReceivedBy        string          `json:"received_by"`
	DefectDescription string          `json:"defect_description"`
	Accessories       []string        `json:"accessories"`
	PartsValue        decimal.Decimal `json:"parts_value"`
	ServiceValue      decimal.Decimal `json:"service_value"`
	TotalValue        decimal.Decimal `json:"total_value"`
	TechnicianID      string          `json:"technician_id,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderListResponse listado de órdenes de servicio.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
