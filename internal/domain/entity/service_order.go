package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Equipos admitidos en una orden de servicio.
const (
	EquipmentPC     = "PC"
	EquipmentLaptop = "Laptop"
)

// ValidEquipment indica si el tipo de equipo es uno de los admitidos.
func ValidEquipment(eq string) bool {
	return eq == EquipmentPC || eq == EquipmentLaptop
}

// ServiceOrder representa un ticket de reparación: ingreso del equipo,
// valoración (repuestos + mano de obra) y asignación a un técnico.
// TotalValue siempre es PartsValue + ServiceValue.
type ServiceOrder struct {
	ID                string
	ClientID          string
	EntryDate         time.Time
	Equipment         string // PC, Laptop
	ReceivedBy        string // UserID de quien recibió el equipo
	DefectDescription string
	Accessories       []string
	PartsValue        decimal.Decimal
	ServiceValue      decimal.Decimal
	TotalValue        decimal.Decimal
	TechnicianID      string // vacío hasta asignar
	Status            string // ver internal/domain/workshop
	CreatedAt         time.Time
}
