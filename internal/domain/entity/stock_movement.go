package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// StockMovement registra una entrada o salida agregada de stock (auditoría del
// libro de inventario). Las salidas llevan el motivo indicado por el operador.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // entrada, salida
	Quantity  int
	Reason    string
	CreatedBy string // UserID
	CreatedAt time.Time
}
