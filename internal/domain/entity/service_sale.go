package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceSale representa una venta de servicio de mostrador.
// Total = precio del servicio al momento de la venta × Quantity; un cambio de
// precio posterior no afecta ventas ya registradas.
type ServiceSale struct {
	ID        string
	ClientID  string
	ServiceID string
	Quantity  int
	Total     decimal.Decimal
	CreatedBy string // UserID
	CreatedAt time.Time
}
