package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta de productos. Total = Quantity × UnitPrice.
type SaleItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Sale representa una venta de productos a un cliente.
// Total siempre es la suma de los totales de línea. Vender no descuenta stock:
// el libro de inventario y las ventas se llevan por separado (ver DESIGN.md).
type Sale struct {
	ID        string
	ClientID  string
	Items     []SaleItem
	Total     decimal.Decimal
	CreatedBy string // UserID
	CreatedAt time.Time
}
