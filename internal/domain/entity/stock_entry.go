package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa un lote: una partida de un producto recibida con un
// precio unitario y una fecha de vencimiento propios. Los lotes nunca se
// fusionan; la disponibilidad de un producto es siempre la suma viva de
// Remaining sobre sus lotes, nunca un contador cacheado.
type StockEntry struct {
	ID         string
	ProductID  string
	Quantity   int // unidades recibidas (inmutable)
	Remaining  int // unidades aún no consumidas por salidas
	UnitPrice  decimal.Decimal
	ExpiryDate time.Time
	EntryDate  time.Time
	CreatedBy  string // UserID
}
