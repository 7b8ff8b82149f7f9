package entity

import "github.com/shopspring/decimal"

// Service representa un servicio de mostrador con precio fijo (fotocopia, impresión...).
// Catálogo fijo sembrado al arrancar; no es editable por el usuario.
type Service struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Active bool
}
