package entity

import "time"

// Product representa un producto del catálogo de la tienda.
// El precio no vive aquí: cada lote de stock (StockEntry) trae su propio UnitPrice.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string // opcional
	Active      bool
	CreatedAt   time.Time
}
