package repository

import "github.com/asistec/taller-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para los lotes (StockEntry).
type StockRepository interface {
	Create(entry *entity.StockEntry) error
	// ListByProduct devuelve los lotes del producto en orden de creación.
	ListByProduct(productID string) ([]*entity.StockEntry, error)
	Update(entry *entity.StockEntry) error
	List() ([]*entity.StockEntry, error)
}

// StockMovementRepository define el puerto de persistencia para la auditoría
// de movimientos de stock (entradas y salidas agregadas).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
}
