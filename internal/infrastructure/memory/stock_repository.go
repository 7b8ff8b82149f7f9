package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// StockRepository implementación en memoria de repository.StockRepository.
type StockRepository struct {
	mu    sync.RWMutex
	items []*entity.StockEntry
	index map[string]int
}

// NewStockRepository construye el repositorio vacío.
func NewStockRepository() *StockRepository {
	return &StockRepository{index: map[string]int{}}
}

func (r *StockRepository) Create(entry *entity.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.index[entry.ID] = len(r.items)
	r.items = append(r.items, &clone)
	return nil
}

// ListByProduct devuelve los lotes del producto en orden de creación.
func (r *StockRepository) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.StockEntry
	for _, e := range r.items {
		if e.ProductID == productID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *StockRepository) Update(entry *entity.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[entry.ID]
	if !ok {
		return errNotFound
	}
	clone := *entry
	r.items[i] = &clone
	return nil
}

func (r *StockRepository) List() ([]*entity.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockEntry, 0, len(r.items))
	for _, e := range r.items {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

// StockMovementRepository implementación en memoria de la auditoría de
// movimientos. Solo alta y listado: los movimientos no se editan.
type StockMovementRepository struct {
	mu    sync.RWMutex
	items []*entity.StockMovement
}

// NewStockMovementRepository construye el repositorio vacío.
func NewStockMovementRepository() *StockMovementRepository {
	return &StockMovementRepository{}
}

func (r *StockMovementRepository) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *movement
	r.items = append(r.items, &clone)
	return nil
}

func (r *StockMovementRepository) List() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockMovement, 0, len(r.items))
	for _, m := range r.items {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}
