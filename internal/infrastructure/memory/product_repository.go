package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	mu    sync.RWMutex
	items []*entity.Product
	index map[string]int
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{index: map[string]int{}}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.index[product.ID] = len(r.items)
	r.items = append(r.items, &clone)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	clone := *r.items[i]
	return &clone, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[product.ID]
	if !ok {
		return errNotFound
	}
	clone := *product
	r.items[i] = &clone
	return nil
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}
