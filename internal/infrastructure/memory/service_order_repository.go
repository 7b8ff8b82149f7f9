package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// ServiceOrderRepository implementación en memoria de repository.ServiceOrderRepository.
type ServiceOrderRepository struct {
	mu    sync.RWMutex
	items []*entity.ServiceOrder
	index map[string]int
}

// NewServiceOrderRepository construye el repositorio vacío.
func NewServiceOrderRepository() *ServiceOrderRepository {
	return &ServiceOrderRepository{index: map[string]int{}}
}

func (r *ServiceOrderRepository) Create(order *entity.ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[order.ID] = len(r.items)
	r.items = append(r.items, cloneOrder(order))
	return nil
}

func (r *ServiceOrderRepository) GetByID(id string) (*entity.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(r.items[i]), nil
}

func (r *ServiceOrderRepository) Update(order *entity.ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[order.ID]
	if !ok {
		return errNotFound
	}
	r.items[i] = cloneOrder(order)
	return nil
}

func (r *ServiceOrderRepository) List() ([]*entity.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ServiceOrder, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func cloneOrder(o *entity.ServiceOrder) *entity.ServiceOrder {
	clone := *o
	clone.Accessories = append([]string(nil), o.Accessories...)
	return &clone
}
