package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// ServiceRepository implementación en memoria del catálogo fijo de servicios.
// Solo lectura tras la siembra inicial.
type ServiceRepository struct {
	mu    sync.RWMutex
	items []*entity.Service
	index map[string]int
}

// NewServiceRepository construye el repositorio con el catálogo indicado.
func NewServiceRepository(catalog []*entity.Service) *ServiceRepository {
	r := &ServiceRepository{index: map[string]int{}}
	for _, s := range catalog {
		clone := *s
		r.index[s.ID] = len(r.items)
		r.items = append(r.items, &clone)
	}
	return r
}

func (r *ServiceRepository) GetByID(id string) (*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	clone := *r.items[i]
	return &clone, nil
}

func (r *ServiceRepository) List() ([]*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Service, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}
