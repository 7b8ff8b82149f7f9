package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// ClientRepository implementación en memoria de repository.ClientRepository.
type ClientRepository struct {
	mu    sync.RWMutex
	items []*entity.Client
	index map[string]int
}

// NewClientRepository construye el repositorio vacío.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{index: map[string]int{}}
}

func (r *ClientRepository) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *client
	r.index[client.ID] = len(r.items)
	r.items = append(r.items, &clone)
	return nil
}

func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	clone := *r.items[i]
	return &clone, nil
}

func (r *ClientRepository) Update(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[client.ID]
	if !ok {
		return errNotFound
	}
	clone := *client
	r.items[i] = &clone
	return nil
}

func (r *ClientRepository) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}
