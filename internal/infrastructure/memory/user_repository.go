package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	items []*entity.User
	index map[string]int
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{index: map[string]int{}}
}

func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.index[user.ID] = len(r.items)
	r.items = append(r.items, &clone)
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	clone := *r.items[i]
	return &clone, nil
}

func (r *UserRepository) FindActiveByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email && u.Active {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[user.ID]
	if !ok {
		return errNotFound
	}
	clone := *user
	r.items[i] = &clone
	return nil
}

func (r *UserRepository) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}
