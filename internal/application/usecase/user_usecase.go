package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/asistec/taller-api/internal/application/auth"
	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
)

// UserUseCase alta, listado y activación/desactivación de usuarios.
// No hay borrado: las referencias débiles (createdBy, technicianId) de los
// registros históricos deben seguir resolviendo siempre.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario activo. El rol debe ser uno de los cuatro conocidos.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ToggleActive invierte el flag activo. Id desconocido → ErrNotFound (aquí no
// hay no-op silencioso: el error se reporta siempre).
func (uc *UserUseCase) ToggleActive(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Active = !user.Active
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista los usuarios en orden de creación.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}
