package usecase

import (
	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
)

// ServiceUseCase solo lectura: el catálogo de servicios es fijo.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// List lista el catálogo de servicios.
func (uc *ServiceUseCase) List() (*dto.ServiceListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{Items: items}, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:     s.ID,
		Name:   s.Name,
		Price:  s.Price,
		Active: s.Active,
	}
}
