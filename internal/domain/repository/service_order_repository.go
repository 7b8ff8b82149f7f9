package repository

import "github.com/asistec/taller-api/internal/domain/entity"

// ServiceOrderRepository define el puerto de persistencia para ServiceOrder.
type ServiceOrderRepository interface {
	Create(order *entity.ServiceOrder) error
	GetByID(id string) (*entity.ServiceOrder, error)
	Update(order *entity.ServiceOrder) error
	List() ([]*entity.ServiceOrder, error)
}
