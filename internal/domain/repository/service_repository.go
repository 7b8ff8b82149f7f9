package repository

import "github.com/asistec/taller-api/internal/domain/entity"

// ServiceRepository define el puerto de lectura del catálogo fijo de servicios.
// El catálogo se siembra al arrancar y no tiene operaciones de escritura.
type ServiceRepository interface {
	GetByID(id string) (*entity.Service, error)
	List() ([]*entity.Service, error)
}
