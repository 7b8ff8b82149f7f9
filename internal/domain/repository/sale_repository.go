package repository

import "github.com/asistec/taller-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas nunca se editan ni se borran: solo alta y listado.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
}

// ServiceSaleRepository define el puerto de persistencia para ServiceSale.
type ServiceSaleRepository interface {
	Create(sale *entity.ServiceSale) error
	List() ([]*entity.ServiceSale, error)
}
