package memory

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// SaleRepository implementación en memoria de repository.SaleRepository.
// Solo alta y listado: las ventas nunca se editan ni se borran.
type SaleRepository struct {
	mu    sync.RWMutex
	items []*entity.Sale
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, cloneSale(sale))
	return nil
}

func (r *SaleRepository) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, cloneSale(s))
	}
	return out, nil
}

func cloneSale(s *entity.Sale) *entity.Sale {
	clone := *s
	clone.Items = append([]entity.SaleItem(nil), s.Items...)
	return &clone
}

// ServiceSaleRepository implementación en memoria de repository.ServiceSaleRepository.
type ServiceSaleRepository struct {
	mu    sync.RWMutex
	items []*entity.ServiceSale
}

// NewServiceSaleRepository construye el repositorio vacío.
func NewServiceSaleRepository() *ServiceSaleRepository {
	return &ServiceSaleRepository{}
}

func (r *ServiceSaleRepository) Create(sale *entity.ServiceSale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *sale
	r.items = append(r.items, &clone)
	return nil
}

func (r *ServiceSaleRepository) List() ([]*entity.ServiceSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ServiceSale, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}
