// Package sales registra ventas de productos y de servicios de mostrador.
//
// Vender un producto NO descuenta stock: el libro de inventario solo cambia
// con entradas y salidas explícitas, nunca desde una venta.
package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
)

// UseCase casos de uso de ventas.
type UseCase struct {
	saleRepo        repository.SaleRepository
	serviceSaleRepo repository.ServiceSaleRepository
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	serviceRepo     repository.ServiceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
) *UseCase {
	return &UseCase{
		saleRepo:        saleRepo,
		serviceSaleRepo: serviceSaleRepo,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
	}
}

// RecordSale registra una venta de productos. El precio unitario de cada línea
// lo aporta el llamador; total de línea = cantidad × precio y el total de la
// venta es la suma de líneas (cero líneas → total 0, válido). Cliente o
// producto inactivos no son seleccionables.
func (uc *UseCase) RecordSale(createdBy string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !client.Active {
		return nil, domain.ErrInactive
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	total := decimal.Zero
	for _, li := range in.Items {
		if li.Quantity <= 0 || li.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(li.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if !product.Active {
			return nil, domain.ErrInactive
		}
		lineTotal := li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
		items = append(items, entity.SaleItem{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Items:     items,
		Total:     total,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// RecordServiceSale registra una venta de servicio. El total se congela con el
// precio vigente del servicio al momento de la llamada.
func (uc *UseCase) RecordServiceSale(createdBy string, in dto.CreateServiceSaleRequest) (*dto.ServiceSaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !client.Active {
		return nil, domain.ErrInactive
	}
	service, err := uc.serviceRepo.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if !service.Active {
		return nil, domain.ErrInactive
	}

	sale := &entity.ServiceSale{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		Quantity:  in.Quantity,
		Total:     service.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.serviceSaleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toServiceSaleResponse(sale), nil
}

// ListSales lista las ventas de productos en orden de creación.
func (uc *UseCase) ListSales() (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// ListServiceSales lista las ventas de servicios en orden de creación.
func (uc *UseCase) ListServiceSales() (*dto.ServiceSaleListResponse, error) {
	list, err := uc.serviceSaleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceSaleResponse(s))
	}
	return &dto.ServiceSaleListResponse{Items: items}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, li := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		Items:     items,
		Total:     s.Total,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}

func toServiceSaleResponse(s *entity.ServiceSale) *dto.ServiceSaleResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceSaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		ServiceID: s.ServiceID,
		Quantity:  s.Quantity,
		Total:     s.Total,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}
