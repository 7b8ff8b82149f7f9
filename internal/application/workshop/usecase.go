// Package workshop (aplicación) gestiona las órdenes de servicio del taller:
// ingreso del equipo, valoración, asignación de técnico y avance de estado.
package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
	domainworkshop "github.com/asistec/taller-api/internal/domain/workshop"
)

// UseCase casos de uso de órdenes de servicio.
type UseCase struct {
	orderRepo  repository.ServiceOrderRepository
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.ServiceOrderRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{orderRepo: orderRepo, clientRepo: clientRepo, userRepo: userRepo}
}

// CreateOrder ingresa un equipo al taller. La orden siempre nace en recibido y
// TotalValue se calcula de inmediato como PartsValue + ServiceValue.
func (uc *UseCase) CreateOrder(receivedBy string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidEquipment(in.Equipment) || in.DefectDescription == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PartsValue.LessThan(decimal.Zero) || in.ServiceValue.LessThan(decimal.Zero) {
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

	accessories := in.Accessories
	if accessories == nil {
		accessories = []string{}
	}
	order := &entity.ServiceOrder{
		ID:                uuid.New().String(),
		ClientID:          in.ClientID,
		EntryDate:         in.EntryDate,
		Equipment:         in.Equipment,
		ReceivedBy:        receivedBy,
		DefectDescription: in.DefectDescription,
		Accessories:       accessories,
		PartsValue:        in.PartsValue,
		ServiceValue:      in.ServiceValue,
		TotalValue:        in.PartsValue.Add(in.ServiceValue),
		Status:            domainworkshop.StatusRecibido,
		CreatedAt:         time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AssignTechnician fija el técnico de la orden y pasa el estado a en_proceso,
// sea cual sea el estado previo. El técnico debe ser un usuario activo con rol
// tecnico. Reasignar con otro técnico simplemente sobreescribe.
func (uc *UseCase) AssignTechnician(orderID, technicianID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	tech, err := uc.userRepo.GetByID(technicianID)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, domain.ErrNotFound
	}
	if tech.Role != entity.RoleTecnico || !tech.Active {
		return nil, domain.ErrInvalidInput
	}

	order.TechnicianID = technicianID
	order.Status = domainworkshop.StatusEnProceso
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateOrder fusiona los campos no nil sobre la orden (todo o nada) y
// recalcula TotalValue si cambió la valoración. El estado solo puede avanzar
// en la secuencia fija. Id desconocido → ErrNotFound.
func (uc *UseCase) UpdateOrder(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// Validar antes de tocar nada: update todo o nada.
	if in.PartsValue != nil && in.PartsValue.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ServiceValue != nil && in.ServiceValue.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !domainworkshop.CanAdvance(order.Status, *in.Status) {
		return nil, domain.ErrInvalidInput
	}

	if in.DefectDescription != nil {
		order.DefectDescription = *in.DefectDescription
	}
	if in.Accessories != nil {
		order.Accessories = *in.Accessories
	}
	if in.PartsValue != nil {
		order.PartsValue = *in.PartsValue
	}
	if in.ServiceValue != nil {
		order.ServiceValue = *in.ServiceValue
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	order.TotalValue = order.PartsValue.Add(order.ServiceValue)
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista las órdenes en orden de creación.
func (uc *UseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

func toOrderResponse(o *entity.ServiceOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                o.ID,
		ClientID:          o.ClientID,
		EntryDate:         o.EntryDate,
		Equipment:         o.Equipment,
		ReceivedBy:        o.ReceivedBy,
		DefectDescription: o.DefectDescription,
		Accessories:       o.Accessories,
		PartsValue:        o.PartsValue,
		ServiceValue:      o.ServiceValue,
		TotalValue:        o.TotalValue,
		TechnicianID:      o.TechnicianID,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
	}
}
