// Package stock implementa el libro de inventario: lotes, disponibilidad
// agregada, salidas con política FIFO y clasificación de stock bajo.
package stock

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
)

// Umbrales de la clasificación de stock bajo (solo lectura, nunca almacenada).
const (
	LowStockThreshold      = 5
	CriticalStockThreshold = 2
)

// UseCase casos de uso del libro de inventario.
//
// La disponibilidad de un producto es siempre la suma viva de Remaining sobre
// sus lotes; no existe un contador cacheado que mantener sincronizado.
type UseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{stockRepo: stockRepo, movementRepo: movementRepo, productRepo: productRepo}
}

// RegisterEntry registra un lote nuevo. Nunca se fusiona con lotes previos del
// mismo producto. El producto debe existir y estar activo.
func (uc *UseCase) RegisterEntry(createdBy string, in dto.RegisterEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ExpiryDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Active {
		return nil, domain.ErrInactive
	}

	now := time.Now()
	entry := &entity.StockEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Remaining:  in.Quantity,
		UnitPrice:  in.UnitPrice,
		ExpiryDate: in.ExpiryDate,
		EntryDate:  now,
		CreatedBy:  createdBy,
	}
	if err := uc.stockRepo.Create(entry); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      entity.MovementEntrada,
		Quantity:  in.Quantity,
		CreatedBy: createdBy,
		CreatedAt: now,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Available devuelve la disponibilidad agregada del producto: suma de
// Remaining sobre todos sus lotes. Producto desconocido → ErrNotFound.
func (uc *UseCase) Available(productID string) (int, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	entries, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return 0, err
	}
	return sumRemaining(entries), nil
}

// Remove registra una salida agregada de stock con motivo, consumiendo lotes
// con política FIFO por fecha de vencimiento: el lote que vence antes se
// consume primero (empate: orden de entrada). Si la cantidad pedida supera la
// disponibilidad, la operación falla con ErrInsufficientStock y no toca nada.
func (uc *UseCase) Remove(createdBy string, in dto.RemoveStockRequest) error {
	if in.Quantity <= 0 || in.Reason == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	entries, err := uc.stockRepo.ListByProduct(in.ProductID)
	if err != nil {
		return err
	}
	if in.Quantity > sumRemaining(entries) {
		return domain.ErrInsufficientStock
	}

	// FIFO por vencimiento. ListByProduct devuelve orden de creación, así que
	// el sort estable preserva ese orden entre lotes con el mismo vencimiento.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ExpiryDate.Before(entries[j].ExpiryDate)
	})
	pending := in.Quantity
	for _, lot := range entries {
		if pending == 0 {
			break
		}
		if lot.Remaining == 0 {
			continue
		}
		take := lot.Remaining
		if take > pending {
			take = pending
		}
		lot.Remaining -= take
		pending -= take
		if err := uc.stockRepo.Update(lot); err != nil {
			return err
		}
	}

	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      entity.MovementSalida,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	return uc.movementRepo.Create(movement)
}

// Summary devuelve la disponibilidad agregada por producto, con valor de
// stock (Σ Remaining × UnitPrice por lote) y clasificación de stock bajo.
func (uc *UseCase) Summary() (*dto.StockSummaryResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockResponse, 0, len(products))
	for _, p := range products {
		entries, err := uc.stockRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		available := sumRemaining(entries)
		value := decimal.Zero
		entryDTOs := make([]dto.StockEntryResponse, 0, len(entries))
		for _, e := range entries {
			value = value.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Remaining))))
			entryDTOs = append(entryDTOs, *toEntryResponse(e))
		}
		items = append(items, dto.ProductStockResponse{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   available,
			StockValue:  value,
			LowStock:    available <= LowStockThreshold,
			Critical:    available <= CriticalStockThreshold,
			Entries:     entryDTOs,
		})
	}
	return &dto.StockSummaryResponse{Items: items}, nil
}

// Movements lista la auditoría de movimientos en orden de creación.
func (uc *UseCase) Movements() (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{Items: items}, nil
}

func sumRemaining(entries []*entity.StockEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Remaining
	}
	return total
}

func toEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.StockEntryResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		Quantity:   e.Quantity,
		Remaining:  e.Remaining,
		UnitPrice:  e.UnitPrice,
		ExpiryDate: e.ExpiryDate,
		EntryDate:  e.EntryDate,
		CreatedBy:  e.CreatedBy,
	}
}
