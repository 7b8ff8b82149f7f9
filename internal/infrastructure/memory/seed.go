package memory

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// Stores agrupa todos los repositorios en memoria del proceso.
type Stores struct {
	Users        *UserRepository
	Products     *ProductRepository
	Clients      *ClientRepository
	Services     *ServiceRepository
	Stock        *StockRepository
	Movements    *StockMovementRepository
	Sales        *SaleRepository
	ServiceSales *ServiceSaleRepository
	Orders       *ServiceOrderRepository
}

// Cuentas del juego de datos inicial.
const (
	seedProducts = 5
	seedClients  = 8

	// Email del usuario master fijo; siempre presente para poder entrar.
	MasterEmail = "admin@sistema.com"
)

// NewSeededStores construye las tiendas y las siembra con datos de ejemplo:
// un usuario master fijo más un gerente, una recepción y un técnico
// generados, cinco productos, ocho clientes y el catálogo fijo de servicios.
// Stock, ventas y órdenes empiezan vacíos. seed 0 = generador aleatorio.
func NewSeededStores(seed int64) *Stores {
	f := gofakeit.New(uint64(seed))
	now := time.Now()

	stores := &Stores{
		Users:        NewUserRepository(),
		Products:     NewProductRepository(),
		Clients:      NewClientRepository(),
		Services:     NewServiceRepository(serviceCatalog()),
		Stock:        NewStockRepository(),
		Movements:    NewStockMovementRepository(),
		Sales:        NewSaleRepository(),
		ServiceSales: NewServiceSaleRepository(),
		Orders:       NewServiceOrderRepository(),
	}

	_ = stores.Users.Create(&entity.User{
		ID:        uuid.New().String(),
		Name:      "Administrador",
		Email:     MasterEmail,
		Role:      entity.RoleMaster,
		Active:    true,
		CreatedAt: now,
	})
	for _, role := range []string{entity.RoleGerente, entity.RoleRecepcion, entity.RoleTecnico} {
		_ = stores.Users.Create(&entity.User{
			ID:        uuid.New().String(),
			Name:      f.Name(),
			Email:     f.Email(),
			Role:      role,
			Active:    true,
			CreatedAt: f.DateRange(now.AddDate(-1, 0, 0), now),
		})
	}

	for i := 0; i < seedProducts; i++ {
		_ = stores.Products.Create(&entity.Product{
			ID:          uuid.New().String(),
			Name:        f.ProductName(),
			Category:    f.ProductCategory(),
			Description: f.ProductDescription(),
			Active:      true,
			CreatedAt:   f.DateRange(now.AddDate(-1, 0, 0), now),
		})
	}

	for i := 0; i < seedClients; i++ {
		_ = stores.Clients.Create(&entity.Client{
			ID:        uuid.New().String(),
			Name:      f.Name(),
			Phone:     f.Phone(),
			Address:   f.Address().Address,
			Email:     f.Email(),
			Active:    true,
			CreatedAt: f.DateRange(now.AddDate(-1, 0, 0), now),
		})
	}

	return stores
}

// serviceCatalog catálogo fijo de servicios de mostrador con sus precios.
func serviceCatalog() []*entity.Service {
	return []*entity.Service{
		{ID: "srv-1", Name: "Fotocopia", Price: decimal.NewFromFloat(0.50), Active: true},
		{ID: "srv-2", Name: "Acceso a Internet", Price: decimal.NewFromFloat(3.00), Active: true},
		{ID: "srv-3", Name: "Emisión de documentos", Price: decimal.NewFromFloat(5.00), Active: true},
		{ID: "srv-4", Name: "Impresión", Price: decimal.NewFromFloat(1.00), Active: true},
	}
}
