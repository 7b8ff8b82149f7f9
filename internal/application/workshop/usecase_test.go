package workshop_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/application/workshop"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	domainworkshop "github.com/asistec/taller-api/internal/domain/workshop"
	"github.com/asistec/taller-api/internal/infrastructure/memory"
)

const receptionID = "user-recepcion"

type fixture struct {
	uc      *workshop.UseCase
	clients *memory.ClientRepository
	users   *memory.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clients := memory.NewClientRepository()
	users := memory.NewUserRepository()
	return &fixture{
		uc:      workshop.NewUseCase(memory.NewServiceOrderRepository(), clients, users),
		clients: clients,
		users:   users,
	}
}

func (f *fixture) createClient(t *testing.T, active bool) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, f.clients.Create(&entity.Client{
		ID: id, Name: "Cliente", Phone: "555", Address: "Calle 1", Email: "c@x.com",
		Active: active, CreatedAt: time.Now(),
	}))
	return id
}

func (f *fixture) createUser(t *testing.T, role string, active bool) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, f.users.Create(&entity.User{
		ID: id, Name: "Usuario", Email: id + "@x.com", Role: role, Active: active, CreatedAt: time.Now(),
	}))
	return id
}

func orderReq(clientID string, parts, service float64) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClientID:          clientID,
		EntryDate:         time.Now(),
		Equipment:         entity.EquipmentPC,
		DefectDescription: "no enciende",
		Accessories:       []string{"Cargador", "Cable"},
		PartsValue:        decimal.NewFromFloat(parts),
		ServiceValue:      decimal.NewFromFloat(service),
	}
}

// Escenario de referencia: la orden nace en recibido con el total calculado,
// y asignar técnico la pasa a en_proceso.
func TestCreateOrder_YAsignarTecnico(t *testing.T) {
	f := newFixture(t)
	clientID := f.createClient(t, true)
	techID := f.createUser(t, entity.RoleTecnico, true)

	order, err := f.uc.CreateOrder(receptionID, orderReq(clientID, 50, 30))
	require.NoError(t, err)
	assert.Equal(t, domainworkshop.StatusRecibido, order.Status)
	assert.True(t, order.TotalValue.Equal(decimal.NewFromFloat(80)))
	assert.Equal(t, receptionID, order.ReceivedBy)
	assert.Empty(t, order.TechnicianID)

	updated, err := f.uc.AssignTechnician(order.ID, techID)
	require.NoError(t, err)
	assert.Equal(t, domainworkshop.StatusEnProceso, updated.Status)
	assert.Equal(t, techID, updated.TechnicianID)
}

// Reasignar con otro técnico simplemente sobreescribe.
func TestAssignTechnician_Reasignacion(t *testing.T) {
	f := newFixture(t)
	clientID := f.createClient(t, true)
	tech1 := f.createUser(t, entity.RoleTecnico, true)
	tech2 := f.createUser(t, entity.RoleTecnico, true)

	order, err := f.uc.CreateOrder(receptionID, orderReq(clientID, 0, 0))
	require.NoError(t, err)

	_, err = f.uc.AssignTechnician(order.ID, tech1)
	require.NoError(t, err)
	updated, err := f.uc.AssignTechnician(order.ID, tech2)
	require.NoError(t, err)
	assert.Equal(t, tech2, updated.TechnicianID)
	assert.Equal(t, domainworkshop.StatusEnProceso, updated.Status)
}

// Solo usuarios activos con rol tecnico pueden recibir órdenes.
func TestAssignTechnician_Rechazos(t *testing.T) {
	f := newFixture(t)
	clientID := f.createClient(t, true)
	reception := f.createUser(t, entity.RoleRecepcion, true)
	inactiveTech := f.createUser(t, entity.RoleTecnico, false)

	order, err := f.uc.CreateOrder(receptionID, orderReq(clientID, 10, 5))
	require.NoError(t, err)

	_, err = f.uc.AssignTechnician(order.ID, reception)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol distinto de tecnico")

	_, err = f.uc.AssignTechnician(order.ID, inactiveTech)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "técnico inactivo")

	_, err = f.uc.AssignTechnician(order.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.AssignTechnician("no-existe", reception)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La orden queda intacta tras los rechazos.
	got, err := f.uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domainworkshop.StatusRecibido, got.Status)
	assert.Empty(t, got.TechnicianID)
}

func TestCreateOrder_Validaciones(t *testing.T) {
	f := newFixture(t)
	activeClient := f.createClient(t, true)
	inactiveClient := f.createClient(t, false)

	badEquipment := orderReq(activeClient, 0, 0)
	badEquipment.Equipment = "Tablet"

	noDefect := orderReq(activeClient, 0, 0)
	noDefect.DefectDescription = ""

	negativeParts := orderReq(activeClient, -1, 0)

	cases := []struct {
		name string
		req  dto.CreateOrderRequest
		want error
	}{
		{"equipo no admitido", badEquipment, domain.ErrInvalidInput},
		{"defecto vacío", noDefect, domain.ErrInvalidInput},
		{"valor de repuestos negativo", negativeParts, domain.ErrInvalidInput},
		{"cliente desconocido", orderReq("no-existe", 0, 0), domain.ErrNotFound},
		{"cliente inactivo", orderReq(inactiveClient, 0, 0), domain.ErrInactive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateOrder(receptionID, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// El update parcial recalcula TotalValue y solo deja avanzar el estado.
func TestUpdateOrder(t *testing.T) {
	f := newFixture(t)
	clientID := f.createClient(t, true)

	order, err := f.uc.CreateOrder(receptionID, orderReq(clientID, 50, 30))
	require.NoError(t, err)

	newParts := decimal.NewFromFloat(70)
	quoted := domainworkshop.StatusCotizado
	updated, err := f.uc.UpdateOrder(order.ID, dto.UpdateOrderRequest{
		PartsValue: &newParts,
		Status:     &quoted,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalValue.Equal(decimal.NewFromFloat(100)))
	assert.Equal(t, domainworkshop.StatusCotizado, updated.Status)

	// Retroceder el estado se rechaza y no se aplica ningún campo (todo o nada).
	back := domainworkshop.StatusRecibido
	otherParts := decimal.NewFromFloat(5)
	_, err = f.uc.UpdateOrder(order.ID, dto.UpdateOrderRequest{
		PartsValue: &otherParts,
		Status:     &back,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.PartsValue.Equal(decimal.NewFromFloat(70)))
	assert.Equal(t, domainworkshop.StatusCotizado, got.Status)

	_, err = f.uc.UpdateOrder("no-existe", dto.UpdateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
