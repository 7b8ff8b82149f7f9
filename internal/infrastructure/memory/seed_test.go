package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/infrastructure/memory"
)

func TestNewSeededStores_DatosIniciales(t *testing.T) {
	stores := memory.NewSeededStores(42)

	// Usuario master fijo, siempre presente y activo.
	master, err := stores.Users.FindActiveByEmail(memory.MasterEmail)
	require.NoError(t, err)
	require.NotNil(t, master)
	assert.Equal(t, entity.RoleMaster, master.Role)
	assert.Equal(t, "Administrador", master.Name)

	// Un usuario por cada rol conocido.
	users, err := stores.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 4)
	roles := make(map[string]int)
	for _, u := range users {
		roles[u.Role]++
		assert.True(t, u.Active)
	}
	assert.Equal(t, 1, roles[entity.RoleMaster])
	assert.Equal(t, 1, roles[entity.RoleGerente])
	assert.Equal(t, 1, roles[entity.RoleRecepcion])
	assert.Equal(t, 1, roles[entity.RoleTecnico])

	products, err := stores.Products.List()
	require.NoError(t, err)
	assert.Len(t, products, 5)

	clients, err := stores.Clients.List()
	require.NoError(t, err)
	assert.Len(t, clients, 8)

	// Catálogo fijo de servicios con precios conocidos.
	services, err := stores.Services.List()
	require.NoError(t, err)
	require.Len(t, services, 4)
	foto, err := stores.Services.GetByID("srv-1")
	require.NoError(t, err)
	require.NotNil(t, foto)
	assert.Equal(t, "Fotocopia", foto.Name)
	assert.True(t, decimal.NewFromFloat(0.50).Equal(foto.Price))

	// Stock, ventas y órdenes empiezan vacíos.
	entries, err := stores.Stock.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
	sales, err := stores.Sales.List()
	require.NoError(t, err)
	assert.Empty(t, sales)
	orders, err := stores.Orders.List()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// Misma semilla ⇒ mismos datos generados.
func TestNewSeededStores_Reproducible(t *testing.T) {
	a := memory.NewSeededStores(7)
	b := memory.NewSeededStores(7)

	ua, err := a.Users.List()
	require.NoError(t, err)
	ub, err := b.Users.List()
	require.NoError(t, err)
	require.Len(t, ub, len(ua))
	for i := range ua {
		assert.Equal(t, ua[i].Name, ub[i].Name)
		assert.Equal(t, ua[i].Email, ub[i].Email)
	}

	pa, err := a.Products.List()
	require.NoError(t, err)
	pb, err := b.Products.List()
	require.NoError(t, err)
	require.Len(t, pb, len(pa))
	for i := range pa {
		assert.Equal(t, pa[i].Name, pb[i].Name)
	}
}

// Las lecturas devuelven copias: mutar el resultado no toca la tienda.
func TestRepos_LecturasSonCopias(t *testing.T) {
	stores := memory.NewSeededStores(1)

	products, err := stores.Products.List()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	original := products[0].Name
	products[0].Name = "mutado"

	again, err := stores.Products.GetByID(products[0].ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, original, again.Name)
}
