package stock_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/application/stock"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/infrastructure/memory"
)

const testUserID = "user-1"

func newFixture(t *testing.T) (*stock.UseCase, *memory.ProductRepository, *memory.StockMovementRepository) {
	t.Helper()
	products := memory.NewProductRepository()
	entries := memory.NewStockRepository()
	movements := memory.NewStockMovementRepository()
	return stock.NewUseCase(entries, movements, products), products, movements
}

func createProduct(t *testing.T, repo *memory.ProductRepository, name string, active bool) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, repo.Create(&entity.Product{
		ID:        id,
		Name:      name,
		Category:  "Repuestos",
		Active:    active,
		CreatedAt: time.Now(),
	}))
	return id
}

func entryReq(productID string, qty int, price float64, expiryDays int) dto.RegisterEntryRequest {
	return dto.RegisterEntryRequest{
		ProductID:  productID,
		Quantity:   qty,
		UnitPrice:  decimal.NewFromFloat(price),
		ExpiryDate: time.Now().AddDate(0, 0, expiryDays),
	}
}

// La disponibilidad es siempre la suma viva de Remaining sobre los lotes:
// N entradas suman, y nada más que una salida exitosa descuenta.
func TestAvailable_SumaDeEntradas(t *testing.T) {
	uc, products, _ := newFixture(t)
	productID := createProduct(t, products, "Memoria RAM", true)

	for _, qty := range []int{3, 7, 5} {
		_, err := uc.RegisterEntry(testUserID, entryReq(productID, qty, 10.0, 30))
		require.NoError(t, err)
	}

	available, err := uc.Available(productID)
	require.NoError(t, err)
	assert.Equal(t, 15, available)
}

// Escenario de referencia: entrada de 10, salida de 4, intento de 10 sobre 6.
func TestRemove_EscenarioCable(t *testing.T) {
	uc, products, _ := newFixture(t)
	productID := createProduct(t, products, "Cable", true)

	_, err := uc.RegisterEntry(testUserID, entryReq(productID, 10, 2.50, 30))
	require.NoError(t, err)

	available, err := uc.Available(productID)
	require.NoError(t, err)
	assert.Equal(t, 10, available)

	err = uc.Remove(testUserID, dto.RemoveStockRequest{ProductID: productID, Quantity: 4, Reason: "dañado"})
	require.NoError(t, err)

	available, err = uc.Available(productID)
	require.NoError(t, err)
	assert.Equal(t, 6, available)

	// Pedir más de lo disponible falla y no toca nada.
	err = uc.Remove(testUserID, dto.RemoveStockRequest{ProductID: productID, Quantity: 10, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	available, err = uc.Available(productID)
	require.NoError(t, err)
	assert.Equal(t, 6, available)
}

// Política de consumo de lotes: FIFO por fecha de vencimiento, el lote que
// vence antes se consume primero aunque haya entrado después.
func TestRemove_FIFOPorVencimiento(t *testing.T) {
	uc, products, _ := newFixture(t)
	productID := createProduct(t, products, "Tóner", true)

	// Primer lote vence en 60 días, el segundo en 10.
	first, err := uc.RegisterEntry(testUserID, entryReq(productID, 5, 20.0, 60))
	require.NoError(t, err)
	second, err := uc.RegisterEntry(testUserID, entryReq(productID, 5, 22.0, 10))
	require.NoError(t, err)

	err = uc.Remove(testUserID, dto.RemoveStockRequest{ProductID: productID, Quantity: 6, Reason: "venta mostrador"})
	require.NoError(t, err)

	summary, err := uc.Summary()
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	require.Len(t, summary.Items[0].Entries, 2)

	remaining := map[string]int{}
	for _, e := range summary.Items[0].Entries {
		remaining[e.ID] = e.Remaining
	}
	// El lote que vence antes (second) se agota; el resto sale del otro.
	assert.Equal(t, 0, remaining[second.ID])
	assert.Equal(t, 4, remaining[first.ID])
}

func TestRegisterEntry_Validaciones(t *testing.T) {
	uc, products, _ := newFixture(t)
	activeID := createProduct(t, products, "Mouse", true)
	inactiveID := createProduct(t, products, "Teclado viejo", false)

	cases := []struct {
		name string
		req  dto.RegisterEntryRequest
		want error
	}{
		{"cantidad cero", entryReq(activeID, 0, 5.0, 30), domain.ErrInvalidInput},
		{"cantidad negativa", entryReq(activeID, -3, 5.0, 30), domain.ErrInvalidInput},
		{"precio negativo", entryReq(activeID, 3, -5.0, 30), domain.ErrInvalidInput},
		{"producto desconocido", entryReq("no-existe", 3, 5.0, 30), domain.ErrNotFound},
		{"producto inactivo", entryReq(inactiveID, 3, 5.0, 30), domain.ErrInactive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterEntry(testUserID, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Sin vencimiento no hay lote: la fecha es obligatoria.
func TestRegisterEntry_VencimientoRequerido(t *testing.T) {
	uc, products, _ := newFixture(t)
	productID := createProduct(t, products, "Pasta térmica", true)

	_, err := uc.RegisterEntry(testUserID, dto.RegisterEntryRequest{
		ProductID: productID,
		Quantity:  2,
		UnitPrice: decimal.NewFromFloat(4.0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada entrada y cada salida dejan su rastro en la auditoría de movimientos.
func TestMovimientos_Auditoria(t *testing.T) {
	uc, products, _ := newFixture(t)
	productID := createProduct(t, products, "Disco SSD", true)

	_, err := uc.RegisterEntry(testUserID, entryReq(productID, 8, 45.0, 90))
	require.NoError(t, err)
	err = uc.Remove(testUserID, dto.RemoveStockRequest{ProductID: productID, Quantity: 2, Reason: "garantía"})
	require.NoError(t, err)

	movements, err := uc.Movements()
	require.NoError(t, err)
	require.Len(t, movements.Items, 2)
	assert.Equal(t, entity.MovementEntrada, movements.Items[0].Type)
	assert.Equal(t, 8, movements.Items[0].Quantity)
	assert.Equal(t, entity.MovementSalida, movements.Items[1].Type)
	assert.Equal(t, 2, movements.Items[1].Quantity)
	assert.Equal(t, "garantía", movements.Items[1].Reason)
}

// El valor de stock es Σ Remaining × UnitPrice por lote, y la clasificación de
// stock bajo (≤5) y crítico (≤2) se calcula en lectura.
func TestSummary_ValorYClasificacion(t *testing.T) {
	uc, products, _ := newFixture(t)
	lowID := createProduct(t, products, "Fuente ATX", true)
	okID := createProduct(t, products, "Cable HDMI", true)

	_, err := uc.RegisterEntry(testUserID, entryReq(lowID, 2, 30.0, 60))
	require.NoError(t, err)
	_, err = uc.RegisterEntry(testUserID, entryReq(okID, 12, 6.0, 60))
	require.NoError(t, err)

	summary, err := uc.Summary()
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)

	byID := map[string]dto.ProductStockResponse{}
	for _, it := range summary.Items {
		byID[it.ProductID] = it
	}

	low := byID[lowID]
	assert.Equal(t, 2, low.Available)
	assert.True(t, low.LowStock)
	assert.True(t, low.Critical)
	assert.True(t, low.StockValue.Equal(decimal.NewFromFloat(60.0)))

	ok := byID[okID]
	assert.Equal(t, 12, ok.Available)
	assert.False(t, ok.LowStock)
	assert.False(t, ok.Critical)
	assert.True(t, ok.StockValue.Equal(decimal.NewFromFloat(72.0)))
}
