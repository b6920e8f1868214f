package inventory_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/datastore"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *inventory.UseCase
	products  *datastore.ProductRepo
	movements *datastore.MovementRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := datastore.Open(storage.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	products := datastore.NewProductRepository(store)
	movements := datastore.NewMovementRepository(store)
	return &fixture{
		uc:        inventory.NewUseCase(movements),
		products:  products,
		movements: movements,
	}
}

func (f *fixture) seedProduct(t *testing.T, id string, stock int) {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{
		ID:            id,
		Code:          "C-" + id,
		Name:          "Produto " + id,
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(15),
		Stock:         stock,
		CreatedAt:     time.Now(),
	}))
}

func (f *fixture) stockOf(t *testing.T, id string) int {
	t.Helper()
	p, err := f.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaSumaStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10)

	resp, err := f.uc.Register(dto.RegisterMovementRequest{
		Type: entity.MovementTypeEntry, ProductID: "p1", Quantity: 5, Notes: "compra",
	})
	require.NoError(t, err)

	assert.Equal(t, 15, f.stockOf(t, "p1"))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Produto p1", resp.ProductName, "el movimiento lleva snapshot del nombre")

	list, err := f.movements.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.ID, list[0].ID)
}

func TestRegister_SalidaRestaStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10)

	_, err := f.uc.Register(dto.RegisterMovementRequest{
		Type: entity.MovementTypeExit, ProductID: "p1", Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.stockOf(t, "p1"))
}

func TestRegister_SalidaExactaDejaCero(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10)

	_, err := f.uc.Register(dto.RegisterMovementRequest{
		Type: entity.MovementTypeExit, ProductID: "p1", Quantity: 10,
	})
	require.NoError(t, err, "la salida que vacía el stock exacto es válida")
	assert.Equal(t, 0, f.stockOf(t, "p1"))
}

func TestRegister_SalidaInsuficienteSinEfecto(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10)

	_, err := f.uc.Register(dto.RegisterMovementRequest{
		Type: entity.MovementTypeExit, ProductID: "p1", Quantity: 15,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo no deja rastro: ni stock mutado ni movimiento registrado.
	assert.Equal(t, 10, f.stockOf(t, "p1"))
	list, err := f.movements.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRegister_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Register(dto.RegisterMovementRequest{
		Type: entity.MovementTypeEntry, ProductID: "fantasma", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_Invalidos(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10)

	casos := []dto.RegisterMovementRequest{
		{Type: "transfer", ProductID: "p1", Quantity: 1}, // tipo desconocido
		{Type: entity.MovementTypeEntry, ProductID: "p1", Quantity: 0},
		{Type: entity.MovementTypeExit, ProductID: "p1", Quantity: -3},
	}
	for _, c := range casos {
		_, err := f.uc.Register(c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", c)
	}
	assert.Equal(t, 10, f.stockOf(t, "p1"), "ningún rechazo debe tocar el stock")
}

func TestRegister_SalidasConcurrentes(t *testing.T) {
	// 150 salidas de 1 compitiendo por un stock de 100: deben tener éxito
	// exactamente 100 y las 50 restantes rechazarse por stock insuficiente.
	// Verifica que la verificación y la resta son una sola operación atómica
	// (dos registros nunca parten del mismo stock leído).
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)

	const intentos = 150
	errs := make(chan error, intentos)
	var wg sync.WaitGroup
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Register(dto.RegisterMovementRequest{
				Type: entity.MovementTypeExit, ProductID: "p1", Quantity: 1,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	exitos, rechazos := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case errors.Is(err, domain.ErrInsufficientStock):
			rechazos++
		default:
			require.NoError(t, err, "solo se admite éxito o stock insuficiente")
		}
	}
	assert.Equal(t, 100, exitos)
	assert.Equal(t, 50, rechazos)
	assert.Equal(t, 0, f.stockOf(t, "p1"), "stock final = inicial − salidas exitosas")

	list, err := f.movements.List()
	require.NoError(t, err)
	assert.Len(t, list, 100, "solo las salidas exitosas dejan movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_OrdenMasRecientePrimero(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)

	for i := 0; i < 3; i++ {
		_, err := f.uc.Register(dto.RegisterMovementRequest{
			Type: entity.MovementTypeExit, ProductID: "p1", Quantity: i + 1,
		})
		require.NoError(t, err)
	}

	resp, err := f.uc.List(dto.MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.Items[0].Quantity, "el último registrado encabeza la lista")
	assert.Equal(t, 1, resp.Items[2].Quantity)
}

func TestList_FiltroPorTipo(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)

	_, err := f.uc.Register(dto.RegisterMovementRequest{Type: entity.MovementTypeEntry, ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	_, err = f.uc.Register(dto.RegisterMovementRequest{Type: entity.MovementTypeExit, ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	soloSalidas, err := f.uc.List(dto.MovementFilter{Type: entity.MovementTypeExit})
	require.NoError(t, err)
	require.Equal(t, 1, soloSalidas.Total)
	assert.Equal(t, entity.MovementTypeExit, soloSalidas.Items[0].Type)

	todos, err := f.uc.List(dto.MovementFilter{Type: "all"})
	require.NoError(t, err)
	assert.Equal(t, 2, todos.Total, `"all" no filtra`)
}

func TestList_FiltroPorFechas(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	_, err := f.uc.Register(dto.RegisterMovementRequest{Type: entity.MovementTypeEntry, ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	hoy := entity.DateOf(time.Now())

	// Desde mañana: el movimiento de hoy queda fuera.
	desdeManana, err := f.uc.List(dto.MovementFilter{From: time.Now().Add(24 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, 0, desdeManana.Total)

	// Hasta hoy inclusive: el movimiento de hoy entra (To compara solo la fecha).
	hastaHoy, err := f.uc.List(dto.MovementFilter{To: hoy})
	require.NoError(t, err)
	assert.Equal(t, 1, hastaHoy.Total)

	// Hasta ayer: queda fuera.
	hastaAyer, err := f.uc.List(dto.MovementFilter{To: entity.DateOf(time.Now().AddDate(0, 0, -1))})
	require.NoError(t, err)
	assert.Equal(t, 0, hastaAyer.Total)
}
