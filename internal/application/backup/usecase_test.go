package backup_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/backup"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/datastore"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newFixture(t *testing.T) (*backup.UseCase, *datastore.Store) {
	t.Helper()
	store, err := datastore.Open(storage.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	return backup.NewUseCase(store, logger.Nop()), store
}

func seed(t *testing.T, store *datastore.Store) {
	t.Helper()
	require.NoError(t, datastore.NewProductRepository(store).Create(&entity.Product{
		ID: "p1", Code: "C1", Name: "Café",
		PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(15),
		Stock: 20, CreatedAt: time.Now(),
	}))
	require.NoError(t, datastore.NewMovementRepository(store).Prepend(&entity.Movement{
		ID: "m1", Type: entity.MovementTypeEntry, ProductID: "p1",
		ProductName: "Café", Quantity: 20, Date: time.Now(),
	}))
	require.NoError(t, datastore.NewFinancialRepository(store).CreateBatch([]entity.FinancialEntry{
		{ID: "f1", Type: entity.FinancialTypePayable, Description: "Luz",
			Amount:  decimal.NewFromInt(80),
			DueDate: entity.NewDate(2030, time.March, 10),
			Status:  entity.FinancialStatusPending},
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Export → Import
// ──────────────────────────────────────────────────────────────────────────────

func TestExportImport_Roundtrip(t *testing.T) {
	uc1, store1 := newFixture(t)
	seed(t, store1)

	doc, err := uc1.Export()
	require.NoError(t, err)
	assert.False(t, doc.ExportDate.IsZero())
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	// Importar en una instancia limpia reconstruye el estado completo.
	uc2, store2 := newFixture(t)
	require.NoError(t, uc2.Import(raw))

	snap, err := store2.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Café", snap.Products[0].Name)
	require.Len(t, snap.Movements, 1)
	require.Len(t, snap.Financials, 1)
	assert.Equal(t, "2030-03-10", snap.Financials[0].DueDate.String())
}

func TestImport_ReemplazaSinMerge(t *testing.T) {
	uc, store := newFixture(t)
	seed(t, store)

	require.NoError(t, uc.Import([]byte(`{"products":[],"movements":[]}`)))

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Products, "importar un respaldo vacío borra lo existente")
	assert.Empty(t, snap.Movements)
	assert.Empty(t, snap.Financials)
}

func TestImport_FinancialsAusenteComoVacio(t *testing.T) {
	uc, store := newFixture(t)
	// Respaldos de versiones sin módulo financiero no traen la clave.
	require.NoError(t, uc.Import([]byte(`{"products":[],"movements":[]}`)))
	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Financials)
}

func TestImport_FormatoInvalidoSinMutacion(t *testing.T) {
	uc, store := newFixture(t)
	seed(t, store)

	casos := []struct {
		nombre string
		raw    string
	}{
		{"no es JSON", `{rota`},
		{"products ausente", `{"movements":[]}`},
		{"movements ausente", `{"products":[]}`},
		{"products no es array", `{"products":{},"movements":[]}`},
		{"movements null", `{"products":[],"movements":null}`},
		{"financials no es array", `{"products":[],"movements":[],"financials":"x"}`},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := uc.Import([]byte(c.raw))
			assert.ErrorIs(t, err, domain.ErrImportFormat)
		})
	}

	// Ningún rechazo tocó el estado.
	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Movements, 1)
	assert.Len(t, snap.Financials, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestClear(t *testing.T) {
	uc, store := newFixture(t)
	seed(t, store)

	require.NoError(t, uc.Clear())

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Movements)
	assert.Empty(t, snap.Financials)
}
