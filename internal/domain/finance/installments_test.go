package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Expand: expansión eager de cuotas
// ──────────────────────────────────────────────────────────────────────────────

func TestExpand_TresCuotas(t *testing.T) {
	entries := finance.Expand(finance.Template{
		Type:         entity.FinancialTypePayable,
		Description:  "Aluguel",
		Amount:       decimal.NewFromInt(1200),
		DueDate:      entity.NewDate(2024, time.January, 15),
		Category:     "Moradia",
		Installments: 3,
	})
	require.Len(t, entries, 3)

	esperados := []struct {
		descripcion string
		vencimiento string
		cuota       int
	}{
		{"Aluguel (1/3)", "2024-01-15", 1},
		{"Aluguel (2/3)", "2024-02-15", 2},
		{"Aluguel (3/3)", "2024-03-15", 3},
	}
	for i, exp := range esperados {
		e := entries[i]
		assert.Equal(t, exp.descripcion, e.Description)
		assert.Equal(t, exp.vencimiento, e.DueDate.String())
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(400)),
			"cada cuota de 1200/3 debe ser 400, obtuvo %s", e.Amount)
		assert.Equal(t, entity.FinancialStatusPending, e.Status,
			"toda cuota nace pendiente")
		require.NotNil(t, e.Installment)
		assert.Equal(t, exp.cuota, e.Installment.Current)
		assert.Equal(t, 3, e.Installment.Total)
		assert.Equal(t, entity.FinancialTypePayable, e.Type)
		assert.Equal(t, "Moradia", e.Category)
	}
}

func TestExpand_RedondeoSinRedistribucion(t *testing.T) {
	// 100 / 3 = 33.33 por cuota; el residuo del redondeo NO se redistribuye:
	// la serie suma 99.99, no 100.
	entries := finance.Expand(finance.Template{
		Type:         entity.FinancialTypeReceivable,
		Description:  "Serviço",
		Amount:       decimal.NewFromInt(100),
		DueDate:      entity.NewDate(2024, time.May, 1),
		Installments: 3,
	})
	require.Len(t, entries, 3)

	per := decimal.RequireFromString("33.33")
	total := decimal.Zero
	for _, e := range entries {
		assert.True(t, e.Amount.Equal(per), "cuota esperada 33.33, obtuvo %s", e.Amount)
		total = total.Add(e.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("99.99")),
		"la serie debe sumar 99.99 (sin redistribución), obtuvo %s", total)
}

func TestExpand_UnaCuotaNoEsSerie(t *testing.T) {
	entries := finance.Expand(finance.Template{
		Type:        entity.FinancialTypePayable,
		Description: "Luz",
		Amount:      decimal.NewFromInt(80),
		DueDate:     entity.NewDate(2024, time.March, 10),
	})
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Luz", e.Description, "sin cuotas no hay sufijo (i/N)")
	assert.True(t, e.Amount.Equal(decimal.NewFromInt(80)))
	assert.Nil(t, e.Installment, "una entrada suelta no lleva metadatos de cuota")
	assert.Equal(t, entity.FinancialStatusPending, e.Status)
}

func TestExpand_InstallmentsNegativoComoUno(t *testing.T) {
	entries := finance.Expand(finance.Template{
		Type:         entity.FinancialTypePayable,
		Description:  "Teste",
		Amount:       decimal.NewFromInt(50),
		DueDate:      entity.NewDate(2024, time.March, 10),
		Installments: -2,
	})
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(50)))
}

func TestExpand_VencimientoFinDeMes(t *testing.T) {
	// 31 de enero + 1 mes normaliza por calendario (no hay "clamp" al último día).
	entries := finance.Expand(finance.Template{
		Type:         entity.FinancialTypePayable,
		Description:  "Parcela",
		Amount:       decimal.NewFromInt(200),
		DueDate:      entity.NewDate(2023, time.January, 31),
		Installments: 2,
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "2023-01-31", entries[0].DueDate.String())
	assert.Equal(t, "2023-03-03", entries[1].DueDate.String(),
		"2023 no es bisiesto: 31 ene + 1 mes normaliza a 3 de marzo")
}
