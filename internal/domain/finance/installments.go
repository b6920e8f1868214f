// Package finance contiene la lógica pura de expansión de cuotas (servicio de dominio).
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// Template plantilla ingresada por el usuario para una o varias entradas financieras.
type Template struct {
	Type         string
	Description  string
	Amount       decimal.Decimal
	DueDate      entity.Date
	Category     string
	Installments int
}

// Expand genera eagerly las entradas de la plantilla; los IDs los asigna el caller.
//
// Con N > 1 cuotas: la cuota i (1-indexada) vence (i−1) meses calendario después
// de la fecha original, su monto es Amount/N redondeado a 2 decimales (el residuo
// del redondeo no se redistribuye) y su descripción lleva el sufijo "(i/N)".
// Con N ≤ 1 se genera una sola entrada con los campos tal cual. Todas nacen pendientes.
func Expand(tpl Template) []entity.FinancialEntry {
	n := tpl.Installments
	if n <= 1 {
		return []entity.FinancialEntry{{
			Type:        tpl.Type,
			Description: tpl.Description,
			Amount:      tpl.Amount,
			DueDate:     tpl.DueDate,
			Category:    tpl.Category,
			Status:      entity.FinancialStatusPending,
		}}
	}

	per := tpl.Amount.Div(decimal.NewFromInt(int64(n))).Round(2)
	entries := make([]entity.FinancialEntry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, entity.FinancialEntry{
			Type:        tpl.Type,
			Description: fmt.Sprintf("%s (%d/%d)", tpl.Description, i, n),
			Amount:      per,
			DueDate:     tpl.DueDate.AddMonths(i - 1),
			Category:    tpl.Category,
			Status:      entity.FinancialStatusPending,
			Installment: &entity.Installment{Current: i, Total: n},
		})
	}
	return entries
}
