package dto

import (
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// CreateFinancialRequest alta de una cuenta por pagar o cobrar.
// Installments > 1 expande la plantilla en N cuotas mensuales.
type CreateFinancialRequest struct {
	Type         string          `json:"type"` // payable | receivable
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"dueDate"` // YYYY-MM-DD
	Category     string          `json:"category"`
	Installments int             `json:"installments"`
}

// FinancialFilter filtros del listado. Type es obligatorio (payable|receivable);
// Month es 0–11 (mes calendario del vencimiento) o -1 para no filtrar;
// Status "all" o vacío no filtra.
type FinancialFilter struct {
	Type   string
	Month  int
	Status string
}

// FinancialResponse entrada financiera con su clasificación de presentación.
type FinancialResponse struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	DueDate     entity.Date         `json:"dueDate"`
	Category    string              `json:"category,omitempty"`
	Status      string              `json:"status"`
	Installment *entity.Installment `json:"installment"`
	Overdue     bool                `json:"overdue"` // pendiente y vencida; solo presentación
}

// FinancialListResponse respuesta de listado, ordenada por vencimiento ascendente.
type FinancialListResponse struct {
	Items []FinancialResponse `json:"items"`
	Total int                 `json:"total"`
}

// FinancialSummaryResponse totales de pendientes por tipo. Las entradas
// vencidas siguen sumando: el estado "late" no las excluye.
type FinancialSummaryResponse struct {
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	OverdueCount    int             `json:"overdueCount"`
}
