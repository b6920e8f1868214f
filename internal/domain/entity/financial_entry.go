package entity

import "github.com/shopspring/decimal"

// Tipos y estados de una entrada financiera.
const (
	FinancialTypePayable    = "payable"    // cuenta por pagar
	FinancialTypeReceivable = "receivable" // cuenta por cobrar

	FinancialStatusPending = "pending"
	FinancialStatusPaid    = "paid"
)

// Installment posición de una entrada dentro de una serie de cuotas (1-indexada).
type Installment struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// FinancialEntry representa una cuenta por pagar o por cobrar. La colección no
// tiene orden canónico en almacenamiento; el orden por vencimiento se calcula
// al consultar.
type FinancialEntry struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     Date            `json:"dueDate"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status"`
	Installment *Installment    `json:"installment"`
}

// Pending indica si la entrada sigue pendiente.
func (e FinancialEntry) Pending() bool { return e.Status == FinancialStatusPending }

// Overdue indica si la entrada está vencida: pendiente y con vencimiento
// estrictamente anterior a hoy. Es una clasificación de presentación; no
// cambia el estado almacenado ni excluye la entrada de los totales.
func (e FinancialEntry) Overdue(today Date) bool {
	return e.Pending() && e.DueDate.Before(today)
}
