// Package finance casos de uso de cuentas por pagar y por cobrar.
package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	domfinance "github.com/estoquepro/estoque-api/internal/domain/finance"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// UseCase alta (con expansión de cuotas), toggle de estado, borrado, listado
// filtrado y resumen de pendientes.
//
// loc es la zona de referencia fija para "hoy": decide qué entradas se marcan
// vencidas, sin depender de la zona del proceso.
type UseCase struct {
	financials repository.FinancialRepository
	loc        *time.Location
}

// NewUseCase construye el caso de uso.
func NewUseCase(financials repository.FinancialRepository, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{financials: financials, loc: loc}
}

func (uc *UseCase) today() entity.Date {
	return entity.DateOf(time.Now().In(uc.loc))
}

// Create da de alta una entrada o, con Installments > 1, la serie completa de
// cuotas generada eagerly (vencimientos mensuales, monto repartido en partes
// iguales, descripción con sufijo "(i/N)"). Devuelve todas las entradas creadas.
func (uc *UseCase) Create(in dto.CreateFinancialRequest) ([]dto.FinancialResponse, error) {
	if in.Type != entity.FinancialTypePayable && in.Type != entity.FinancialTypeReceivable {
		return nil, domain.ErrInvalidInput
	}
	if in.Description == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := entity.ParseDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	entries := domfinance.Expand(domfinance.Template{
		Type:         in.Type,
		Description:  in.Description,
		Amount:       in.Amount,
		DueDate:      dueDate,
		Category:     in.Category,
		Installments: in.Installments,
	})
	for i := range entries {
		entries[i].ID = uuid.New().String()
	}

	if err := uc.financials.CreateBatch(entries); err != nil {
		return nil, err
	}

	today := uc.today()
	out := make([]dto.FinancialResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toFinancialResponse(&entries[i], today))
	}
	return out, nil
}

// Toggle alterna pending↔paid; ambos sentidos valen en cualquier momento.
// (nil, nil) si el ID no existe.
func (uc *UseCase) Toggle(id string) (*dto.FinancialResponse, error) {
	entry, err := uc.financials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if entry.Status == entity.FinancialStatusPending {
		entry.Status = entity.FinancialStatusPaid
	} else {
		entry.Status = entity.FinancialStatusPending
	}
	if err := uc.financials.Update(entry); err != nil {
		return nil, err
	}
	return toFinancialResponse(entry, uc.today()), nil
}

// Delete elimina la entrada por ID.
func (uc *UseCase) Delete(id string) error {
	return uc.financials.Delete(id)
}

// List devuelve las entradas del tipo pedido (obligatorio), filtradas por mes
// calendario del vencimiento (0–11; -1 no filtra) y estado ("all" o vacío no
// filtra), ordenadas por vencimiento ascendente. El orden se calcula aquí:
// la colección almacenada no tiene orden canónico.
func (uc *UseCase) List(f dto.FinancialFilter) (*dto.FinancialListResponse, error) {
	if f.Type != entity.FinancialTypePayable && f.Type != entity.FinancialTypeReceivable {
		return nil, domain.ErrInvalidInput
	}
	if f.Month < -1 || f.Month > 11 {
		return nil, domain.ErrInvalidInput
	}

	list, err := uc.financials.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.FinancialEntry, 0, len(list))
	for _, e := range list {
		if e.Type != f.Type {
			continue
		}
		if f.Month >= 0 && int(e.DueDate.Month())-1 != f.Month {
			continue
		}
		if f.Status != "" && f.Status != "all" && e.Status != f.Status {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DueDate.Before(filtered[j].DueDate)
	})

	today := uc.today()
	items := make([]dto.FinancialResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toFinancialResponse(&filtered[i], today))
	}
	return &dto.FinancialListResponse{Items: items, Total: len(items)}, nil
}

// Summary totales de pendientes por tipo. Una entrada vencida sigue pendiente
// y sigue sumando; "vencida" es solo clasificación de presentación.
func (uc *UseCase) Summary() (*dto.FinancialSummaryResponse, error) {
	list, err := uc.financials.List()
	if err != nil {
		return nil, err
	}

	today := uc.today()
	totalReceivable := decimal.Zero
	totalPayable := decimal.Zero
	overdue := 0
	for _, e := range list {
		if !e.Pending() {
			continue
		}
		switch e.Type {
		case entity.FinancialTypeReceivable:
			totalReceivable = totalReceivable.Add(e.Amount)
		case entity.FinancialTypePayable:
			totalPayable = totalPayable.Add(e.Amount)
		}
		if e.Overdue(today) {
			overdue++
		}
	}
	return &dto.FinancialSummaryResponse{
		TotalReceivable: totalReceivable,
		TotalPayable:    totalPayable,
		OverdueCount:    overdue,
	}, nil
}

func toFinancialResponse(e *entity.FinancialEntry, today entity.Date) *dto.FinancialResponse {
	return &dto.FinancialResponse{
		ID:          e.ID,
		Type:        e.Type,
		Description: e.Description,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		Category:    e.Category,
		Status:      e.Status,
		Installment: e.Installment,
		Overdue:     e.Overdue(today),
	}
}
