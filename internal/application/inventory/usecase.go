// Package inventory registra movimientos de stock y consulta el historial.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// UseCase registra movimientos (entry/exit) aplicando la aritmética de stock
// y mantiene el historial como pila: el movimiento más reciente va al frente.
type UseCase struct {
	movements repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements repository.MovementRepository) *UseCase {
	return &UseCase{movements: movements}
}

// Register valida y aplica un movimiento: entry suma stock, exit resta. La
// verificación de stock y la mutación son una sola operación atómica del
// repositorio, así que dos registros concurrentes nunca parten del mismo
// stock leído. Falla sin efecto alguno cuando el producto no existe
// (ErrNotFound), el tipo o la cantidad son inválidos (ErrInvalidInput) o una
// salida pide más de lo disponible (ErrInsufficientStock).
func (uc *UseCase) Register(in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.Movement{
		ID:        uuid.New().String(),
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		Date:      time.Now(),
	}
	// Apply completa ProductName con el nombre vigente bajo el mismo lock.
	if err := uc.movements.Apply(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List devuelve el historial filtrado, en su orden actual (más reciente
// primero; nunca se re-ordena por fecha). Type "all" o vacío no filtra; From
// compara contra el instante completo, To solo contra la porción de fecha.
func (uc *UseCase) List(f dto.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(list))
	for i := range list {
		m := &list[i]
		if f.Type != "" && f.Type != "all" && m.Type != f.Type {
			continue
		}
		if !f.From.IsZero() && m.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && f.To.Before(entity.DateOf(m.Date)) {
			continue
		}
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		Type:        m.Type,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		Date:        m.Date,
	}
}
