package datastore

import (
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el Store.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

// Apply verifica, ajusta el stock del producto e inserta el movimiento bajo un
// solo lock. El rechazo (producto inexistente o stock insuficiente) no deja
// rastro alguno; el éxito persiste ambas colecciones antes de soltar el lock.
func (r *MovementRepo) Apply(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var product *entity.Product
	for i := range r.s.products {
		if r.s.products[i].ID == movement.ProductID {
			product = &r.s.products[i]
			break
		}
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if movement.Type == entity.MovementTypeExit && movement.Quantity > product.Stock {
		return domain.ErrInsufficientStock
	}

	if movement.Type == entity.MovementTypeEntry {
		product.Stock += movement.Quantity
	} else {
		product.Stock -= movement.Quantity
	}
	movement.ProductName = product.Name // snapshot: no se resincroniza con renombres

	r.s.movements = append([]entity.Movement{*movement}, r.s.movements...)
	if err := r.s.saveProducts(); err != nil {
		return err
	}
	return r.s.saveMovements()
}

// Prepend inserta el movimiento al frente de la lista (más reciente primero) y persiste.
func (r *MovementRepo) Prepend(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append([]entity.Movement{*movement}, r.s.movements...)
	return r.s.saveMovements()
}

// List devuelve copias en el orden actual de la lista (pila, sin re-ordenar).
func (r *MovementRepo) List() ([]entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Movement, len(r.s.movements))
	copy(out, r.s.movements)
	return out, nil
}

// DeleteByProduct elimina todos los movimientos del producto (cascada) y persiste.
func (r *MovementRepo) DeleteByProduct(productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := make([]entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return r.s.saveMovements()
}
