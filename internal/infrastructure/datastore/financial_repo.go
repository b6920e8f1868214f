package datastore

import (
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

// FinancialRepo implementación del puerto FinancialRepository sobre el Store.
type FinancialRepo struct {
	s *Store
}

// NewFinancialRepository construye el adaptador de persistencia para entradas financieras.
func NewFinancialRepository(s *Store) *FinancialRepo {
	return &FinancialRepo{s: s}
}

// CreateBatch agrega la serie completa (una o N cuotas) en un solo guardado.
func (r *FinancialRepo) CreateBatch(entries []entity.FinancialEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.financials = append(r.s.financials, entries...)
	return r.s.saveFinancials()
}

// GetByID devuelve una copia de la entrada, o (nil, nil) si no existe.
func (r *FinancialRepo) GetByID(id string) (*entity.FinancialEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.financials {
		if r.s.financials[i].ID == id {
			e := r.s.financials[i]
			return &e, nil
		}
	}
	return nil, nil
}

// Update reemplaza la entrada con el mismo ID y persiste.
func (r *FinancialRepo) Update(entry *entity.FinancialEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.financials {
		if r.s.financials[i].ID == entry.ID {
			r.s.financials[i] = *entry
			return r.s.saveFinancials()
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias sin orden canónico; el orden por vencimiento lo aplica el caso de uso.
func (r *FinancialRepo) List() ([]entity.FinancialEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.FinancialEntry, len(r.s.financials))
	copy(out, r.s.financials)
	return out, nil
}

// Delete elimina la entrada y persiste.
func (r *FinancialRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.financials {
		if r.s.financials[i].ID == id {
			r.s.financials = append(r.s.financials[:i], r.s.financials[i+1:]...)
			return r.s.saveFinancials()
		}
	}
	return domain.ErrNotFound
}
