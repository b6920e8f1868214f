package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// FinancialRepository define el puerto de persistencia para FinancialEntry.
// CreateBatch persiste la serie completa de cuotas en un solo guardado.
// GetByID devuelve (nil, nil) cuando la entrada no existe.
type FinancialRepository interface {
	CreateBatch(entries []entity.FinancialEntry) error
	GetByID(id string) (*entity.FinancialEntry, error)
	Update(entry *entity.FinancialEntry) error
	List() ([]entity.FinancialEntry, error)
	Delete(id string) error
}
