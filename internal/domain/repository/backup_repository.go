package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// Snapshot copia completa de las tres colecciones en un instante dado.
type Snapshot struct {
	Products   []entity.Product
	Movements  []entity.Movement
	Financials []entity.FinancialEntry
}

// BackupRepository operaciones de respaldo sobre el estado completo.
// ReplaceAll sustituye las tres colecciones en bloque (sin merge); ClearAll
// las deja vacías. Ambas persisten antes de devolver.
type BackupRepository interface {
	Snapshot() (Snapshot, error)
	ReplaceAll(snap Snapshot) error
	ClearAll() error
}
