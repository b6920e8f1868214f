// Package backup exportación, importación y reset del estado completo.
package backup

import (
	"encoding/json"
	"time"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// UseCase opera sobre el snapshot completo de las tres colecciones.
type UseCase struct {
	store repository.BackupRepository
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.BackupRepository, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Export arma el documento de respaldo con el snapshot actual.
func (uc *UseCase) Export() (*dto.BackupDocument, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return &dto.BackupDocument{
		Products:   snap.Products,
		Movements:  snap.Movements,
		Financials: snap.Financials,
		ExportDate: time.Now(),
	}, nil
}

// Import valida el documento y sustituye las tres colecciones en bloque.
// Exige products y movements presentes y con forma de array; financials
// ausente se trata como vacío. Cualquier defecto de formato aborta sin mutar
// nada (ErrImportFormat).
func (uc *UseCase) Import(raw []byte) error {
	var probe struct {
		Products   json.RawMessage `json:"products"`
		Movements  json.RawMessage `json:"movements"`
		Financials json.RawMessage `json:"financials"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return domain.ErrImportFormat
	}
	if !isJSONArray(probe.Products) || !isJSONArray(probe.Movements) {
		return domain.ErrImportFormat
	}
	if len(probe.Financials) > 0 && !isJSONArray(probe.Financials) {
		return domain.ErrImportFormat
	}

	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.ErrImportFormat
	}

	snap := repository.Snapshot{
		Products:   doc.Products,
		Movements:  doc.Movements,
		Financials: doc.Financials,
	}
	if err := uc.store.ReplaceAll(snap); err != nil {
		return err
	}
	uc.log.Info().
		Int("products", len(snap.Products)).
		Int("movements", len(snap.Movements)).
		Int("financials", len(snap.Financials)).
		Msg("datos importados")
	return nil
}

// Clear resetea las tres colecciones a vacías. La doble confirmación del
// usuario es responsabilidad del cliente.
func (uc *UseCase) Clear() error {
	if err := uc.store.ClearAll(); err != nil {
		return err
	}
	uc.log.Warn().Msg("todos los datos fueron eliminados")
	return nil
}

// isJSONArray exige presencia y primer byte '[' (null o ausente no valen).
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
