package dto

import (
	"time"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// BackupDocument contrato de exportación/importación. La importación exige
// products y movements presentes y con forma de array; financials ausente se
// trata como vacío. exportDate es informativo y se ignora al importar.
type BackupDocument struct {
	Products   []entity.Product        `json:"products"`
	Movements  []entity.Movement       `json:"movements"`
	Financials []entity.FinancialEntry `json:"financials"`
	ExportDate time.Time               `json:"exportDate"`
}
