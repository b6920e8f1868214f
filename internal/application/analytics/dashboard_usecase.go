// Package analytics agrega el snapshot actual para el dashboard.
package analytics

import (
	"time"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

const dashboardListCap = 5 // elementos por widget (stock bajo y recientes)

// DashboardUseCase calcula los totales del dashboard a partir del estado
// actual; lectura pura, sin mutación.
type DashboardUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, movements repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, movements: movements}
}

// GetSummary totales del dashboard. El corte mensual usa el mes calendario en
// curso según el reloj de pared al momento de la consulta; el stock bajo toma
// los primeros 5 en orden natural de colección (no por severidad) y los
// recientes son la cabeza de la lista de movimientos (más nuevos primero por
// construcción).
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &dto.DashboardSummaryDTO{
		TotalProducts:   len(products),
		LowStock:        make([]dto.LowStockDTO, 0, dashboardListCap),
		RecentMovements: make([]dto.MovementResponse, 0, dashboardListCap),
	}

	for _, p := range products {
		summary.TotalStock += p.Stock
		if p.LowStock() && len(summary.LowStock) < dashboardListCap {
			summary.LowStock = append(summary.LowStock, dto.LowStockDTO{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				MinStock:  p.MinStock,
			})
		}
	}

	for i, m := range movements {
		if m.Date.Month() == now.Month() && m.Date.Year() == now.Year() {
			switch m.Type {
			case entity.MovementTypeEntry:
				summary.MonthlyEntries += m.Quantity
			case entity.MovementTypeExit:
				summary.MonthlyExits += m.Quantity
			}
		}
		if i < dashboardListCap {
			summary.RecentMovements = append(summary.RecentMovements, dto.MovementResponse{
				ID:          m.ID,
				Type:        m.Type,
				ProductID:   m.ProductID,
				ProductName: m.ProductName,
				Quantity:    m.Quantity,
				Notes:       m.Notes,
				Date:        m.Date,
			})
		}
	}

	return summary, nil
}
