package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/estoquepro/estoque-api/internal/application/analytics"
	"github.com/estoquepro/estoque-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totalProducts, totalStock, monthlyEntries,
// monthlyExits, lowStock[5], recentMovements[5]).
// No requiere parámetros; el corte mensual se calcula en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
