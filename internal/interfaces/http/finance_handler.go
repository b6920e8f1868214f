package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/finance"
	"github.com/estoquepro/estoque-api/internal/domain"
)

// FinanceHandler maneja las peticiones HTTP de cuentas por pagar y cobrar.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrada financiera
// @Description  Con installments > 1 se generan las N cuotas mensuales de una vez.
// @Tags         financials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinancialRequest  true  "type (payable|receivable), description, amount, dueDate, category, installments"
// @Success      201   {array}   dto.FinancialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financials [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, description, amount positivo y dueDate (YYYY-MM-DD) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas financieras
// @Description  type es obligatorio; month es el mes calendario 0–11 del vencimiento o "all"; status es all|pending|paid. Orden: vencimiento ascendente.
// @Tags         financials
// @Produce      json
// @Param        type    query  string  true   "payable | receivable"
// @Param        month   query  string  false  "0–11 o all"
// @Param        status  query  string  false  "all | pending | paid"
// @Success      200     {object}  dto.FinancialListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/financials [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	filter := dto.FinancialFilter{
		Type:   c.Query("type"),
		Month:  -1,
		Status: c.Query("status"),
	}
	if raw := c.Query("month"); raw != "" && raw != "all" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe ser 0–11 o all"})
		}
		filter.Month = n
	}

	out, err := h.uc.List(filter)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser payable o receivable; month debe ser 0–11 o all"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar estado pending/paid
// @Tags         financials
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.FinancialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financials/{id}/toggle [patch]
func (h *FinanceHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Toggle(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada financiera
// @Tags         financials
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financials/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Totales de pendientes
// @Description  Suma de pendientes por cobrar y por pagar; las vencidas siguen sumando.
// @Tags         financials
// @Produce      json
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Router       /api/financials/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
