package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/backup"
	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
)

// BackupHandler maneja exportación, importación y reset del estado completo.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo
// @Description  Documento JSON con las tres colecciones y exportDate, listo para descargar.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("backup-estoque-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar respaldo
// @Description  Sustituye las tres colecciones en bloque (sin merge). products y movements son obligatorios y deben ser arrays.
// @Tags         backup
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Body()); err != nil {
		if err == domain.ErrImportFormat {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FORMAT", Message: "archivo inválido: se requieren products y movements como arrays"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Borrar todos los datos
// @Description  Resetea las tres colecciones a vacías. La doble confirmación es responsabilidad del cliente.
// @Tags         backup
// @Success      204
// @Router       /api/backup/clear [post]
func (h *BackupHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
