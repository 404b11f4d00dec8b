package http

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/application/importer"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/pkg/logger"
)

// ImportHandler maneja la importación de snapshots Excel (protegido).
type ImportHandler struct {
	uc  *importer.ExcelImportUseCase
	log *logger.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ExcelImportUseCase, log *logger.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, log: log}
}

// Import godoc
// @Summary      Importar snapshot Excel del marketplace
// @Description  Reconcilia el inventario contra el reporte tabular: crea
// @Description  productos nuevos y fija cantidades absolutas. No genera
// @Description  registros en el journal.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx con hoja Сводная"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/excel [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' requerido (multipart/form-data)"})
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_FORMAT", Message: "solo se aceptan archivos .xlsx"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_FORMAT", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	start := time.Now()
	result, err := h.uc.Import(c.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrFileFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_FORMAT", Message: err.Error()})
		}
		h.log.Error().Err(err).Str("file", fileHeader.Filename).Msg("Importación fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	duration := time.Since(start).Seconds()

	h.log.Info().
		Str("file", fileHeader.Filename).
		Int("total_rows", result.TotalRows).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("errors", len(result.Errors)).
		Float64("duration_seconds", duration).
		Msg("Importación procesada")

	return c.JSON(dto.ImportResponse{Result: *result, DurationSeconds: duration})
}
