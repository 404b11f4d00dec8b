package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/application/usecase"
	"github.com/jhoicas/wms-marketplace/internal/domain"
)

// SourceHandler maneja las peticiones HTTP para Source (protegido).
type SourceHandler struct {
	uc *usecase.SourceUseCase
}

// NewSourceHandler construye el handler.
func NewSourceHandler(uc *usecase.SourceUseCase) *SourceHandler {
	return &SourceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fuente (proveedor o punto de recogida)
// @Tags         sources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSourceRequest  true  "Datos de la fuente"
// @Success      201   {object}  dto.SourceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sources [post]
func (h *SourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return sourceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener fuente por ID
// @Tags         sources
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fuente"
// @Success      200  {object}  dto.SourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [get]
func (h *SourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return sourceError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fuentes
// @Tags         sources
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SourceResponse
// @Router       /api/sources [get]
func (h *SourceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fuente (parcial)
// @Tags         sources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la fuente"
// @Param        body  body  dto.UpdateSourceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SourceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [put]
func (h *SourceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return sourceError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fuente
// @Tags         sources
// @Security     Bearer
// @Param        id   path  string  true  "ID de la fuente"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [delete]
func (h *SourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return sourceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sourceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fuente no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una fuente con ese nombre"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
