package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/application/usecase"
	"github.com/jhoicas/wms-marketplace/internal/domain"
)

// DistributionCenterHandler maneja las peticiones HTTP para DistributionCenter (protegido).
type DistributionCenterHandler struct {
	uc *usecase.DistributionCenterUseCase
}

// NewDistributionCenterHandler construye el handler.
func NewDistributionCenterHandler(uc *usecase.DistributionCenterUseCase) *DistributionCenterHandler {
	return &DistributionCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Crear centro de distribución
// @Tags         distribution-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDCRequest  true  "Datos del centro"
// @Success      201   {object}  dto.DCResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distribution-centers [post]
func (h *DistributionCenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDCRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return dcError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener centro de distribución por ID
// @Tags         distribution-centers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del centro"
// @Success      200  {object}  dto.DCResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribution-centers/{id} [get]
func (h *DistributionCenterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return dcError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar centros de distribución
// @Tags         distribution-centers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DCResponse
// @Router       /api/distribution-centers [get]
func (h *DistributionCenterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar centro de distribución (parcial)
// @Tags         distribution-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del centro"
// @Param        body  body  dto.UpdateDCRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DCResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distribution-centers/{id} [put]
func (h *DistributionCenterHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDCRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return dcError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar centro de distribución
// @Tags         distribution-centers
// @Security     Bearer
// @Param        id   path  string  true  "ID del centro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribution-centers/{id} [delete]
func (h *DistributionCenterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return dcError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func dcError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "centro de distribución no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un centro con ese código"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
