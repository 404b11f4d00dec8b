package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/application/inventory"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// MovementHandler maneja el motor de movimientos y el journal (protegido).
type MovementHandler struct {
	execute *inventory.ExecuteMovementUseCase
	journal *inventory.JournalUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(execute *inventory.ExecuteMovementUseCase, journal *inventory.JournalUseCase) *MovementHandler {
	return &MovementHandler{execute: execute, journal: journal}
}

// Create godoc
// @Summary      Ejecutar un movimiento de stock
// @Description  Aplica una de las nueve operaciones del catálogo sobre los
// @Description  pools de stock y registra el movimiento en el journal.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento a ejecutar"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.execute.Execute(c.Context(), inventory.MovementInput{
		ProductID:            in.ProductID,
		OperationType:        entity.OperationType(in.OperationType),
		Quantity:             in.Quantity,
		SourceID:             in.SourceID,
		DistributionCenterID: in.DistributionCenterID,
		UserID:               userID,
		Notes:                in.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la operación"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar el journal de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        operation_type  query  string  false  "Filtrar por operación"
// @Param        product_id      query  string  false  "Filtrar por producto"
// @Param        date_from       query  string  false  "Desde (RFC3339)"
// @Param        date_to         query  string  false  "Hasta (RFC3339, inclusivo)"
// @Param        page            query  int     false  "Página"        default(1)
// @Param        page_size       query  int     false  "Tamaño página" default(20)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		OperationType: entity.OperationType(c.Query("operation_type")),
		ProductID:     c.Query("product_id"),
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválido"})
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválido"})
		}
		filter.DateTo = &t
	}

	page := dto.Page{Page: c.QueryInt("page", 1), PageSize: c.QueryInt("page_size", 20)}
	out, err := h.journal.List(c.Context(), filter, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
