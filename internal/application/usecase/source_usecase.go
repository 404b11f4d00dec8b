package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// SourceUseCase CRUD de fuentes (proveedores y puntos de recogida).
type SourceUseCase struct {
	sourceRepo repository.SourceRepository
}

// NewSourceUseCase construye el caso de uso de fuentes.
func NewSourceUseCase(sourceRepo repository.SourceRepository) *SourceUseCase {
	return &SourceUseCase{sourceRepo: sourceRepo}
}

// Create da de alta una fuente. Name es único.
func (uc *SourceUseCase) Create(ctx context.Context, req *dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	source := &entity.Source{
		ID:          uuid.New().String(),
		Name:        name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.sourceRepo.Create(ctx, source); err != nil {
		return nil, err
	}
	return toSourceResponse(source), nil
}

// GetByID devuelve una fuente por id.
func (uc *SourceUseCase) GetByID(ctx context.Context, id string) (*dto.SourceResponse, error) {
	source, err := uc.sourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar fuente: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("fuente %s: %w", id, domain.ErrNotFound)
	}
	return toSourceResponse(source), nil
}

// List devuelve todas las fuentes ordenadas por nombre.
func (uc *SourceUseCase) List(ctx context.Context) ([]dto.SourceResponse, error) {
	sources, err := uc.sourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar fuentes: %w", err)
	}
	out := make([]dto.SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, *toSourceResponse(s))
	}
	return out, nil
}

// Update aplica una actualización parcial.
func (uc *SourceUseCase) Update(ctx context.Context, id string, req *dto.UpdateSourceRequest) (*dto.SourceResponse, error) {
	source, err := uc.sourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar fuente: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("fuente %s: %w", id, domain.ErrNotFound)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("name no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		source.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		source.Description = *req.Description
	}

	source.UpdatedAt = time.Now()
	if err := uc.sourceRepo.Update(ctx, source); err != nil {
		return nil, err
	}
	return toSourceResponse(source), nil
}

// Delete elimina la fuente. Los movimientos históricos conservan la fila con
// source_id en NULL.
func (uc *SourceUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.sourceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar fuente: %w", err)
	}
	if !deleted {
		return fmt.Errorf("fuente %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toSourceResponse(s *entity.Source) *dto.SourceResponse {
	return &dto.SourceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
