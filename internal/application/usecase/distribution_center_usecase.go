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

// DistributionCenterUseCase CRUD de centros de distribución de marketplace.
type DistributionCenterUseCase struct {
	dcRepo repository.DistributionCenterRepository
}

// NewDistributionCenterUseCase construye el caso de uso.
func NewDistributionCenterUseCase(dcRepo repository.DistributionCenterRepository) *DistributionCenterUseCase {
	return &DistributionCenterUseCase{dcRepo: dcRepo}
}

// Create da de alta un centro de distribución. Code es único.
func (uc *DistributionCenterUseCase) Create(ctx context.Context, req *dto.CreateDCRequest) (*dto.DCResponse, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("code y name son obligatorios: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	dc := &entity.DistributionCenter{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        name,
		Marketplace: strings.TrimSpace(req.Marketplace),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.dcRepo.Create(ctx, dc); err != nil {
		return nil, err
	}
	return toDCResponse(dc), nil
}

// GetByID devuelve un centro de distribución por id.
func (uc *DistributionCenterUseCase) GetByID(ctx context.Context, id string) (*dto.DCResponse, error) {
	dc, err := uc.dcRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar centro de distribución: %w", err)
	}
	if dc == nil {
		return nil, fmt.Errorf("centro de distribución %s: %w", id, domain.ErrNotFound)
	}
	return toDCResponse(dc), nil
}

// List devuelve todos los centros ordenados por marketplace y código.
func (uc *DistributionCenterUseCase) List(ctx context.Context) ([]dto.DCResponse, error) {
	dcs, err := uc.dcRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar centros de distribución: %w", err)
	}
	out := make([]dto.DCResponse, 0, len(dcs))
	for _, dc := range dcs {
		out = append(out, *toDCResponse(dc))
	}
	return out, nil
}

// Update aplica una actualización parcial.
func (uc *DistributionCenterUseCase) Update(ctx context.Context, id string, req *dto.UpdateDCRequest) (*dto.DCResponse, error) {
	dc, err := uc.dcRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar centro de distribución: %w", err)
	}
	if dc == nil {
		return nil, fmt.Errorf("centro de distribución %s: %w", id, domain.ErrNotFound)
	}

	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			return nil, fmt.Errorf("code no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		dc.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("name no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		dc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Marketplace != nil {
		dc.Marketplace = strings.TrimSpace(*req.Marketplace)
	}

	dc.UpdatedAt = time.Now()
	if err := uc.dcRepo.Update(ctx, dc); err != nil {
		return nil, err
	}
	return toDCResponse(dc), nil
}

// Delete elimina el centro. Los movimientos históricos conservan la fila con
// distribution_center_id en NULL.
func (uc *DistributionCenterUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.dcRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar centro de distribución: %w", err)
	}
	if !deleted {
		return fmt.Errorf("centro de distribución %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDCResponse(dc *entity.DistributionCenter) *dto.DCResponse {
	return &dto.DCResponse{
		ID:          dc.ID,
		Code:        dc.Code,
		Name:        dc.Name,
		Marketplace: dc.Marketplace,
		CreatedAt:   dc.CreatedAt,
		UpdatedAt:   dc.UpdatedAt,
	}
}
