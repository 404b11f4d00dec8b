package inventory

import (
	"context"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// JournalUseCase lectura del journal de movimientos (solo consulta:
// los registros se crean únicamente vía ExecuteMovementUseCase).
type JournalUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewJournalUseCase construye el caso de uso.
func NewJournalUseCase(movRepo repository.StockMovementRepository) *JournalUseCase {
	return &JournalUseCase{movRepo: movRepo}
}

// List devuelve una página del journal, del más reciente al más antiguo,
// aplicando los filtros no vacíos.
func (uc *JournalUseCase) List(ctx context.Context, filter repository.MovementFilter, page dto.Page) (*dto.MovementListResponse, error) {
	page.Normalize()

	total, err := uc.movRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List(ctx, filter, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Pages:    page.Pages(total),
	}, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                   m.ID,
		OperationType:        string(m.OperationType),
		ProductID:            m.ProductID,
		Quantity:             m.Quantity,
		SourceID:             m.SourceID,
		DistributionCenterID: m.DistributionCenterID,
		UserID:               m.UserID,
		Notes:                m.Notes,
		CreatedAt:            m.CreatedAt,
		ProductBarcode:       m.ProductBarcode,
		ProductGTIN:          m.ProductGTIN,
	}
}
