package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	dominventory "github.com/jhoicas/wms-marketplace/internal/domain/inventory"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// ExecuteMovementUseCase ejecuta operaciones del catálogo de movimientos de
// forma transaccional: decremento condicional primero, incremento pareado y
// registro en el journal dentro de la misma tx (Commit o Rollback completo).
type ExecuteMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	sourceRepo  repository.SourceRepository
	dcRepo      repository.DistributionCenterRepository
}

// NewExecuteMovementUseCase construye el caso de uso.
func NewExecuteMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	sourceRepo repository.SourceRepository,
	dcRepo repository.DistributionCenterRepository,
) *ExecuteMovementUseCase {
	return &ExecuteMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		sourceRepo:  sourceRepo,
		dcRepo:      dcRepo,
	}
}

// MovementInput entrada para ejecutar un movimiento.
type MovementInput struct {
	ProductID            string
	OperationType        entity.OperationType
	Quantity             int
	SourceID             *string
	DistributionCenterID *string
	UserID               string
	Notes                string
}

// Execute valida la entrada contra la tabla de efectos, verifica referencias
// y aplica la mutación con su registro de auditoría en una sola transacción.
// Retorna ErrInsufficientStock sin escribir nada si un decremento no alcanza.
func (uc *ExecuteMovementUseCase) Execute(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("quantity debe ser al menos 1: %w", domain.ErrInvalidInput)
	}
	effect, ok := dominventory.EffectFor(in.OperationType)
	if !ok {
		return nil, fmt.Errorf("operation_type desconocido %q: %w", in.OperationType, domain.ErrInvalidInput)
	}
	if effect.RequiresSource && (in.SourceID == nil || *in.SourceID == "") {
		return nil, fmt.Errorf("source_id es requerido para %s: %w", in.OperationType, domain.ErrInvalidInput)
	}
	if effect.RequiresDC && (in.DistributionCenterID == nil || *in.DistributionCenterID == "") {
		return nil, fmt.Errorf("distribution_center_id es requerido para %s: %w", in.OperationType, domain.ErrInvalidInput)
	}

	// Producto debe existir y no estar borrado (GetByID excluye borrados).
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
	}

	// Referencias opcionales: si vienen, deben existir.
	if in.SourceID != nil && *in.SourceID != "" {
		src, err := uc.sourceRepo.GetByID(ctx, *in.SourceID)
		if err != nil {
			return nil, err
		}
		if src == nil {
			return nil, fmt.Errorf("source %s: %w", *in.SourceID, domain.ErrNotFound)
		}
	}
	if in.DistributionCenterID != nil && *in.DistributionCenterID != "" {
		dc, err := uc.dcRepo.GetByID(ctx, *in.DistributionCenterID)
		if err != nil {
			return nil, err
		}
		if dc == nil {
			return nil, fmt.Errorf("centro de distribución %s: %w", *in.DistributionCenterID, domain.ErrNotFound)
		}
	}

	mov := &entity.StockMovement{
		ID:                   uuid.New().String(),
		OperationType:        in.OperationType,
		ProductID:            in.ProductID,
		Quantity:             in.Quantity,
		SourceID:             in.SourceID,
		DistributionCenterID: in.DistributionCenterID,
		UserID:               in.UserID,
		Notes:                in.Notes,
		CreatedAt:            time.Now(),
	}

	// Mutación + journal en una sola transacción. Los decrementos van primero:
	// si el update condicional no afecta filas, la tx completa se revierte y
	// ningún pool ni el journal quedan tocados.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		if effect.GoodDelta < 0 {
			ok, err := stockRepo.SubtractIfAvailable(ctx, entity.PoolGood, in.ProductID, in.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
		}
		if effect.DefectDelta < 0 {
			ok, err := stockRepo.SubtractIfAvailable(ctx, entity.PoolDefect, in.ProductID, in.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
		}
		if effect.GoodDelta > 0 {
			if err := stockRepo.Add(ctx, entity.PoolGood, in.ProductID, in.Quantity); err != nil {
				return err
			}
		}
		if effect.DefectDelta > 0 {
			if err := stockRepo.Add(ctx, entity.PoolDefect, in.ProductID, in.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:                   mov.ID,
		OperationType:        string(mov.OperationType),
		ProductID:            mov.ProductID,
		Quantity:             mov.Quantity,
		SourceID:             mov.SourceID,
		DistributionCenterID: mov.DistributionCenterID,
		UserID:               mov.UserID,
		Notes:                mov.Notes,
		CreatedAt:            mov.CreatedAt,
		ProductBarcode:       product.Barcode,
		ProductGTIN:          product.GTIN,
	}, nil
}
