package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
)

// MovementFilter filtros del journal de movimientos. Campos vacíos/nil no filtran.
type MovementFilter struct {
	OperationType entity.OperationType
	ProductID     string
	DateFrom      *time.Time
	DateTo        *time.Time // inclusivo
}

// StockMovementRepository define el puerto de persistencia del journal.
// Solo inserción y lectura: los registros son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// List devuelve movimientos del más reciente al más antiguo, con
	// barcode/GTIN del producto denormalizados.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	Count(ctx context.Context, filter MovementFilter) (int, error)
}
