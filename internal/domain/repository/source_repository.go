package repository

import (
	"context"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
)

// SourceRepository define el puerto de persistencia para Source.
type SourceRepository interface {
	Create(ctx context.Context, source *entity.Source) error
	GetByID(ctx context.Context, id string) (*entity.Source, error)
	List(ctx context.Context) ([]*entity.Source, error)
	Update(ctx context.Context, source *entity.Source) error
	// Delete elimina el source; los movimientos históricos conservan su fila
	// con source_id en NULL (FK SET NULL).
	Delete(ctx context.Context, id string) (bool, error)
	Any(ctx context.Context) (bool, error)
}
