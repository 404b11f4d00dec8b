package repository

import (
	"context"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
)

// DistributionCenterRepository define el puerto de persistencia para DistributionCenter.
type DistributionCenterRepository interface {
	Create(ctx context.Context, dc *entity.DistributionCenter) error
	GetByID(ctx context.Context, id string) (*entity.DistributionCenter, error)
	// List ordena por marketplace y código.
	List(ctx context.Context) ([]*entity.DistributionCenter, error)
	Update(ctx context.Context, dc *entity.DistributionCenter) error
	Delete(ctx context.Context, id string) (bool, error)
	Any(ctx context.Context) (bool, error)
}
