package repository

import (
	"context"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
)

// ProductStockRow fila de listado: producto activo con las cantidades de ambos pools.
type ProductStockRow struct {
	Product       entity.Product
	StockQuantity int
	DefectQuantity int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID excluye productos con borrado lógico; GetByBarcode incluye borrados
// porque el importador los reactiva.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) (bool, error)
	ListActive(ctx context.Context, barcodeSearch string, limit, offset int) ([]ProductStockRow, error)
	CountActive(ctx context.Context, barcodeSearch string) (int, error)
}
