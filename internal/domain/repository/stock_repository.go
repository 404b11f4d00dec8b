package repository

import (
	"context"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
)

// StockRepository define el puerto para los dos pools de cantidades por producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// CreateForProduct crea las filas de ambos pools en cero para un producto nuevo.
	CreateForProduct(ctx context.Context, productID string) error
	Get(ctx context.Context, pool entity.StockPool, productID string) (*entity.Stock, error)
	// Add suma qty al pool (qty > 0).
	Add(ctx context.Context, pool entity.StockPool, productID string, qty int) error
	// SubtractIfAvailable resta qty solo si la fila tiene al menos qty
	// (UPDATE ... WHERE quantity >= qty). Devuelve false sin escribir nada
	// si el stock es insuficiente.
	SubtractIfAvailable(ctx context.Context, pool entity.StockPool, productID string, qty int) (bool, error)
	// Set fija la cantidad absoluta del pool (upsert). Solo lo usa el
	// importador de reconciliación.
	Set(ctx context.Context, pool entity.StockPool, productID string, qty int) error
	Summary(ctx context.Context) (*entity.StockSummary, error)
}
