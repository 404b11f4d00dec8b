package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Cada pool vive en su propia tabla: stocks (bueno) y defect_stocks (defectuoso).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// tableFor mapea pool a tabla.
func tableFor(pool entity.StockPool) string {
	if pool == entity.PoolDefect {
		return "defect_stocks"
	}
	return "stocks"
}

// CreateForProduct crea las filas de ambos pools en cero para un producto nuevo.
func (r *StockRepo) CreateForProduct(ctx context.Context, productID string) error {
	for _, table := range []string{"stocks", "defect_stocks"} {
		query := fmt.Sprintf(`
			INSERT INTO %s (product_id, quantity, updated_at)
			VALUES ($1, 0, now())
			ON CONFLICT (product_id) DO NOTHING`, table)
		if _, err := r.q.Exec(ctx, query, productID); err != nil {
			return fmt.Errorf("crear fila de stock en %s: %w", table, err)
		}
	}
	return nil
}

// Get obtiene la cantidad actual de un pool. Fila ausente cuenta como cero.
func (r *StockRepo) Get(ctx context.Context, pool entity.StockPool, productID string) (*entity.Stock, error) {
	query := fmt.Sprintf(`
		SELECT product_id, quantity, updated_at
		FROM %s WHERE product_id = $1`, tableFor(pool))
	s := entity.Stock{Pool: pool}
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ProductID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Pool: pool, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Add suma qty al pool (upsert por si la fila no existe todavía).
func (r *StockRepo) Add(ctx context.Context, pool entity.StockPool, productID string, qty int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = %s.quantity + EXCLUDED.quantity, updated_at = now()`,
		tableFor(pool), tableFor(pool))
	if _, err := r.q.Exec(ctx, query, productID, qty); err != nil {
		return fmt.Errorf("sumar stock: %w", err)
	}
	return nil
}

// SubtractIfAvailable resta qty solo si la fila tiene al menos qty. El guard
// quantity >= qty en el WHERE hace la verificación y la resta en un solo
// round-trip: con cero filas afectadas no se escribió nada.
func (r *StockRepo) SubtractIfAvailable(ctx context.Context, pool entity.StockPool, productID string, qty int) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET quantity = quantity - $2, updated_at = now()
		WHERE product_id = $1 AND quantity >= $2`, tableFor(pool))
	cmd, err := r.q.Exec(ctx, query, productID, qty)
	if err != nil {
		return false, fmt.Errorf("restar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Set fija la cantidad absoluta del pool (upsert). Solo lo usa el importador
// de reconciliación.
func (r *StockRepo) Set(ctx context.Context, pool entity.StockPool, productID string, qty int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`, tableFor(pool))
	if _, err := r.q.Exec(ctx, query, productID, qty); err != nil {
		return fmt.Errorf("fijar stock: %w", err)
	}
	return nil
}

// Summary agrega los totales globales sobre productos activos.
func (r *StockRepo) Summary(ctx context.Context) (*entity.StockSummary, error) {
	query := `
		SELECT COUNT(p.id),
		       COALESCE(SUM(s.quantity), 0),
		       COALESCE(SUM(d.quantity), 0)
		FROM products p
		LEFT JOIN stocks s ON s.product_id = p.id
		LEFT JOIN defect_stocks d ON d.product_id = p.id
		WHERE p.is_deleted = false`
	var sum entity.StockSummary
	err := r.q.QueryRow(ctx, query).Scan(&sum.TotalProducts, &sum.TotalStock, &sum.TotalDefect)
	if err != nil {
		return nil, fmt.Errorf("resumen de stock: %w", err)
	}
	return &sum, nil
}
