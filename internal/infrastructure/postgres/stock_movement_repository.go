package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del journal sobre PostgreSQL (usable con
// pool o tx). Solo INSERT y SELECT: las filas nunca se modifican.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento en el journal.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, operation_type, product_id, quantity, source_id, distribution_center_id, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.OperationType, movement.ProductID, movement.Quantity,
		movement.SourceID, movement.DistributionCenterID, movement.UserID,
		movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.operation_type, m.product_id, m.quantity, m.source_id,
	       m.distribution_center_id, m.user_id, m.notes, m.created_at,
	       p.barcode, p.gtin
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id`

// GetByID obtiene un movimiento por ID con barcode/GTIN denormalizados.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos del más reciente al más antiguo aplicando los
// filtros no vacíos.
func (r *StockMovementRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	query, args := buildMovementQuery(movementSelect, filter)
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta movimientos con los mismos filtros de List.
func (r *StockMovementRepo) Count(ctx context.Context, filter repository.MovementFilter) (int, error) {
	base := `SELECT COUNT(*) FROM stock_movements m`
	query, args := buildMovementQuery(base, filter)
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// buildMovementQuery agrega condiciones WHERE por cada filtro presente.
func buildMovementQuery(base string, filter repository.MovementFilter) (string, []any) {
	query := base + ` WHERE 1=1`
	args := []any{}
	if filter.OperationType != "" {
		args = append(args, filter.OperationType)
		query += fmt.Sprintf(" AND m.operation_type = $%d", len(args))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		query += fmt.Sprintf(" AND m.product_id = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND m.created_at >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND m.created_at <= $%d", len(args))
	}
	return query, args
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.OperationType, &m.ProductID, &m.Quantity, &m.SourceID,
		&m.DistributionCenterID, &m.UserID, &m.Notes, &m.CreatedAt,
		&m.ProductBarcode, &m.ProductGTIN,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
