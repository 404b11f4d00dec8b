package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

var _ repository.DistributionCenterRepository = (*DistributionCenterRepo)(nil)

// DistributionCenterRepo implementación de DistributionCenterRepository sobre PostgreSQL.
type DistributionCenterRepo struct {
	q Querier
}

// NewDistributionCenterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistributionCenterRepository(q Querier) *DistributionCenterRepo {
	return &DistributionCenterRepo{q: q}
}

// Create persiste un centro nuevo. Code es único.
func (r *DistributionCenterRepo) Create(ctx context.Context, dc *entity.DistributionCenter) error {
	query := `
		INSERT INTO distribution_centers (id, code, name, marketplace, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		dc.ID, dc.Code, dc.Name, dc.Marketplace, dc.CreatedAt, dc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distribution center: %w", err)
	}
	return nil
}

// GetByID obtiene un centro por ID.
func (r *DistributionCenterRepo) GetByID(ctx context.Context, id string) (*entity.DistributionCenter, error) {
	query := `
		SELECT id, code, name, marketplace, created_at, updated_at
		FROM distribution_centers WHERE id = $1`
	var dc entity.DistributionCenter
	err := r.q.QueryRow(ctx, query, id).Scan(
		&dc.ID, &dc.Code, &dc.Name, &dc.Marketplace, &dc.CreatedAt, &dc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distribution center: %w", err)
	}
	return &dc, nil
}

// List lista todos los centros ordenados por marketplace y código.
func (r *DistributionCenterRepo) List(ctx context.Context) ([]*entity.DistributionCenter, error) {
	query := `
		SELECT id, code, name, marketplace, created_at, updated_at
		FROM distribution_centers ORDER BY marketplace, code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list distribution centers: %w", err)
	}
	defer rows.Close()

	var list []*entity.DistributionCenter
	for rows.Next() {
		var dc entity.DistributionCenter
		if err := rows.Scan(&dc.ID, &dc.Code, &dc.Name, &dc.Marketplace, &dc.CreatedAt, &dc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distribution center: %w", err)
		}
		list = append(list, &dc)
	}
	return list, rows.Err()
}

// Update actualiza un centro existente.
func (r *DistributionCenterRepo) Update(ctx context.Context, dc *entity.DistributionCenter) error {
	query := `
		UPDATE distribution_centers SET code = $2, name = $3, marketplace = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, dc.ID, dc.Code, dc.Name, dc.Marketplace, dc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update distribution center: %w", err)
	}
	return nil
}

// Delete elimina el centro. Devuelve false si no existía.
func (r *DistributionCenterRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM distribution_centers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete distribution center: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Any indica si existe al menos un centro (para el seed).
func (r *DistributionCenterRepo) Any(ctx context.Context) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM distribution_centers)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check distribution centers: %w", err)
	}
	return exists, nil
}
