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

var _ repository.SourceRepository = (*SourceRepo)(nil)

// SourceRepo implementación de SourceRepository sobre PostgreSQL.
type SourceRepo struct {
	q Querier
}

// NewSourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSourceRepository(q Querier) *SourceRepo {
	return &SourceRepo{q: q}
}

// Create persiste una fuente nueva. Name es único.
func (r *SourceRepo) Create(ctx context.Context, source *entity.Source) error {
	query := `
		INSERT INTO sources (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		source.ID, source.Name, source.Description, source.CreatedAt, source.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert source: %w", err)
	}
	return nil
}

// GetByID obtiene una fuente por ID.
func (r *SourceRepo) GetByID(ctx context.Context, id string) (*entity.Source, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM sources WHERE id = $1`
	var s entity.Source
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return &s, nil
}

// List lista todas las fuentes ordenadas por nombre.
func (r *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM sources ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var list []*entity.Source
	for rows.Next() {
		var s entity.Source
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una fuente existente.
func (r *SourceRepo) Update(ctx context.Context, source *entity.Source) error {
	query := `
		UPDATE sources SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, source.ID, source.Name, source.Description, source.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update source: %w", err)
	}
	return nil
}

// Delete elimina la fuente. Devuelve false si no existía. Los movimientos
// históricos quedan con source_id en NULL (FK ON DELETE SET NULL).
func (r *SourceRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sources WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete source: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Any indica si existe al menos una fuente (para el seed).
func (r *SourceRepo) Any(ctx context.Context) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sources)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check sources: %w", err)
	}
	return exists, nil
}
