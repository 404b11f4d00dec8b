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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, barcode, gtin, seller_sku, size, brand, color, is_deleted, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, gtin, seller_sku, size, brand, color, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Barcode, product.GTIN, product.SellerSKU, product.Size,
		product.Brand, product.Color, product.IsDeleted, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID. Excluye borrados lógicos.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND is_deleted = false`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByBarcode obtiene un producto por barcode, incluyendo borrados lógicos:
// el importador reactiva productos borrados en vez de duplicar el barcode.
func (r *ProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE barcode = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente (incluye is_deleted: el importador
// reactiva productos).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $2, gtin = $3, seller_sku = $4, size = $5, brand = $6,
		    color = $7, is_deleted = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Barcode, product.GTIN, product.SellerSKU, product.Size,
		product.Brand, product.Color, product.IsDeleted, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como borrado. Devuelve false si no existía o
// ya estaba borrado.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// buildProductListQuery arma el SELECT paginado de productos activos con las
// cantidades de ambos pools. El filtro de barcode es subcadena
// case-insensitive (ILIKE), igual que el contrato del API.
func buildProductListQuery(barcodeSearch string, limit, offset int) (string, []any) {
	query := `
		SELECT p.id, p.barcode, p.gtin, p.seller_sku, p.size, p.brand, p.color,
		       p.is_deleted, p.created_at, p.updated_at,
		       COALESCE(s.quantity, 0), COALESCE(d.quantity, 0)
		FROM products p
		LEFT JOIN stocks s ON s.product_id = p.id
		LEFT JOIN defect_stocks d ON d.product_id = p.id
		WHERE p.is_deleted = false`
	args := []any{}
	if barcodeSearch != "" {
		args = append(args, "%"+barcodeSearch+"%")
		query += fmt.Sprintf(" AND p.barcode ILIKE $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return query, args
}

func buildProductCountQuery(barcodeSearch string) (string, []any) {
	query := `SELECT COUNT(*) FROM products WHERE is_deleted = false`
	args := []any{}
	if barcodeSearch != "" {
		args = append(args, "%"+barcodeSearch+"%")
		query += " AND barcode ILIKE $1"
	}
	return query, args
}

// ListActive lista productos activos paginados con las cantidades de ambos
// pools, filtrando por subcadena de barcode (case-insensitive) si se indica.
func (r *ProductRepo) ListActive(ctx context.Context, barcodeSearch string, limit, offset int) ([]repository.ProductStockRow, error) {
	query, args := buildProductListQuery(barcodeSearch, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.Barcode, &p.GTIN, &p.SellerSKU, &p.Size, &p.Brand, &p.Color,
			&p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
			&row.StockQuantity, &row.DefectQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountActive cuenta productos activos con el mismo filtro de ListActive.
func (r *ProductRepo) CountActive(ctx context.Context, barcodeSearch string) (int, error) {
	query, args := buildProductCountQuery(barcodeSearch)
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.GTIN, &p.SellerSKU, &p.Size, &p.Brand, &p.Color,
		&p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
