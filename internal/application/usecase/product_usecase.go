package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	appinventory "github.com/jhoicas/wms-marketplace/internal/application/inventory"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
	"github.com/jhoicas/wms-marketplace/pkg/gtin"
)

// ProductUseCase CRUD de productos. El alta crea también las filas de ambos
// pools de stock en cero, dentro de la misma transacción.
type ProductUseCase struct {
	txRunner    appinventory.TxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(
	txRunner appinventory.TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, stockRepo: stockRepo}
}

// Create da de alta un producto con sus dos pools en cero. Si no llega GTIN
// se deriva del barcode.
func (uc *ProductUseCase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return nil, fmt.Errorf("barcode es obligatorio: %w", domain.ErrInvalidInput)
	}

	g := strings.TrimSpace(req.GTIN)
	if g == "" {
		g = gtin.Derive(barcode)
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Barcode:   barcode,
		GTIN:      g,
		SellerSKU: req.SellerSKU,
		Size:      req.Size,
		Brand:     req.Brand,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return stockRepo.CreateForProduct(ctx, product.ID)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto activo con las cantidades de ambos pools.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductWithStockResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	resp := &dto.ProductWithStockResponse{ProductResponse: *toProductResponse(product)}
	if good, err := uc.stockRepo.Get(ctx, entity.PoolGood, id); err != nil {
		return nil, err
	} else if good != nil {
		resp.StockQuantity = good.Quantity
	}
	if defect, err := uc.stockRepo.Get(ctx, entity.PoolDefect, id); err != nil {
		return nil, err
	} else if defect != nil {
		resp.DefectQuantity = defect.Quantity
	}
	return resp, nil
}

// List devuelve productos activos paginados, con búsqueda por subcadena de barcode.
func (uc *ProductUseCase) List(ctx context.Context, barcodeSearch string, page dto.Page) (*dto.ProductListResponse, error) {
	page.Normalize()

	total, err := uc.productRepo.CountActive(ctx, barcodeSearch)
	if err != nil {
		return nil, fmt.Errorf("contar productos: %w", err)
	}
	rows, err := uc.productRepo.ListActive(ctx, barcodeSearch, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	items := make([]dto.ProductWithStockResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ProductWithStockResponse{
			ProductResponse: *toProductResponse(&row.Product),
			StockQuantity:   row.StockQuantity,
			DefectQuantity:  row.DefectQuantity,
		})
	}
	return &dto.ProductListResponse{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Pages:    page.Pages(total),
	}, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
func (uc *ProductUseCase) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	if req.Barcode != nil {
		if strings.TrimSpace(*req.Barcode) == "" {
			return nil, fmt.Errorf("barcode no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		product.Barcode = strings.TrimSpace(*req.Barcode)
	}
	if req.GTIN != nil {
		product.GTIN = strings.TrimSpace(*req.GTIN)
	}
	if req.SellerSKU != nil {
		product.SellerSKU = *req.SellerSKU
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Color != nil {
		product.Color = *req.Color
	}

	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete hace borrado lógico: el producto desaparece de los listados pero sus
// movimientos históricos siguen en el journal.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.productRepo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if !deleted {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		GTIN:      p.GTIN,
		SellerSKU: p.SellerSKU,
		Size:      p.Size,
		Brand:     p.Brand,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
