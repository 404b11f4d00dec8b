package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// StockUseCase lecturas agregadas de inventario.
type StockUseCase struct {
	stockRepo repository.StockRepository
}

// NewStockUseCase construye el caso de uso de stock.
func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Summary devuelve los totales globales: productos activos, stock bueno y defectuoso.
func (uc *StockUseCase) Summary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	summary, err := uc.stockRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen de stock: %w", err)
	}
	return &dto.StockSummaryResponse{
		TotalProducts: summary.TotalProducts,
		TotalStock:    summary.TotalStock,
		TotalDefect:   summary.TotalDefect,
	}, nil
}
