package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	appinventory "github.com/jhoicas/wms-marketplace/internal/application/inventory"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
	"github.com/jhoicas/wms-marketplace/pkg/gtin"
)

// SheetName hoja esperada dentro del workbook (reporte "Сводная" del marketplace).
const SheetName = "Сводная"

// batchSize filas por transacción en la fase de aplicación. Cada lote hace
// commit independiente: una importación larga no bloquea movimientos sueltos
// más allá del lote en curso.
const batchSize = 500

// columnMapping encabezados conocidos del reporte y su campo semántico.
// Solo "Баркод" es obligatorio.
var columnMapping = map[string]string{
	"Баркод":             "barcode",
	"Артикул продавца":   "seller_sku",
	"Размер":             "size",
	"Бренд":              "brand",
	"АКТУАЛЬНЫЙ ОСТАТОК": "stock_quantity",
	"БРАКИ":              "defect_quantity",
}

// Row una fila parseada del Excel: snapshot absoluto de un producto.
type Row struct {
	Barcode        string
	SellerSKU      string
	Size           string
	Brand          string
	StockQuantity  int
	DefectQuantity int
	RowNumber      int // 1-based, contando el encabezado como fila 1
}

// ExcelImportUseCase reconcilia el inventario contra un snapshot tabular:
// fija cantidades absolutas (no deltas) y NO genera registros en el journal.
type ExcelImportUseCase struct {
	txRunner appinventory.TxRunner
}

// NewExcelImportUseCase construye el caso de uso.
func NewExcelImportUseCase(txRunner appinventory.TxRunner) *ExcelImportUseCase {
	return &ExcelImportUseCase{txRunner: txRunner}
}

// Import ejecuta el pipeline completo: parse → validación → aplicación por
// lotes. Fallos estructurales del archivo devuelven ErrFileFormat; cualquier
// error de parseo o validación suprime todas las escrituras; solo un fallo
// durante la aplicación puede dejar lotes previos persistidos.
func (uc *ExcelImportUseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, parseErrors, err := parseWorkbook(r)
	if err != nil {
		return nil, err
	}
	if len(parseErrors) > 0 {
		return &dto.ImportResult{
			TotalRows: 0,
			Errors:    parseErrors,
			Success:   false,
		}, nil
	}
	if len(rows) == 0 {
		return &dto.ImportResult{Errors: []dto.ImportError{}, Success: true}, nil
	}

	if validationErrors := validateRows(rows); len(validationErrors) > 0 {
		return &dto.ImportResult{
			TotalRows: len(rows),
			Errors:    validationErrors,
			Success:   false,
		}, nil
	}

	var created, updated int
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		c, u, err := uc.applyBatch(ctx, rows[start:end])
		if err != nil {
			return nil, fmt.Errorf("aplicar lote desde fila %d: %w", rows[start].RowNumber, err)
		}
		created += c
		updated += u
	}

	return &dto.ImportResult{
		TotalRows: len(rows),
		Created:   created,
		Updated:   updated,
		Errors:    []dto.ImportError{},
		Success:   true,
	}, nil
}

// parseWorkbook abre el workbook, localiza la hoja y mapea encabezados.
// Errores estructurales (archivo, hoja, encabezado, columna Баркод) devuelven
// ErrFileFormat; una fila sin barcode es un error por fila y se excluye del lote.
func parseWorkbook(r io.Reader) ([]Row, []dto.ImportError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo abrir el archivo Excel: %w", domain.ErrFileFormat)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(SheetName); idx == -1 {
		return nil, nil, fmt.Errorf("hoja %q no encontrada: %w", SheetName, domain.ErrFileFormat)
	}

	allRows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo leer la hoja %q: %w", SheetName, domain.ErrFileFormat)
	}
	if len(allRows) == 0 {
		return nil, nil, fmt.Errorf("archivo vacío, no hay fila de encabezado: %w", domain.ErrFileFormat)
	}

	// Mapear encabezados conocidos a índice de columna.
	columns := map[string]int{}
	for idx, cell := range allRows[0] {
		if field, ok := columnMapping[strings.TrimSpace(cell)]; ok {
			columns[field] = idx
		}
	}
	if _, ok := columns["barcode"]; !ok {
		return nil, nil, fmt.Errorf("columna obligatoria 'Баркод' no encontrada: %w", domain.ErrFileFormat)
	}

	var errs []dto.ImportError

	var rows []Row
	for i, raw := range allRows[1:] {
		rowNum := i + 2 // el encabezado es la fila 1
		if emptyRow(raw) {
			continue
		}
		barcode := cellString(raw, columns, "barcode")
		if barcode == "" {
			errs = append(errs, dto.ImportError{
				RowNumber: rowNum, Field: "barcode",
				Message: "barcode es obligatorio",
			})
			continue
		}
		rows = append(rows, Row{
			Barcode:        barcode,
			SellerSKU:      cellString(raw, columns, "seller_sku"),
			Size:           cellString(raw, columns, "size"),
			Brand:          cellString(raw, columns, "brand"),
			StockQuantity:  cellInt(raw, columns, "stock_quantity"),
			DefectQuantity: cellInt(raw, columns, "defect_quantity"),
			RowNumber:      rowNum,
		})
	}
	return rows, errs, nil
}

// validateRows aplica las reglas de lote: barcodes duplicados (error en cada
// ocurrencia posterior a la primera) y cantidades negativas.
func validateRows(rows []Row) []dto.ImportError {
	var errs []dto.ImportError
	seen := map[string]int{}
	for _, row := range rows {
		if first, dup := seen[row.Barcode]; dup {
			errs = append(errs, dto.ImportError{
				RowNumber: row.RowNumber, Field: "barcode",
				Message: fmt.Sprintf("barcode duplicado, primera ocurrencia en fila %d", first),
			})
		} else {
			seen[row.Barcode] = row.RowNumber
		}
		if row.StockQuantity < 0 {
			errs = append(errs, dto.ImportError{
				RowNumber: row.RowNumber, Field: "stock_quantity",
				Message: "la cantidad de stock no puede ser negativa",
			})
		}
		if row.DefectQuantity < 0 {
			errs = append(errs, dto.ImportError{
				RowNumber: row.RowNumber, Field: "defect_quantity",
				Message: "la cantidad de defectuosos no puede ser negativa",
			})
		}
	}
	return errs
}

// applyBatch reconcilia un lote dentro de una transacción propia. Escritura
// absoluta: Set fija la cantidad de cada pool al valor del snapshot.
func (uc *ExcelImportUseCase) applyBatch(ctx context.Context, batch []Row) (created, updated int, err error) {
	err = uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, row := range batch {
			product, err := productRepo.GetByBarcode(ctx, row.Barcode)
			if err != nil {
				return err
			}
			if product != nil {
				product.SellerSKU = row.SellerSKU
				product.Size = row.Size
				product.Brand = row.Brand
				product.IsDeleted = false
				product.UpdatedAt = now
				if err := productRepo.Update(ctx, product); err != nil {
					return err
				}
				updated++
			} else {
				product = &entity.Product{
					ID:        uuid.New().String(),
					Barcode:   row.Barcode,
					GTIN:      gtin.Derive(row.Barcode),
					SellerSKU: row.SellerSKU,
					Size:      row.Size,
					Brand:     row.Brand,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := productRepo.Create(ctx, product); err != nil {
					return err
				}
				created++
			}
			if err := stockRepo.Set(ctx, entity.PoolGood, product.ID, row.StockQuantity); err != nil {
				return err
			}
			if err := stockRepo.Set(ctx, entity.PoolDefect, product.ID, row.DefectQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellString(cells []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// cellInt parsea la celda como entero; celdas vacías o no numéricas cuentan
// como 0 (el reporte trae a veces celdas con fórmulas vaciadas).
func cellInt(cells []string, columns map[string]int, field string) int {
	s := cellString(cells, columns, field)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return int(f)
}
