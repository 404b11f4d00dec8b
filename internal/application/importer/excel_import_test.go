package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// --- fakes en memoria ---

type fakeProductRepo struct {
	byBarcode map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byBarcode: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.byBarcode[p.Barcode]; ok {
		return fmt.Errorf("barcode duplicado")
	}
	cp := *p
	r.byBarcode[p.Barcode] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.byBarcode {
		if p.ID == id && !p.IsDeleted {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	p, ok := r.byBarcode[barcode]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byBarcode[p.Barcode] = &cp
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id string) (bool, error) {
	for _, p := range r.byBarcode {
		if p.ID == id && !p.IsDeleted {
			p.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ListActive(_ context.Context, _ string, _, _ int) ([]repository.ProductStockRow, error) {
	return nil, nil
}

func (r *fakeProductRepo) CountActive(_ context.Context, _ string) (int, error) {
	return len(r.byBarcode), nil
}

type fakeStockRepo struct {
	quantities map[entity.StockPool]map[string]int
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: map[entity.StockPool]map[string]int{
		entity.PoolGood:   {},
		entity.PoolDefect: {},
	}}
}

func (r *fakeStockRepo) CreateForProduct(_ context.Context, productID string) error {
	r.quantities[entity.PoolGood][productID] = 0
	r.quantities[entity.PoolDefect][productID] = 0
	return nil
}

func (r *fakeStockRepo) Get(_ context.Context, pool entity.StockPool, productID string) (*entity.Stock, error) {
	q, ok := r.quantities[pool][productID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, Pool: pool, Quantity: q, UpdatedAt: time.Now()}, nil
}

func (r *fakeStockRepo) Add(_ context.Context, pool entity.StockPool, productID string, qty int) error {
	r.quantities[pool][productID] += qty
	return nil
}

func (r *fakeStockRepo) SubtractIfAvailable(_ context.Context, pool entity.StockPool, productID string, qty int) (bool, error) {
	if r.quantities[pool][productID] < qty {
		return false, nil
	}
	r.quantities[pool][productID] -= qty
	return true, nil
}

func (r *fakeStockRepo) Set(_ context.Context, pool entity.StockPool, productID string, qty int) error {
	r.quantities[pool][productID] = qty
	return nil
}

func (r *fakeStockRepo) Summary(_ context.Context) (*entity.StockSummary, error) {
	s := &entity.StockSummary{}
	for _, q := range r.quantities[entity.PoolGood] {
		s.TotalStock += q
		s.TotalProducts++
	}
	for _, q := range r.quantities[entity.PoolDefect] {
		s.TotalDefect += q
	}
	return s, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context, _ repository.MovementFilter, _, _ int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) Count(_ context.Context, _ repository.MovementFilter) (int, error) {
	return len(r.movements), nil
}

// fakeTxRunner ejecuta la función directamente, sin transacción real.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	stockRepo   *fakeStockRepo
	productRepo *fakeProductRepo
	runs        int
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		movRepo:     &fakeMovementRepo{},
		stockRepo:   newFakeStockRepo(),
		productRepo: newFakeProductRepo(),
	}
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockMovementRepository, repository.StockRepository, repository.ProductRepository) error) error {
	tr.runs++
	return fn(tr.movRepo, tr.stockRepo, tr.productRepo)
}

// --- helpers de workbook ---

type importRow struct {
	barcode, sku, size, brand string
	stock, defect             string
}

func buildWorkbook(t *testing.T, sheet string, rows []importRow) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	header := []interface{}{"Баркод", "Артикул продавца", "Размер", "Бренд", "АКТУАЛЬНЫЙ ОСТАТОК", "БРАКИ"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.barcode, row.sku, row.size, row.brand, row.stock, row.defect}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// --- tests ---

func TestImportCreatesAndUpdates(t *testing.T) {
	tr := newFakeTxRunner()
	existing := &entity.Product{
		ID: "p-1", Barcode: "4607025398765", GTIN: "04607025398765",
		SellerSKU: "viejo", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, tr.productRepo.Create(context.Background(), existing))
	tr.stockRepo.quantities[entity.PoolGood]["p-1"] = 3

	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, SheetName, []importRow{
		{barcode: "4607025398765", sku: "SKU-1", size: "M", brand: "Acme", stock: "10", defect: "2"},
		{barcode: "NEW-001", sku: "SKU-2", size: "L", brand: "Acme", stock: "5", defect: "0"},
	})

	result, err := uc.Import(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Errors)

	// Escritura absoluta: 3 → 10, no 3+10.
	assert.Equal(t, 10, tr.stockRepo.quantities[entity.PoolGood]["p-1"])
	assert.Equal(t, 2, tr.stockRepo.quantities[entity.PoolDefect]["p-1"])

	updatedProduct, err := tr.productRepo.GetByBarcode(context.Background(), "4607025398765")
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", updatedProduct.SellerSKU)

	created, err := tr.productRepo.GetByBarcode(context.Background(), "NEW-001")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "IMPNEW-0010000", created.GTIN)
	assert.Equal(t, 5, tr.stockRepo.quantities[entity.PoolGood][created.ID])
}

func TestImportSameFileTwiceIsIdempotent(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)
	rows := []importRow{
		{barcode: "4607025398765", sku: "SKU-1", size: "M", brand: "Acme", stock: "10", defect: "2"},
		{barcode: "NEW-001", sku: "SKU-2", size: "L", brand: "Acme", stock: "5", defect: "0"},
	}

	first, err := uc.Import(context.Background(), buildWorkbook(t, SheetName, rows))
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Updated)

	// Segunda pasada con el mismo archivo: todo son updates y las cantidades
	// no cambian (escritura absoluta, no acumulativa).
	second, err := uc.Import(context.Background(), buildWorkbook(t, SheetName, rows))
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, 2, second.TotalRows)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)
	assert.Empty(t, second.Errors)

	p1, err := tr.productRepo.GetByBarcode(context.Background(), "4607025398765")
	require.NoError(t, err)
	assert.Equal(t, 10, tr.stockRepo.quantities[entity.PoolGood][p1.ID])
	assert.Equal(t, 2, tr.stockRepo.quantities[entity.PoolDefect][p1.ID])

	p2, err := tr.productRepo.GetByBarcode(context.Background(), "NEW-001")
	require.NoError(t, err)
	assert.Equal(t, 5, tr.stockRepo.quantities[entity.PoolGood][p2.ID])
	assert.Equal(t, 0, tr.stockRepo.quantities[entity.PoolDefect][p2.ID])
}

func TestImportRevivesSoftDeletedProduct(t *testing.T) {
	tr := newFakeTxRunner()
	deleted := &entity.Product{ID: "p-9", Barcode: "OLD-9", GTIN: "IMPOLD-9000000", IsDeleted: true}
	require.NoError(t, tr.productRepo.Create(context.Background(), deleted))

	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, SheetName, []importRow{
		{barcode: "OLD-9", sku: "SKU-9", stock: "7", defect: "1"},
	})

	result, err := uc.Import(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Created)

	p, err := tr.productRepo.GetByBarcode(context.Background(), "OLD-9")
	require.NoError(t, err)
	assert.False(t, p.IsDeleted)
	assert.Equal(t, 7, tr.stockRepo.quantities[entity.PoolGood]["p-9"])
}

func TestImportRejectsDuplicateBarcodes(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, SheetName, []importRow{
		{barcode: "AAA", stock: "1"},
		{barcode: "BBB", stock: "2"},
		{barcode: "AAA", stock: "3"},
	})

	result, err := uc.Import(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 4, result.Errors[0].RowNumber)
	assert.Equal(t, "barcode", result.Errors[0].Field)

	// Todo o nada: ninguna fila se aplica, ni siquiera las válidas.
	assert.Equal(t, 0, tr.runs)
	p, err := tr.productRepo.GetByBarcode(context.Background(), "BBB")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestImportRejectsNegativeQuantities(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, SheetName, []importRow{
		{barcode: "AAA", stock: "-5", defect: "0"},
		{barcode: "BBB", stock: "1", defect: "-1"},
	})

	result, err := uc.Import(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 0, tr.runs)
}

func TestImportMissingSheet(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, "OtraHoja", nil)

	result, err := uc.Import(context.Background(), r)
	require.ErrorIs(t, err, domain.ErrFileFormat)
	assert.Nil(t, result)
	assert.Equal(t, 0, tr.runs)
}

func TestImportMissingBarcodeColumn(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SheetName))
	header := []interface{}{"Бренд", "АКТУАЛЬНЫЙ ОСТАТОК"}
	require.NoError(t, f.SetSheetRow(SheetName, "A1", &header))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := uc.Import(context.Background(), bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, domain.ErrFileFormat)
	assert.Contains(t, err.Error(), "Баркод")
	assert.Nil(t, result)
}

func TestImportNotAnExcelFile(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)

	result, err := uc.Import(context.Background(), strings.NewReader("esto no es un xlsx"))
	require.ErrorIs(t, err, domain.ErrFileFormat)
	assert.Nil(t, result)
	assert.Equal(t, 0, tr.runs)
}

func TestImportSkipsEmptyRowsAndMissingBarcode(t *testing.T) {
	tr := newFakeTxRunner()
	uc := NewExcelImportUseCase(tr)
	r := buildWorkbook(t, SheetName, []importRow{
		{barcode: "AAA", stock: "1"},
		{}, // fila vacía: se ignora en silencio
		{sku: "sin-barcode", stock: "2"},
	})

	result, err := uc.Import(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 4, result.Errors[0].RowNumber)
	assert.Equal(t, "barcode", result.Errors[0].Field)
}
