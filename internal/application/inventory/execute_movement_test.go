package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
)

// --- fakes en memoria ---

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, id string) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted {
		return false, nil
	}
	p.IsDeleted = true
	return true, nil
}

func (r *memProductRepo) ListActive(_ context.Context, _ string, _, _ int) ([]repository.ProductStockRow, error) {
	return nil, nil
}

func (r *memProductRepo) CountActive(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type memStockRepo struct {
	pools map[entity.StockPool]map[string]int
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{pools: map[entity.StockPool]map[string]int{
		entity.PoolGood:   {},
		entity.PoolDefect: {},
	}}
}

func (r *memStockRepo) CreateForProduct(_ context.Context, productID string) error {
	r.pools[entity.PoolGood][productID] = 0
	r.pools[entity.PoolDefect][productID] = 0
	return nil
}

func (r *memStockRepo) Get(_ context.Context, pool entity.StockPool, productID string) (*entity.Stock, error) {
	q, ok := r.pools[pool][productID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, Pool: pool, Quantity: q}, nil
}

func (r *memStockRepo) Add(_ context.Context, pool entity.StockPool, productID string, qty int) error {
	r.pools[pool][productID] += qty
	return nil
}

func (r *memStockRepo) SubtractIfAvailable(_ context.Context, pool entity.StockPool, productID string, qty int) (bool, error) {
	if r.pools[pool][productID] < qty {
		return false, nil
	}
	r.pools[pool][productID] -= qty
	return true, nil
}

func (r *memStockRepo) Set(_ context.Context, pool entity.StockPool, productID string, qty int) error {
	r.pools[pool][productID] = qty
	return nil
}

func (r *memStockRepo) Summary(_ context.Context) (*entity.StockSummary, error) {
	return &entity.StockSummary{}, nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context, _ repository.MovementFilter, _, _ int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

func (r *memMovementRepo) Count(_ context.Context, _ repository.MovementFilter) (int, error) {
	return len(r.movements), nil
}

type memSourceRepo struct {
	sources map[string]*entity.Source
}

func (r *memSourceRepo) Create(_ context.Context, s *entity.Source) error {
	r.sources[s.ID] = s
	return nil
}

func (r *memSourceRepo) GetByID(_ context.Context, id string) (*entity.Source, error) {
	return r.sources[id], nil
}

func (r *memSourceRepo) List(_ context.Context) ([]*entity.Source, error) { return nil, nil }

func (r *memSourceRepo) Update(_ context.Context, s *entity.Source) error { return nil }

func (r *memSourceRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.sources[id]
	delete(r.sources, id)
	return ok, nil
}

func (r *memSourceRepo) Any(_ context.Context) (bool, error) {
	return len(r.sources) > 0, nil
}

type memDCRepo struct {
	centers map[string]*entity.DistributionCenter
}

func (r *memDCRepo) Create(_ context.Context, dc *entity.DistributionCenter) error {
	r.centers[dc.ID] = dc
	return nil
}

func (r *memDCRepo) GetByID(_ context.Context, id string) (*entity.DistributionCenter, error) {
	return r.centers[id], nil
}

func (r *memDCRepo) List(_ context.Context) ([]*entity.DistributionCenter, error) { return nil, nil }

func (r *memDCRepo) Update(_ context.Context, dc *entity.DistributionCenter) error { return nil }

func (r *memDCRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.centers[id]
	delete(r.centers, id)
	return ok, nil
}

func (r *memDCRepo) Any(_ context.Context) (bool, error) {
	return len(r.centers) > 0, nil
}

type memTxRunner struct {
	movRepo     *memMovementRepo
	stockRepo   *memStockRepo
	productRepo *memProductRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(repository.StockMovementRepository, repository.StockRepository, repository.ProductRepository) error) error {
	return fn(tr.movRepo, tr.stockRepo, tr.productRepo)
}

// --- arnés ---

type movementFixture struct {
	uc        *ExecuteMovementUseCase
	stockRepo *memStockRepo
	movRepo   *memMovementRepo
	products  *memProductRepo
	sources   *memSourceRepo
	centers   *memDCRepo
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	products := &memProductRepo{products: map[string]*entity.Product{}}
	sources := &memSourceRepo{sources: map[string]*entity.Source{}}
	centers := &memDCRepo{centers: map[string]*entity.DistributionCenter{}}
	tr := &memTxRunner{
		movRepo:     &memMovementRepo{},
		stockRepo:   newMemStockRepo(),
		productRepo: products,
	}

	products.products["p-1"] = &entity.Product{
		ID: "p-1", Barcode: "4607025398765", GTIN: "04607025398765",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	tr.stockRepo.pools[entity.PoolGood]["p-1"] = 10
	tr.stockRepo.pools[entity.PoolDefect]["p-1"] = 10
	sources.sources["s-1"] = &entity.Source{ID: "s-1", Name: "Поставщик РФ"}
	centers.centers["dc-1"] = &entity.DistributionCenter{ID: "dc-1", Code: "WB-KAZAN", Marketplace: "WB"}

	return &movementFixture{
		uc:        NewExecuteMovementUseCase(tr, products, sources, centers),
		stockRepo: tr.stockRepo,
		movRepo:   tr.movRepo,
		products:  products,
		sources:   sources,
		centers:   centers,
	}
}

func (f *movementFixture) good() int   { return f.stockRepo.pools[entity.PoolGood]["p-1"] }
func (f *movementFixture) defect() int { return f.stockRepo.pools[entity.PoolDefect]["p-1"] }

func strPtr(s string) *string { return &s }

// --- tests ---

func TestExecuteAppliesEffectPerOperation(t *testing.T) {
	cases := []struct {
		op         entity.OperationType
		sourceID   *string
		dcID       *string
		wantGood   int
		wantDefect int
	}{
		{op: entity.OpReceipt, wantGood: 13, wantDefect: 10},
		{op: entity.OpReceiptDefect, wantGood: 10, wantDefect: 13},
		{op: entity.OpShipmentRC, dcID: strPtr("dc-1"), wantGood: 7, wantDefect: 10},
		{op: entity.OpReturnPickup, sourceID: strPtr("s-1"), wantGood: 13, wantDefect: 10},
		{op: entity.OpReturnDefect, sourceID: strPtr("s-1"), wantGood: 10, wantDefect: 13},
		{op: entity.OpSelfPurchase, sourceID: strPtr("s-1"), wantGood: 13, wantDefect: 10},
		{op: entity.OpWriteOff, wantGood: 7, wantDefect: 13},
		{op: entity.OpRestoration, wantGood: 13, wantDefect: 7},
		{op: entity.OpUtilization, wantGood: 10, wantDefect: 7},
	}

	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			f := newMovementFixture(t)
			resp, err := f.uc.Execute(context.Background(), MovementInput{
				ProductID:            "p-1",
				OperationType:        tc.op,
				Quantity:             3,
				SourceID:             tc.sourceID,
				DistributionCenterID: tc.dcID,
				UserID:               "u-1",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantGood, f.good())
			assert.Equal(t, tc.wantDefect, f.defect())

			// Cada movimiento deja exactamente un registro en el journal.
			require.Len(t, f.movRepo.movements, 1)
			mov := f.movRepo.movements[0]
			assert.Equal(t, tc.op, mov.OperationType)
			assert.Equal(t, 3, mov.Quantity)
			assert.Equal(t, "u-1", mov.UserID)
			assert.Equal(t, mov.ID, resp.ID)
			assert.Equal(t, "4607025398765", resp.ProductBarcode)
			assert.Equal(t, "04607025398765", resp.ProductGTIN)
		})
	}
}

func TestExecuteInsufficientGoodStock(t *testing.T) {
	f := newMovementFixture(t)
	_, err := f.uc.Execute(context.Background(), MovementInput{
		ProductID:            "p-1",
		OperationType:        entity.OpShipmentRC,
		Quantity:             11,
		DistributionCenterID: strPtr("dc-1"),
		UserID:               "u-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se escribe: pools intactos y journal vacío.
	assert.Equal(t, 10, f.good())
	assert.Equal(t, 10, f.defect())
	assert.Empty(t, f.movRepo.movements)
}

func TestExecuteInsufficientDefectStock(t *testing.T) {
	f := newMovementFixture(t)
	f.stockRepo.pools[entity.PoolDefect]["p-1"] = 2

	_, err := f.uc.Execute(context.Background(), MovementInput{
		ProductID:     "p-1",
		OperationType: entity.OpRestoration,
		Quantity:      5,
		UserID:        "u-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, f.good())
	assert.Equal(t, 2, f.defect())
	assert.Empty(t, f.movRepo.movements)
}

func TestExecuteExactStockReachesZero(t *testing.T) {
	f := newMovementFixture(t)
	_, err := f.uc.Execute(context.Background(), MovementInput{
		ProductID:            "p-1",
		OperationType:        entity.OpShipmentRC,
		Quantity:             10,
		DistributionCenterID: strPtr("dc-1"),
		UserID:               "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.good())
}

func TestExecuteRejectsInvalidInput(t *testing.T) {
	f := newMovementFixture(t)

	cases := []struct {
		name string
		in   MovementInput
	}{
		{"cantidad cero", MovementInput{ProductID: "p-1", OperationType: entity.OpReceipt, Quantity: 0}},
		{"cantidad negativa", MovementInput{ProductID: "p-1", OperationType: entity.OpReceipt, Quantity: -3}},
		{"operación desconocida", MovementInput{ProductID: "p-1", OperationType: "teleport", Quantity: 1}},
		{"shipment_rc sin centro", MovementInput{ProductID: "p-1", OperationType: entity.OpShipmentRC, Quantity: 1}},
		{"return_pickup sin source", MovementInput{ProductID: "p-1", OperationType: entity.OpReturnPickup, Quantity: 1}},
		{"return_defect sin source", MovementInput{ProductID: "p-1", OperationType: entity.OpReturnDefect, Quantity: 1}},
		{"self_purchase sin source", MovementInput{ProductID: "p-1", OperationType: entity.OpSelfPurchase, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.UserID = "u-1"
			_, err := f.uc.Execute(context.Background(), tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.movRepo.movements)
	assert.Equal(t, 10, f.good())
}

func TestExecuteUnknownReferences(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Execute(context.Background(), MovementInput{
		ProductID: "no-existe", OperationType: entity.OpReceipt, Quantity: 1, UserID: "u-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Execute(context.Background(), MovementInput{
		ProductID: "p-1", OperationType: entity.OpReturnPickup, Quantity: 1,
		SourceID: strPtr("s-fantasma"), UserID: "u-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Execute(context.Background(), MovementInput{
		ProductID: "p-1", OperationType: entity.OpShipmentRC, Quantity: 1,
		DistributionCenterID: strPtr("dc-fantasma"), UserID: "u-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecuteRejectsSoftDeletedProduct(t *testing.T) {
	f := newMovementFixture(t)
	f.products.products["p-1"].IsDeleted = true

	_, err := f.uc.Execute(context.Background(), MovementInput{
		ProductID: "p-1", OperationType: entity.OpReceipt, Quantity: 1, UserID: "u-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.movRepo.movements)
}
