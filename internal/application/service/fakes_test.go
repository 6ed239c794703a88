package service

import (
	"context"
	"sync"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/pkg/insight"
	"github.com/google/uuid"
)

// fakeProductRepo is an in-memory ProductRepository for service tests
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	order    []uuid.UUID
	err      error // when set, every call fails with this error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.products[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	r.products[product.ID] = &clone
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	found := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			found = append(found, *product)
		}
	}
	return found, nil
}

func (r *fakeProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil
	}
	for name, value := range fields {
		switch name {
		case "name":
			product.Name = value.(string)
		case "category":
			product.Category = value.(string)
		case "cost":
			product.Cost = value.(int64)
		case "price":
			product.Price = value.(int64)
		case "stock":
			product.Stock = value.(int)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	all := make([]entity.Product, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, *r.products[id])
	}
	return all, nil
}

func (r *fakeProductRepo) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entity.Product, 0)
	for _, p := range all {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

func (r *fakeProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	product, ok := r.products[id]
	if !ok || product.Stock < amount {
		return false, nil
	}
	product.Stock -= amount
	return true, nil
}

func (r *fakeProductRepo) AtomicIncrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if product, ok := r.products[id]; ok {
		product.Stock += amount
	}
	return nil
}

// fakeSaleRepo is an in-memory append-only SaleRepository
type fakeSaleRepo struct {
	mu    sync.Mutex
	sales []entity.Sale
	err   error
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.LedgerFilterParams) ([]entity.Sale, int64, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeSaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	all := make([]entity.Sale, len(r.sales))
	copy(all, r.sales)
	return all, nil
}

// fakeAdSpendRepo is an in-memory append-only AdSpendRepository
type fakeAdSpendRepo struct {
	mu  sync.Mutex
	ads []entity.AdSpend
	err error
}

func (r *fakeAdSpendRepo) Create(ctx context.Context, spend *entity.AdSpend) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if spend.ID == uuid.Nil {
		spend.ID = uuid.New()
	}
	r.ads = append(r.ads, *spend)
	return nil
}

func (r *fakeAdSpendRepo) List(ctx context.Context, params *repository.LedgerFilterParams) ([]entity.AdSpend, int64, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeAdSpendRepo) ListAll(ctx context.Context) ([]entity.AdSpend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	all := make([]entity.AdSpend, len(r.ads))
	copy(all, r.ads)
	return all, nil
}

// fakeInsightProvider returns a canned report or error and captures the
// snapshot it was handed
type fakeInsightProvider struct {
	report   string
	err      error
	snapshot insight.Snapshot
	calls    int
}

func (p *fakeInsightProvider) GenerateInsight(ctx context.Context, snap insight.Snapshot) (string, error) {
	p.calls++
	p.snapshot = snap
	if p.err != nil {
		return "", p.err
	}
	return p.report, nil
}
