package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/application/metrics"
	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/internal/infrastructure/cache"
)

// WeeklySeriesDays is the number of calendar-day buckets on the dashboard chart
const WeeklySeriesDays = 7

// DashboardService derives the metrics snapshot, low-stock alerts and the
// weekly performance series from the current collections. The database is
// the single source of truth; the collection cache only serves a stale copy
// when the database read fails.
type DashboardService struct {
	productRepo       repository.ProductRepository
	saleRepo          repository.SaleRepository
	adSpendRepo       repository.AdSpendRepository
	collectionCache   *cache.CollectionCache
	lowStockThreshold int
}

// NewDashboardService creates a new dashboard service. collectionCache may
// be nil, which disables the stale-read fallback.
func NewDashboardService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	adSpendRepo repository.AdSpendRepository,
	collectionCache *cache.CollectionCache,
	lowStockThreshold int,
) *DashboardService {
	return &DashboardService{
		productRepo:       productRepo,
		saleRepo:          saleRepo,
		adSpendRepo:       adSpendRepo,
		collectionCache:   collectionCache,
		lowStockThreshold: lowStockThreshold,
	}
}

// DashboardStats is the full dashboard payload
type DashboardStats struct {
	Metrics        metrics.Snapshot      `json:"metrics"`
	WeeklySeries   []metrics.SeriesPoint `json:"weekly_series"`
	LowStock       []entity.Product      `json:"low_stock_products"`
	TotalProducts  int                   `json:"total_products"`
	TotalSales     int                   `json:"total_sales"`
	TotalAdEntries int                   `json:"total_ad_entries"`
	Stale          bool                  `json:"stale"` // true when served from the cache fallback
}

// GetDashboardStats recomputes the derived metrics from the current
// collections. Nothing derived is ever persisted.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, sales, ads, stale, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Metrics:        metrics.Compute(products, sales, ads),
		WeeklySeries:   metrics.WeeklySeries(sales, ads, time.Now(), WeeklySeriesDays),
		LowStock:       metrics.LowStock(products, s.lowStockThreshold),
		TotalProducts:  len(products),
		TotalSales:     len(sales),
		TotalAdEntries: len(ads),
		Stale:          stale,
	}, nil
}

// loadCollections reads all three collections from the database, refreshing
// the advisory cache on success. When the database is unreachable it falls
// back to the last cached copy, flagged as stale.
func (s *DashboardService) loadCollections(ctx context.Context) ([]entity.Product, []entity.Sale, []entity.AdSpend, bool, error) {
	products, perr := s.productRepo.ListAll(ctx)
	sales, serr := s.saleRepo.ListAll(ctx)
	ads, aerr := s.adSpendRepo.ListAll(ctx)

	if perr == nil && serr == nil && aerr == nil {
		s.refreshCache(ctx, products, sales, ads)
		return products, sales, ads, false, nil
	}

	firstErr := perr
	if firstErr == nil {
		firstErr = serr
	}
	if firstErr == nil {
		firstErr = aerr
	}

	cp, cs, ca, ok := s.cachedCollections(ctx)
	if !ok {
		return nil, nil, nil, false, firstErr
	}

	log.Printf("Warning: serving dashboard from cached collections: %v", firstErr)
	return cp, cs, ca, true, nil
}

func (s *DashboardService) refreshCache(ctx context.Context, products []entity.Product, sales []entity.Sale, ads []entity.AdSpend) {
	if s.collectionCache == nil {
		return
	}
	set := func(key string, v interface{}) {
		payload, err := json.Marshal(v)
		if err != nil {
			return
		}
		s.collectionCache.Set(ctx, key, payload)
	}
	set(cache.KeyProducts, products)
	set(cache.KeySales, sales)
	set(cache.KeyAds, ads)
}

func (s *DashboardService) cachedCollections(ctx context.Context) ([]entity.Product, []entity.Sale, []entity.AdSpend, bool) {
	if s.collectionCache == nil {
		return nil, nil, nil, false
	}

	var products []entity.Product
	var sales []entity.Sale
	var ads []entity.AdSpend

	get := func(key string, v interface{}) bool {
		payload, err := s.collectionCache.Get(ctx, key)
		if err != nil {
			return false
		}
		return json.Unmarshal(payload, v) == nil
	}

	if !get(cache.KeyProducts, &products) || !get(cache.KeySales, &sales) || !get(cache.KeyAds, &ads) {
		return nil, nil, nil, false
	}
	return products, sales, ads, true
}
