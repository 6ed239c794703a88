package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	coffee := &entity.Product{Name: "Premium Coffee Beans", Cost: 1250, Price: 2999, Stock: 45}
	straws := &entity.Product{Name: "Stainless Straw Set", Cost: 150, Price: 899, Stock: 8}
	productRepo := newFakeProductRepo(coffee, straws)

	today := time.Now()
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{ID: uuid.New(), ProductID: coffee.ID, Quantity: 2, Date: today.AddDate(0, 0, -1), Revenue: 5998},
	}}
	adSpendRepo := &fakeAdSpendRepo{ads: []entity.AdSpend{
		{ID: uuid.New(), Platform: "Instagram", Amount: 5000, Date: today.AddDate(0, 0, -2), Reach: 5000},
	}}

	svc := NewDashboardService(productRepo, saleRepo, adSpendRepo, nil, 10)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.TotalSales)
	assert.Equal(t, 1, stats.TotalAdEntries)
	assert.False(t, stats.Stale)

	assert.Equal(t, 59.98, stats.Metrics.TotalRevenue)
	assert.Equal(t, 25.0, stats.Metrics.TotalCostOfGoods)
	assert.Equal(t, 50.0, stats.Metrics.TotalAdSpend)

	require.Len(t, stats.WeeklySeries, WeeklySeriesDays)
	assert.Equal(t, today.Format(entity.DateLayout), stats.WeeklySeries[WeeklySeriesDays-1].Date)

	require.Len(t, stats.LowStock, 1)
	assert.Equal(t, "Stainless Straw Set", stats.LowStock[0].Name)
}

func TestGetDashboardStatsPropagatesStoreFailure(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.err = errors.New("connection refused")

	svc := NewDashboardService(productRepo, &fakeSaleRepo{}, &fakeAdSpendRepo{}, nil, 10)

	_, err := svc.GetDashboardStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
