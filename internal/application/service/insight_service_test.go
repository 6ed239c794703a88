package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	coffee := &entity.Product{Name: "Premium Coffee Beans", Cost: 1250, Price: 2999, Stock: 45}
	productRepo := newFakeProductRepo(coffee)
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{ID: uuid.New(), ProductID: coffee.ID, Quantity: 2, Revenue: 5998},
	}}
	provider := &fakeInsightProvider{report: "## Profitability Deep Dive\nLooking good."}

	svc := NewInsightService(productRepo, saleRepo, &fakeAdSpendRepo{}, provider)

	report, err := svc.GenerateReport(context.Background())
	require.NoError(t, err)

	// The provider's text is passed through verbatim, unparsed
	assert.Equal(t, "## Profitability Deep Dive\nLooking good.", report.Report)
	assert.False(t, report.Degraded)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 1, provider.calls)

	// The snapshot carries the serialized collections, decimals included
	assert.Contains(t, string(provider.snapshot.Products), "Premium Coffee Beans")
	assert.Contains(t, string(provider.snapshot.Products), "29.99")
	assert.Contains(t, string(provider.snapshot.Sales), "59.98")
}

func TestGenerateReportFallsBackOnProviderFailure(t *testing.T) {
	provider := &fakeInsightProvider{err: errors.New("quota exceeded")}
	svc := NewInsightService(newFakeProductRepo(), &fakeSaleRepo{}, &fakeAdSpendRepo{}, provider)

	report, err := svc.GenerateReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, FallbackReport, report.Report)
	assert.True(t, report.Degraded)
}

func TestGenerateReportPropagatesStoreFailure(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.err = errors.New("connection refused")
	provider := &fakeInsightProvider{report: "unused"}

	svc := NewInsightService(productRepo, &fakeSaleRepo{}, &fakeAdSpendRepo{}, provider)

	_, err := svc.GenerateReport(context.Background())
	require.Error(t, err)
	assert.Zero(t, provider.calls)
}
