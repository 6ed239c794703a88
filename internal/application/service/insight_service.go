package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/pkg/insight"
)

// FallbackReport is returned when the insight provider is unavailable so the
// dashboard always has something to render.
const FallbackReport = "The financial strategist is currently processing complex market variables. Please ensure your data is populated and try again shortly."

// InsightReport is the generated business coaching report
type InsightReport struct {
	Report      string    `json:"report"`
	Degraded    bool      `json:"degraded"` // true when the fallback text was served
	GeneratedAt time.Time `json:"generated_at"`
}

// InsightService builds the data snapshot and asks the configured provider
// for a coaching report
type InsightService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	adSpendRepo repository.AdSpendRepository
	provider    insight.Provider
}

// NewInsightService creates a new insight service
func NewInsightService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	adSpendRepo repository.AdSpendRepository,
	provider insight.Provider,
) *InsightService {
	return &InsightService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		adSpendRepo: adSpendRepo,
		provider:    provider,
	}
}

// GenerateReport serializes the current collections and requests a report
// from the provider. A provider failure degrades to the fallback text; a
// storage failure is propagated because there is no snapshot to analyze.
func (s *InsightService) GenerateReport(ctx context.Context) (*InsightReport, error) {
	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.provider.GenerateInsight(ctx, snapshot)
	if err != nil {
		log.Printf("Warning: insight provider failed, serving fallback report: %v", err)
		return &InsightReport{
			Report:      FallbackReport,
			Degraded:    true,
			GeneratedAt: time.Now(),
		}, nil
	}

	return &InsightReport{
		Report:      report,
		GeneratedAt: time.Now(),
	}, nil
}

func (s *InsightService) buildSnapshot(ctx context.Context) (insight.Snapshot, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return insight.Snapshot{}, err
	}
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return insight.Snapshot{}, err
	}
	ads, err := s.adSpendRepo.ListAll(ctx)
	if err != nil {
		return insight.Snapshot{}, err
	}

	productsJSON, err := json.Marshal(products)
	if err != nil {
		return insight.Snapshot{}, err
	}
	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return insight.Snapshot{}, err
	}
	adsJSON, err := json.Marshal(ads)
	if err != nil {
		return insight.Snapshot{}, err
	}

	return insight.Snapshot{
		Products: productsJSON,
		Sales:    salesJSON,
		Ads:      adsJSON,
	}, nil
}
