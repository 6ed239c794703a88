package service

import (
	"context"
	"strings"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/pkg/apperror"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
)

// AdSpendService records and lists ad-spend entries (append-only ledger)
type AdSpendService struct {
	adSpendRepo repository.AdSpendRepository
}

// NewAdSpendService creates a new ad-spend service
func NewAdSpendService(adSpendRepo repository.AdSpendRepository) *AdSpendService {
	return &AdSpendService{adSpendRepo: adSpendRepo}
}

// RecordAdSpendInput represents the record ad-spend input. Date is an
// optional YYYY-MM-DD string defaulting to today.
type RecordAdSpendInput struct {
	Platform string
	Amount   float64
	Date     string
	Reach    int
}

// RecordAdSpend appends an entry to the ad-spend ledger
func (s *AdSpendService) RecordAdSpend(ctx context.Context, input *RecordAdSpendInput) (*entity.AdSpend, error) {
	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		return nil, apperror.NewBadRequestError("Platform is required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}
	if input.Reach < 0 {
		return nil, apperror.NewBadRequestError("Reach cannot be negative")
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse(entity.DateLayout, input.Date)
		if err != nil {
			return nil, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	spend := &entity.AdSpend{
		Platform: platform,
		Amount:   int64(input.Amount*100 + 0.5),
		Date:     date,
		Reach:    input.Reach,
	}
	if err := s.adSpendRepo.Create(ctx, spend); err != nil {
		return nil, err
	}

	return spend, nil
}

// ListAdSpends lists the ad-spend ledger newest first
func (s *AdSpendService) ListAdSpends(ctx context.Context, params *repository.LedgerFilterParams) (*pagination.PaginatedResult[entity.AdSpend], error) {
	ads, total, err := s.adSpendRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(ads, pag), nil
}
