package repository

import (
	"context"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	domainRepo "github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.LedgerFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := applyLedgerFilters(r.db.WithContext(ctx).Model(&entity.Sale{}), params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&sales).Error
	return sales, err
}

// applyLedgerFilters adds the inclusive calendar-date range to a ledger query
func applyLedgerFilters(query *gorm.DB, params *domainRepo.LedgerFilterParams) *gorm.DB {
	if params.From != "" {
		query = query.Where("date >= ?", params.From)
	}
	if params.To != "" {
		query = query.Where("date <= ?", params.To)
	}
	return query
}
