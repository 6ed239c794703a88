package repository

import (
	"context"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	domainRepo "github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"gorm.io/gorm"
)

type adSpendRepository struct {
	db *gorm.DB
}

// NewAdSpendRepository creates a new ad-spend repository
func NewAdSpendRepository(db *gorm.DB) domainRepo.AdSpendRepository {
	return &adSpendRepository{db: db}
}

func (r *adSpendRepository) Create(ctx context.Context, spend *entity.AdSpend) error {
	return r.db.WithContext(ctx).Create(spend).Error
}

func (r *adSpendRepository) List(ctx context.Context, params *domainRepo.LedgerFilterParams) ([]entity.AdSpend, int64, error) {
	var ads []entity.AdSpend
	var total int64

	query := applyLedgerFilters(r.db.WithContext(ctx).Model(&entity.AdSpend{}), params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&ads).Error

	return ads, total, err
}

func (r *adSpendRepository) ListAll(ctx context.Context) ([]entity.AdSpend, error) {
	var ads []entity.AdSpend
	err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&ads).Error
	return ads, err
}
