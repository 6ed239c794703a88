package repository

import (
	"context"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
)

// SaleRepository defines the interface for the append-only sales ledger.
// Sales are created once and never updated or deleted.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, params *LedgerFilterParams) ([]entity.Sale, int64, error)
	// ListAll returns the full current ledger, oldest first
	ListAll(ctx context.Context) ([]entity.Sale, error)
}

// LedgerFilterParams contains filtering parameters for ledger queries.
// From and To are inclusive calendar dates in YYYY-MM-DD form.
type LedgerFilterParams struct {
	Pagination *pagination.PaginationParams
	From       string
	To         string
}
