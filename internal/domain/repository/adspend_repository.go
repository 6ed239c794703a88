package repository

import (
	"context"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
)

// AdSpendRepository defines the interface for the append-only ad-spend ledger
type AdSpendRepository interface {
	Create(ctx context.Context, spend *entity.AdSpend) error
	List(ctx context.Context, params *LedgerFilterParams) ([]entity.AdSpend, int64, error)
	// ListAll returns the full current ledger, oldest first
	ListAll(ctx context.Context) ([]entity.AdSpend, error)
}
