package repository

import (
	"context"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	// UpdateFields merges the named fields into the existing record
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListAll returns the full current collection, oldest first
	ListAll(ctx context.Context) ([]entity.Product, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
	// AtomicDecrementStock decrements stock only if sufficient quantity exists.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock, (false, err) on error.
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	// AtomicIncrementStock gives units back (restoring a failed recording)
	AtomicIncrementStock(ctx context.Context, id uuid.UUID, amount int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination        *pagination.PaginationParams
	Search            string
	Category          string
	LowStock          bool
	LowStockThreshold int
	SortBy            string
	SortOrder         string
}
