package service

import (
	"context"
	"log"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/pkg/apperror"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
	"github.com/google/uuid"
)

// UnknownItemLabel is shown for sales whose product has since been deleted
const UnknownItemLabel = "Unknown item"

// SaleService records and lists sales. The sales table is an append-only
// ledger: entries are created once and never mutated.
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// RecordSaleInput represents the record sale input. Date is an optional
// YYYY-MM-DD string defaulting to today.
type RecordSaleInput struct {
	ProductID uuid.UUID
	Quantity  int
	Date      string
}

// RecordSale validates the referenced product, decrements its stock and
// appends the sale with revenue frozen at the current price.
//
// The product must exist (no phantom ledger entries against deleted
// products) and must hold at least the requested quantity; the decrement is
// a conditional UPDATE so stock can never go negative, even under
// concurrent recordings.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.ErrProductNotFound
	}

	date := time.Now()
	if input.Date != "" {
		date, err = time.Parse(entity.DateLayout, input.Date)
		if err != nil {
			return nil, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
		}
	}

	ok, err := s.productRepo.AtomicDecrementStock(ctx, product.ID, input.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrInsufficientStock
	}

	sale := &entity.Sale{
		ProductID: product.ID,
		Quantity:  input.Quantity,
		Date:      date,
		Revenue:   product.Price * int64(input.Quantity),
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already decremented - we need to restore it
		if rerr := s.productRepo.AtomicIncrementStock(ctx, product.ID, input.Quantity); rerr != nil {
			log.Printf("Warning: failed to restore stock for product %s after sale insert failure: %v", product.ID, rerr)
		}
		return nil, err
	}

	return sale, nil
}

// SaleRecord is a sale joined with its product's display name
type SaleRecord struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Date        string    `json:"date"`
	Revenue     float64   `json:"revenue"`
}

// ListSales lists the sales ledger newest first, resolving product names.
// Sales whose product has been deleted get a placeholder label; they are
// tolerated at read time and only rejected at write time.
func (s *SaleService) ListSales(ctx context.Context, params *repository.LedgerFilterParams) (*pagination.PaginatedResult[SaleRecord], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// Batch fetch the referenced products in one query
	idSet := make(map[uuid.UUID]struct{}, len(sales))
	ids := make([]uuid.UUID, 0, len(sales))
	for i := range sales {
		if _, seen := idSet[sales[i].ProductID]; !seen {
			idSet[sales[i].ProductID] = struct{}{}
			ids = append(ids, sales[i].ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[uuid.UUID]string, len(products))
	for i := range products {
		nameByID[products[i].ID] = products[i].Name
	}

	records := make([]SaleRecord, 0, len(sales))
	for i := range sales {
		name, ok := nameByID[sales[i].ProductID]
		if !ok {
			name = UnknownItemLabel
		}
		records = append(records, SaleRecord{
			ID:          sales[i].ID,
			ProductID:   sales[i].ProductID,
			ProductName: name,
			Quantity:    sales[i].Quantity,
			Date:        sales[i].DateString(),
			Revenue:     sales[i].GetRevenueDecimal(),
		})
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}
