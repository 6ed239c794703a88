package service

import (
	"context"
	"strings"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/pkg/apperror"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles inventory operations
type ProductService struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, lowStockThreshold int) *ProductService {
	return &ProductService{
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Category string
	Cost     float64
	Price    float64
	Stock    int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "General"
	}

	product := &entity.Product{
		Name:     name,
		Category: category,
		Stock:    input.Stock,
	}
	product.SetCostFromDecimal(input.Cost)
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.ErrProductNotFound
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.LowStock && params.LowStockThreshold < 1 {
		params.LowStockThreshold = s.lowStockThreshold
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents a partial product update. Nil fields are
// left untouched; set fields are merged into the stored record.
type UpdateProductInput struct {
	Name     *string
	Category *string
	Cost     *float64
	Price    *float64
	Stock    *int
}

// UpdateProduct merges the provided fields into a product. Price changes do
// not retroactively affect historical sales: revenue is frozen on the sale.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.ErrProductNotFound
	}

	fields := make(map[string]interface{})
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		fields["name"] = name
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, apperror.NewBadRequestError("Cost cannot be negative")
		}
		fields["cost"] = int64(*input.Cost*100 + 0.5)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		fields["price"] = int64(*input.Price*100 + 0.5)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		fields["stock"] = *input.Stock
	}

	if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, id)
}

// DeleteProduct removes a product. Historical sales referencing it are kept
// untouched; their revenue stays frozen and their cost contribution drops to
// zero from here on.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.ErrProductNotFound
	}

	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products below the configured stock threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, s.lowStockThreshold)
}
