package service

import (
	"context"
	"testing"

	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"github.com/bizpulse/bizpulse-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaults(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), 10)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:  "  Premium Coffee Beans  ",
		Cost:  12.5,
		Price: 29.99,
		Stock: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium Coffee Beans", product.Name)
	assert.Equal(t, "General", product.Category)
	assert.Equal(t, int64(1250), product.Cost)
	assert.Equal(t, int64(2999), product.Price)
}

func TestCreateProductRequiresName(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), 10)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), 10)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrProductNotFound)
}

func TestUpdateProductPartial(t *testing.T) {
	product := &entity.Product{Name: "Mug", Category: "Apparel", Cost: 420, Price: 1500, Stock: 120}
	repo := newFakeProductRepo(product)
	svc := NewProductService(repo, 10)

	newPrice := 17.5
	updated, err := svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, int64(1750), updated.Price)
	// Untouched fields survive
	assert.Equal(t, "Mug", updated.Name)
	assert.Equal(t, int64(420), updated.Cost)
	assert.Equal(t, 120, updated.Stock)
}

func TestUpdateProductRejectsNegativeValues(t *testing.T) {
	product := &entity.Product{Name: "Mug", Price: 1500, Stock: 5}
	svc := NewProductService(newFakeProductRepo(product), 10)

	negative := -1.0
	_, err := svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{Cost: &negative})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	negativeStock := -5
	_, err = svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{Stock: &negativeStock})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), 10)

	err := svc.DeleteProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrProductNotFound)
}

func TestGetLowStockProducts(t *testing.T) {
	low := &entity.Product{Name: "Stainless Straw Set", Stock: 8}
	high := &entity.Product{Name: "Eco-friendly Mug", Stock: 120}
	svc := NewProductService(newFakeProductRepo(low, high), 10)

	products, err := svc.GetLowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Stainless Straw Set", products[0].Name)
}
