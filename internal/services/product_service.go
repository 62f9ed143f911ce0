package services

import (
	"context"

	"inductra/internal/models"
	"inductra/internal/repositories"
)

// ProductService handles business logic related to catalog products.
// Callers validate inputs before calling it.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductsByBrand retrieves products whose brand exactly equals brand.
func (s *ProductService) GetProductsByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	return s.repo.GetByBrand(ctx, brand)
}

// GetProductByID retrieves a single product by its ID.
// It returns repositories.ErrProductNotFound when no such product exists.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product built from input and returns it with its generated ID.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := input.ToProduct()
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventProductCreated, map[string]interface{}{
		"productID": product.ID,
		"brand":     product.Brand,
		"name":      product.Name,
	})
	return &product, nil
}

// UpdateProduct applies a partial update.
// It returns repositories.ErrProductNotFound when no such product exists.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		publishEvent(s.publisher, EventProductUpdated, map[string]interface{}{
			"productID": product.ID,
			"brand":     product.Brand,
		})
	}
	return product, nil
}

// DeleteProduct permanently removes a product and reports whether it existed.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	publishEvent(s.publisher, EventProductDeleted, map[string]interface{}{
		"productID": id,
	})
	return true, nil
}
