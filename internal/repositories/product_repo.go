package repositories

import (
	"context"
	"errors"

	"inductra/internal/models"
)

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	// GetByBrand matches the stored brand exactly, including case.
	GetByBrand(ctx context.Context, brand string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	// Delete reports whether a product existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
