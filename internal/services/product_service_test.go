package services_test

import (
	"context"
	"fmt"
	"testing"

	"inductra/internal/models"
	"inductra/internal/repositories"
	"inductra/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	args := m.Called(ctx, brand)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

var ctx = context.Background()

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Brand: "ABB", Category: "PLC", InStock: true},
		{ID: "2", Name: "Product B", Brand: "Omron", Category: "PLC", InStock: false},
	}
	mockRepo.On("GetAll", ctx).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByBrandPassesBrandThrough(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByBrand", ctx, "siemens").Return([]models.Product{}, nil).Once()

	products, err := service.GetProductsByBrand(ctx, "siemens")

	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Brand: "ABB", Category: "PLC"}

	mockRepo.On("GetByID", ctx, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", ctx, "99").Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	price := int64(15000)
	input := models.ProductInput{Name: "Drive Card X1", Brand: "Siemens", Category: "Inverter", Price: &price}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Drive Card X1" && p.InStock && p.ID == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = "generated-id"
	}).Return(nil).Once()
	mockMQ.On("Publish", services.EventProductCreated, mock.Anything).Return(nil).Once()

	product, err := service.CreateProduct(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, "generated-id", product.ID)
	assert.True(t, product.InStock)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_CreateProductRepositoryFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	mockRepo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("database error")).Once()

	product, err := service.CreateProduct(ctx, models.ProductInput{Name: "X", Brand: "ABB", Category: "PLC"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	assert.Nil(t, product)
	mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_PublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	mockMQ.On("Publish", services.EventProductCreated, mock.Anything).Return(fmt.Errorf("channel closed")).Once()

	product, err := service.CreateProduct(ctx, models.ProductInput{Name: "X", Brand: "ABB", Category: "PLC"})

	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockMQ.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	price := int64(12000)
	patch := models.ProductPatch{Price: &price}
	updated := &models.Product{ID: "1", Name: "Drive Card X1", Brand: "Siemens", Category: "Inverter", Price: &price, InStock: true}

	mockRepo.On("Update", ctx, "1", patch).Return(updated, nil).Once()
	mockMQ.On("Publish", services.EventProductUpdated, mock.Anything).Return(nil).Once()

	product, err := service.UpdateProduct(ctx, "1", patch)
	assert.NoError(t, err)
	assert.Equal(t, updated, product)

	mockRepo.On("Update", ctx, "99", patch).Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.UpdateProduct(ctx, "99", patch)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_EmptyUpdatePublishesNothing(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	existing := &models.Product{ID: "1", Name: "A", Brand: "ABB", Category: "PLC", InStock: true}
	mockRepo.On("Update", ctx, "1", models.ProductPatch{}).Return(existing, nil).Once()

	product, err := service.UpdateProduct(ctx, "1", models.ProductPatch{})

	assert.NoError(t, err)
	assert.Equal(t, existing, product)
	mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ)

	mockRepo.On("Delete", ctx, "1").Return(true, nil).Once()
	mockMQ.On("Publish", services.EventProductDeleted, mock.Anything).Return(nil).Once()
	deleted, err := service.DeleteProduct(ctx, "1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	mockRepo.On("Delete", ctx, "99").Return(false, nil).Once()
	deleted, err = service.DeleteProduct(ctx, "99")
	assert.NoError(t, err)
	assert.False(t, deleted)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestSeedCatalog(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	assert.NoError(t, services.SeedCatalog(ctx, repo))
	products, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, products)

	brands := make(map[string]bool)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		brands[p.Brand] = true
	}
	for _, b := range services.Brands {
		assert.True(t, brands[b], "brand %s has no seeded product", b)
	}

	// Seeding again leaves an existing catalog alone.
	assert.NoError(t, services.SeedCatalog(ctx, repo))
	again, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, again, len(products))
}
