package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ValidateProductsExist(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func testCatalogueProduct() *model.Product {
	return &model.Product{
		ID:       "W001",
		Name:     "Rado Captain Cook",
		Price:    125000,
		Category: model.CategoryRado,
		Gender:   model.GenderMen,
		Image:    "/images/w001.jpg",
	}
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name          string
		limit, offset int
		wantLimit     int
		wantOffset    int
	}{
		{"passes sane values through", 10, 5, 10, 5},
		{"zero limit defaults to 20", 0, 0, 20, 0},
		{"negative limit defaults to 20", -3, 0, 20, 0},
		{"limit capped at 100", 500, 0, 100, 0},
		{"negative offset clamped to zero", 10, -7, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("GetAll", ctx, tt.wantLimit, tt.wantOffset).
				Return([]model.Product{*testCatalogueProduct()}, nil)

			products, err := service.GetAll(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, products, 1)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "W001").Return(testCatalogueProduct(), nil)

		product, err := service.GetByID(ctx, "W001")
		require.NoError(t, err)
		assert.Equal(t, "W001", product.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "W999").Return(nil, nil)

		product, err := service.GetByID(ctx, "W999")
		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
		assert.Nil(t, product)
	})

	t.Run("empty ID short-circuits", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		product, err := service.GetByID(ctx, "")
		require.Error(t, err)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "W001").Return(nil, errors.New("database error"))

		product, err := service.GetByID(ctx, "W001")
		require.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success sets timestamps", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		product := testCatalogueProduct()
		mockRepo.On("Create", ctx, product).Return(nil)

		before := time.Now()
		require.NoError(t, service.Create(ctx, product))

		assert.False(t, product.CreatedAt.Before(before))
		assert.Equal(t, product.CreatedAt, product.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid product never reaches the repository", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		product := testCatalogueProduct()
		product.Category = "Swatch"

		require.Error(t, service.Create(ctx, product))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		product := testCatalogueProduct()
		mockRepo.On("Update", ctx, product).Return(nil)

		require.NoError(t, service.Update(ctx, product))
		assert.False(t, product.UpdatedAt.IsZero())
	})

	t.Run("not found passes through untouched", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		product := testCatalogueProduct()
		mockRepo.On("Update", ctx, product).Return(model.ErrProductNotFound)

		err := service.Update(ctx, product)
		assert.Equal(t, model.ErrProductNotFound, err)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Delete", ctx, "W001").Return(nil)
		require.NoError(t, service.Delete(ctx, "W001"))
	})

	t.Run("empty ID", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		err := service.Delete(ctx, "")
		assert.Equal(t, model.ErrProductNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Delete", ctx, "W999").Return(model.ErrProductNotFound)
		err := service.Delete(ctx, "W999")
		assert.Equal(t, model.ErrProductNotFound, err)
	})
}
