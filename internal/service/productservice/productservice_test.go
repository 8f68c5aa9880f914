package productservice

import (
	"context"
	"errors"
	"testing"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestListAvailable(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Only available products are requested", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), true).Return([]domain.Product{{ID: "mytel-1000"}}, nil)

		products, err := service.ListAvailable(context.Background())
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), true).Return(nil, errors.New("db error"))

		products, err := service.ListAvailable(context.Background())
		assert.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestGetProduct(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "mytel-1000").Return(&domain.Product{ID: "mytel-1000"}, nil)

		product, err := service.GetProduct(context.Background(), "mytel-1000")
		assert.NoError(t, err)
		assert.Equal(t, "mytel-1000", product.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "gone").Return(nil, nil)

		product, err := service.GetProduct(context.Background(), "gone")
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestCreateProduct(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "New product is created available",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "new-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, product *domain.Product) error {
						assert.True(t, product.Available)
						return nil
					},
				)
			},
		},
		{
			name: "Duplicate ID is rejected",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "new-1").Return(&domain.Product{ID: "new-1"}, nil)
			},
			expectedError: ErrProductExists,
		},
		{
			name: "Insert failure",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "new-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			product, err := service.CreateProduct(context.Background(), &domain.Product{ID: "new-1", Name: "Test"})
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, product)
			}
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Updated", func(t *testing.T) {
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(&domain.Product{ID: "mytel-1000", Name: "Renamed"}, nil)

		product, err := service.UpdateProduct(context.Background(), &domain.Product{ID: "mytel-1000", Name: "Renamed"})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", product.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		product, err := service.UpdateProduct(context.Background(), &domain.Product{ID: "gone"})
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, product)
	})

	t.Run("Fallback store cannot mutate the catalog", func(t *testing.T) {
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageUnavailable)

		_, err := service.UpdateProduct(context.Background(), &domain.Product{ID: "mytel-1000"})
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestDeleteProduct(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "mytel-1000").Return(nil)

		assert.NoError(t, service.DeleteProduct(context.Background(), "mytel-1000"))
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "mytel-1000").Return(errors.New("db error"))

		assert.Error(t, service.DeleteProduct(context.Background(), "mytel-1000"))
	})
}
