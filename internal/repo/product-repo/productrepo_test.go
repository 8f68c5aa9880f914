package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func productRows(products ...domain.Product) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "operator", "category", "name", "price_mmk", "price_cr", "available"})
	for _, p := range products {
		rows.AddRow(p.ID, p.Operator, p.Category, p.Name, p.PriceMMK, p.PriceCr, p.Available)
	}
	return rows
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	allQuery := `SELECT id, operator, category, name, price_mmk, price_cr, available FROM products ORDER BY operator ASC`
	availableQuery := `SELECT id, operator, category, name, price_mmk, price_cr, available FROM products WHERE available = TRUE ORDER BY operator ASC`

	tests := []struct {
		name          string
		onlyAvailable bool
		mockSetup     func()
		expectErr     bool
		result        []domain.Product
	}{
		{
			name:          "Full catalog",
			onlyAvailable: false,
			mockSetup: func() {
				products := []domain.Product{
					{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
					{ID: "mpt_data_1.1g", Operator: "MPT", Category: "Data", Name: "1.1GB", PriceMMK: 950, PriceCr: 10, Available: false},
				}
				mock.ExpectQuery(regexp.QuoteMeta(allQuery)).
					WillReturnRows(productRows(products...))
			},
			expectErr: false,
			result: []domain.Product{
				{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
				{ID: "mpt_data_1.1g", Operator: "MPT", Category: "Data", Name: "1.1GB", PriceMMK: 950, PriceCr: 10, Available: false},
			},
		},
		{
			name:          "Available only",
			onlyAvailable: true,
			mockSetup: func() {
				products := []domain.Product{
					{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
				}
				mock.ExpectQuery(regexp.QuoteMeta(availableQuery)).
					WillReturnRows(productRows(products...))
			},
			expectErr: false,
			result: []domain.Product{
				{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
			},
		},
		{
			name:          "Database error",
			onlyAvailable: false,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(allQuery)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.onlyAvailable)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT id, operator, category, name, price_mmk, price_cr, available FROM products WHERE id = $1`

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Product found",
			id:   "atom_data_1gb",
			mockSetup: func() {
				product := domain.Product{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true}
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("atom_data_1gb").
					WillReturnRows(productRows(product))
			},
			expectErr: false,
			result:    &domain.Product{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
		},
		{
			name: "Product not found",
			id:   "nope",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("nope").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   "atom_data_1gb",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("atom_data_1gb").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		UPDATE products
		SET operator = $1, category = $2, name = $3, price_mmk = $4, price_cr = $5, available = $6
		WHERE id = $7
		RETURNING id, operator, category, name, price_mmk, price_cr, available`

	product := &domain.Product{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1100, PriceCr: 11, Available: false}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Product updated",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ATOM", "Data", "1GB Data", 1100, 11, false, "atom_data_1gb").
					WillReturnRows(productRows(*product))
			},
			expectErr: false,
			result:    product,
		},
		{
			name: "Product not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ATOM", "Data", "1GB Data", 1100, 11, false, "atom_data_1gb").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ATOM", "Data", "1GB Data", 1100, 11, false, "atom_data_1gb").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), product)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	query := `DELETE FROM products WHERE id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Product deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("atom_data_1gb").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("atom_data_1gb").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), "atom_data_1gb")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
