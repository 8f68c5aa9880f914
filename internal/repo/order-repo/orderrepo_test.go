package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func orderRows(orders ...domain.Order) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "product_id", "proof_image", "status", "created_at"})
	for _, o := range orders {
		rows.AddRow(o.ID, o.UserID, o.Type, o.Amount, o.ProductID, o.ProofImage, o.Status, o.CreatedAt)
	}
	return rows
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
		INSERT INTO orders (user_id, type, amount, product_id, proof_image, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	tests := []struct {
		name      string
		order     *domain.Order
		mockSetup func()
		expectErr bool
		wantID    int64
	}{
		{
			name: "Save credit order",
			order: &domain.Order{
				UserID:     2,
				Type:       "CREDIT",
				Amount:     3000,
				ProofImage: "data:image/png;base64,abc",
				Status:     "PENDING",
				CreatedAt:  now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, "CREDIT", 3000, "", "data:image/png;base64,abc", "PENDING", now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			expectErr: false,
			wantID:    7,
		},
		{
			name: "Database error",
			order: &domain.Order{
				UserID:    2,
				Type:      "PRODUCT",
				ProductID: "p1",
				Status:    "PENDING",
				CreatedAt: now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, "PRODUCT", 0, "p1", "", "PENDING", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, tt.order.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT id, user_id, type, amount, product_id, proof_image, status, created_at FROM orders WHERE id = $1`

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order found",
			id:   7,
			mockSetup: func() {
				order := domain.Order{
					ID:        7,
					UserID:    2,
					Type:      "CREDIT",
					Amount:    3000,
					Status:    "PENDING",
					CreatedAt: now,
				}
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(7)).
					WillReturnRows(orderRows(order))
			},
			expectErr: false,
			result: &domain.Order{
				ID:        7,
				UserID:    2,
				Type:      "CREDIT",
				Amount:    3000,
				Status:    "PENDING",
				CreatedAt: now,
			},
		},
		{
			name: "Order not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(7)).
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

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT id, user_id, type, amount, product_id, proof_image, status, created_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Order
	}{
		{
			name:   "Orders found",
			userID: 2,
			mockSetup: func() {
				orders := []domain.Order{
					{ID: 8, UserID: 2, Type: "PRODUCT", ProductID: "p1", Status: "APPROVED", CreatedAt: now},
					{ID: 7, UserID: 2, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: now.Add(-time.Hour)},
				}
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(orderRows(orders...))
			},
			expectErr: false,
			result: []domain.Order{
				{ID: 8, UserID: 2, Type: "PRODUCT", ProductID: "p1", Status: "APPROVED", CreatedAt: now},
				{ID: 7, UserID: 2, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name:   "No orders",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(3).
					WillReturnRows(orderRows())
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	query := `UPDATE orders SET status = $1 WHERE id = $2`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("APPROVED", int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("APPROVED", int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 7, "APPROVED")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CountByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Counts orders",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
			},
			expectErr: false,
			count:     4,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountByUserID(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.count, count)
		})
	}
}
