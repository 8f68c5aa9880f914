package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/orderservice"
	"github.com/atompoint/storefront/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withPrincipal(r *http.Request) *http.Request {
	principal := &auth.Principal{ID: 1, Username: "tester"}
	return r.WithContext(context.WithValue(r.Context(), auth.PrincipalKey, principal))
}

func TestCreateCreditOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful credit request",
			body: `{"amount":3000,"proofImage":"proof.jpg"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCreditOrder(gomock.Any(), 1, "tester", 3000, "proof.jpg").
					Return(&domain.Order{ID: 10, UserID: 1, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: time.Now()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Amount below the minimum",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCreditOrder(gomock.Any(), 1, "tester", 500, "").
					Return(nil, orderservice.ErrMinimumAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Minimum credit amount is 1000 MMK",
		},
		{
			name: "Internal server error",
			body: `{"amount":3000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCreditOrder(gomock.Any(), 1, "tester", 3000, "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/orders/credit", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.CreateCreditOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.CreateOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Credit purchase request submitted successfully", body.Message)
				assert.Equal(t, "PENDING", body.Order.Status)
			}
		})
	}
}

func TestCreateProductOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful product order",
			body: `{"productId":"mytel-1000"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProductOrder(gomock.Any(), 1, "tester", "mytel-1000").
					Return(&domain.Order{ID: 10, UserID: 1, Type: "PRODUCT", Amount: 11, Status: "PENDING"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing product ID",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Product ID is required",
		},
		{
			name: "Product not found",
			body: `{"productId":"gone"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProductOrder(gomock.Any(), 1, "tester", "gone").
					Return(nil, orderservice.ErrProductNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Product not found",
		},
		{
			name: "Insufficient credits",
			body: `{"productId":"mytel-1000"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProductOrder(gomock.Any(), 1, "tester", "mytel-1000").
					Return(nil, orderservice.ErrInsufficientCredits)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient credits",
		},
		{
			name: "Internal server error",
			body: `{"productId":"mytel-1000"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProductOrder(gomock.Any(), 1, "tester", "mytel-1000").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/orders/product", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.CreateProductOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				assert.Contains(t, w.Body.String(), "pending admin approval")
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedBody  dto.OrdersResponseDTO
		expectedError string
	}{
		{
			name: "Successful order retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListUserOrders(gomock.Any(), 1).
					Return([]domain.OrderSummary{
						{
							Order: domain.Order{
								ID: 10, UserID: 1, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: now,
							},
							ProductName: "3000 MMK Credit Purchase",
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.OrdersResponseDTO{
				Orders: []dto.OrderDTO{
					{
						ID:          "10",
						UserID:      1,
						Type:        "CREDIT",
						ProductName: "3000 MMK Credit Purchase",
						Amount:      3000,
						Status:      "PENDING",
						CreatedAt:   now.Format(time.RFC3339),
					},
				},
			},
		},
		{
			name: "No orders",
			prepareMock: func() {
				service.EXPECT().ListUserOrders(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.OrdersResponseDTO{Orders: []dto.OrderDTO{}},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListUserOrders(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch orders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
			w := httptest.NewRecorder()

			handler.GetOrders(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.OrdersResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
