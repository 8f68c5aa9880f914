package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/authservice"
	pkgauth "github.com/atompoint/storefront/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"newuser","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "secret").
					Return(&domain.User{ID: 3, Username: "newuser"}, nil)
				service.EXPECT().GenerateToken(3).Return("token", nil)
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
			name:          "Missing credentials",
			body:          `{"username":"newuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username and password are required",
		},
		{
			name: "Username taken",
			body: `{"username":"newuser","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "secret").
					Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Internal server error",
			body: `{"username":"newuser","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "secret").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))

				cookies := w.Result().Cookies()
				assert.Len(t, cookies, 1)
				assert.Equal(t, pkgauth.TokenCookie, cookies[0].Name)
				assert.Equal(t, "token", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)

				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "newuser", body.User.Username)
				assert.Equal(t, "User successfully registered", body.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"tw","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "tw", "secret").
					Return(&domain.User{ID: 1, Username: "tw", IsAdmin: true, Credits: 1000000}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"tw","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "tw", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Banned account",
			body: `{"username":"banned","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "banned", "secret").
					Return(nil, authservice.ErrUserBanned)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Account is banned",
		},
		{
			name: "Token generation failure",
			body: `{"username":"tw","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "tw", "secret").
					Return(&domain.User{ID: 1, Username: "tw"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("sign error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.User.IsAdmin)
				assert.Equal(t, 1000000, body.User.Credits)
			}
		})
	}
}
