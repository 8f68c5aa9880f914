package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/orderservice"
	"github.com/atompoint/storefront/pkg/auth"
	"github.com/atompoint/storefront/pkg/utils"
)

type Service interface {
	CreateCreditOrder(ctx context.Context, userID int, username string, amount int, proofImage string) (*domain.Order, error)
	CreateProductOrder(ctx context.Context, userID int, username string, productID string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateCreditOrder godoc
//
//	@Summary		Request a credit top-up
//	@Description	Submit a pending credit purchase with an out-of-band payment proof. Credits are granted only once an admin approves the order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCreditOrderRequestDTO	true	"Credit order payload"
//	@Success		201		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Minimum credit amount is 1000 MMK"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/credit [post]
func (h *OrderHandler) CreateCreditOrder(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(auth.PrincipalKey).(*auth.Principal)

	var req dto.CreateCreditOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateCreditOrder(r.Context(), principal.ID, principal.Username, req.Amount, req.ProofImage)
	if err != nil {
		if errors.Is(err, orderservice.ErrMinimumAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, "Minimum credit amount is 1000 MMK")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create credit order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		Order:   dto.NewOrderDTO(domain.OrderSummary{Order: *order}),
		Message: "Credit purchase request submitted successfully",
	})
}

// CreateProductOrder godoc
//
//	@Summary		Order a catalog product
//	@Description	Place a pending product order. Credits are checked but not deducted until an admin approves the order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductOrderRequestDTO	true	"Product order payload"
//	@Success		201		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient credits"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/product [post]
func (h *OrderHandler) CreateProductOrder(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(auth.PrincipalKey).(*auth.Principal)

	var req dto.CreateProductOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	_, err := h.orderService.CreateProductOrder(r.Context(), principal.ID, principal.Username, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, orderservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, orderservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient credits")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product order")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.MessageResponseDTO{
		Message: "Product order placed successfully. Your order is pending admin approval. Credits will be deducted upon approval.",
	})
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the authenticated user's orders, newest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrdersResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(auth.PrincipalKey).(*auth.Principal)

	summaries, err := h.orderService.ListUserOrders(r.Context(), principal.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	orders := make([]dto.OrderDTO, 0, len(summaries))
	for _, summary := range summaries {
		orders = append(orders, dto.NewOrderDTO(summary))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrdersResponseDTO{Orders: orders})
}
