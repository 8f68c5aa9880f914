package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/orderservice"
	"github.com/atompoint/storefront/internal/service/userservice"
	"github.com/atompoint/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.UserOverview, error)
	SetBanned(ctx context.Context, userID int, banned bool) (*domain.User, error)
	AdjustCredits(ctx context.Context, userID int, amount int) (*domain.User, error)
	PurgeUser(ctx context.Context, userID int) error
	Broadcast(ctx context.Context, message string, targetIDs []int) (int, error)
	UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error)
	UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error)
}

type OrderService interface {
	ListAllOrders(ctx context.Context) ([]domain.AdminOrder, error)
	DecideOrder(ctx context.Context, orderID int64, status string) (*domain.Order, error)
}

type AdminHandler struct {
	userService  UserService
	orderService OrderService
}

func New(userService UserService, orderService OrderService) *AdminHandler {
	return &AdminHandler{
		userService:  userService,
		orderService: orderService,
	}
}

// GetUsers godoc
//
//	@Summary		List all users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminUsersResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.userService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	users := make([]dto.AdminUserDTO, 0, len(overviews))
	for _, overview := range overviews {
		users = append(users, dto.NewAdminUserDTO(overview))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminUsersResponseDTO{Users: users})
}

// GetOrders godoc
//
//	@Summary		List all orders
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminOrdersResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders [get]
func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	adminOrders, err := h.orderService.ListAllOrders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	orders := make([]dto.AdminOrderDTO, 0, len(adminOrders))
	for _, order := range adminOrders {
		orders = append(orders, dto.NewAdminOrderDTO(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminOrdersResponseDTO{Orders: orders})
}

// DecideOrder godoc
//
//	@Summary		Approve or decline a pending order
//	@Description	The balance is mutated exactly once, at approval. Decided orders cannot be re-decided.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			request	body		dto.DecideOrderRequestDTO	true	"New status"
//	@Success		200		{object}	dto.DecideOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid order status"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already decided"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/{id} [put]
func (h *AdminHandler) DecideOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	var req dto.DecideOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.DecideOrder(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order status")
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrOrderAlreadyDecided):
			utils.RespondWithError(w, http.StatusConflict, "Order already decided")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DecideOrderResponseDTO{
		Order:   dto.NewOrderDTO(domain.OrderSummary{Order: *order}),
		Message: fmt.Sprintf("Order %s successfully", strings.ToLower(order.Status)),
	})
}

// BanUser godoc
//
//	@Summary		Ban or unban a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"User ID"
//	@Param			request	body		dto.BanRequestDTO	true	"Ban flag"
//	@Success		200		{object}	dto.AdminUserResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/ban [put]
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.SetBanned(r.Context(), userID, req.Banned)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user ban status")
		return
	}

	message := "User unbanned successfully"
	if req.Banned {
		message = "User banned successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminUserResponseDTO{
		User:    dto.NewAdminUserFromUser(user),
		Message: message,
	})
}

// AdjustCredits godoc
//
//	@Summary		Adjust a user's credits by a signed delta
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.AdjustCreditsRequestDTO	true	"Signed credit delta"
//	@Success		200		{object}	dto.AdminUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount must be a number"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/credits [put]
func (h *AdminHandler) AdjustCredits(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	var req dto.AdjustCreditsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be a number")
		return
	}

	user, err := h.userService.AdjustCredits(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to adjust user credits")
		return
	}

	message := "Credits deducted successfully"
	if req.Amount > 0 {
		message = "Credits added successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminUserResponseDTO{
		User:    dto.NewAdminUserFromUser(user),
		Message: message,
	})
}

// PurgeUser godoc
//
//	@Summary		Delete a user and all their orders
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [delete]
func (h *AdminHandler) PurgeUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.userService.PurgeUser(r.Context(), userID); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to purge user data")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User data purged successfully"})
}

// Broadcast godoc
//
//	@Summary		Broadcast a notification
//	@Description	Append a message to every user's notification list, or only to targetIds when given. Requires the persistent backend.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BroadcastRequestDTO	true	"Broadcast payload"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Message is required"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Database connection not available"
//	@Router			/api/admin/broadcast [post]
func (h *AdminHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}

	count, err := h.userService.Broadcast(r.Context(), req.Message, req.TargetIDs)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database connection not available")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send broadcast")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: fmt.Sprintf("Broadcast sent to %d users", count),
	})
}

// UpsertPaymentAccount godoc
//
//	@Summary		Create or update a payment account
//	@Description	Requires the persistent backend.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			provider	path		string							true	"Payment provider"
//	@Param			request		body		dto.PaymentAccountRequestDTO	true	"Payment account payload"
//	@Success		200			{object}	dto.PaymentAccountResponseDTO
//	@Failure		403			{object}	utils.Response	"Admin access required"
//	@Failure		500			{object}	utils.Response	"Database connection not available"
//	@Router			/api/admin/payment-accounts/{provider} [put]
func (h *AdminHandler) UpsertPaymentAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.userService.UpsertPaymentAccount(r.Context(), &domain.PaymentAccount{
		Provider: chi.URLParam(r, "provider"),
		Name:     req.Name,
		Number:   req.Number,
		Active:   req.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database connection not available")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update payment account")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentAccountResponseDTO{
		PaymentAccount: dto.PaymentAccountDTO{
			Provider: account.Provider,
			Name:     account.Name,
			Number:   account.Number,
			Active:   account.Active,
		},
		Message: "Payment account updated successfully",
	})
}

// UpsertSetting godoc
//
//	@Summary		Create or update a setting
//	@Description	Requires the persistent backend.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string					true	"Setting key"
//	@Param			request	body		dto.SettingRequestDTO	true	"Setting value"
//	@Success		200		{object}	dto.SettingResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Database connection not available"
//	@Router			/api/admin/settings/{key} [put]
func (h *AdminHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	setting, err := h.userService.UpsertSetting(r.Context(), chi.URLParam(r, "key"), req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database connection not available")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update setting")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingResponseDTO{
		Setting: dto.SettingDTO{Key: setting.Key, Value: setting.Value},
		Message: "Setting updated successfully",
	})
}
