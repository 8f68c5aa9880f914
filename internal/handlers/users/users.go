package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/userservice"
	"github.com/atompoint/storefront/pkg/auth"
	"github.com/atompoint/storefront/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.UserOverview, error)
	ClearNotifications(ctx context.Context, userID int) error
	GetPublicSettings(ctx context.Context) (map[string]string, []domain.PaymentAccount, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile godoc
//
//	@Summary		Get user profile
//	@Description	Retrieve the authenticated user's profile including pending notifications and order count
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(auth.PrincipalKey).(*auth.Principal)

	overview, err := h.userService.GetProfile(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{User: dto.NewProfileDTO(overview)})
}

// ClearNotifications godoc
//
//	@Summary		Clear notifications
//	@Description	Empty the authenticated user's notification list
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/clear-notifications [post]
func (h *UserHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(auth.PrincipalKey).(*auth.Principal)

	if err := h.userService.ClearNotifications(r.Context(), principal.ID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Notifications cleared"})
}

// GetSettings godoc
//
//	@Summary		Get public settings
//	@Description	Payment display info and the admin contact link. No authentication required.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/settings [get]
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, accounts, err := h.userService.GetPublicSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	paymentDetails := make(map[string]dto.PaymentDetailDTO, len(accounts))
	for _, account := range accounts {
		paymentDetails[account.Provider] = dto.PaymentDetailDTO{Name: account.Name, Number: account.Number}
	}

	adminContact := settings["adminContact"]
	if adminContact == "" {
		adminContact = userservice.DefaultAdminContact
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponseDTO{
		Settings:       settings,
		PaymentDetails: paymentDetails,
		AdminContact:   adminContact,
	})
}
