package dto

import (
	"time"

	"github.com/atompoint/storefront/internal/domain"
)

type ProfileDTO struct {
	ID            int      `json:"id"`
	Username      string   `json:"username"`
	IsAdmin       bool     `json:"isAdmin"`
	Credits       int      `json:"credits"`
	Notifications []string `json:"notifications"`
	CreatedAt     string   `json:"createdAt" example:"2025-01-09T16:09:57Z"`
	OrderCount    int      `json:"orderCount"`
}

type ProfileResponseDTO struct {
	User ProfileDTO `json:"user"`
}

func NewProfileDTO(overview *domain.UserOverview) ProfileDTO {
	notifications := overview.Notifications
	if notifications == nil {
		notifications = []string{}
	}
	return ProfileDTO{
		ID:            overview.ID,
		Username:      overview.Username,
		IsAdmin:       overview.IsAdmin,
		Credits:       overview.Credits,
		Notifications: notifications,
		CreatedAt:     overview.CreatedAt.Format(time.RFC3339),
		OrderCount:    overview.OrderCount,
	}
}

type PaymentDetailDTO struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

type SettingsResponseDTO struct {
	Settings       map[string]string           `json:"settings"`
	PaymentDetails map[string]PaymentDetailDTO `json:"paymentDetails"`
	AdminContact   string                      `json:"adminContact"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
