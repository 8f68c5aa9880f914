package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atompoint/storefront/internal/domain"
)

type AdminUserDTO struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	IsAdmin    bool   `json:"isAdmin"`
	Credits    int    `json:"credits"`
	Banned     bool   `json:"banned"`
	CreatedAt  string `json:"createdAt"`
	OrderCount int    `json:"orderCount"`
}

type AdminUsersResponseDTO struct {
	Users []AdminUserDTO `json:"users"`
}

func NewAdminUserDTO(overview domain.UserOverview) AdminUserDTO {
	return AdminUserDTO{
		ID:         overview.ID,
		Username:   overview.Username,
		IsAdmin:    overview.IsAdmin,
		Credits:    overview.Credits,
		Banned:     overview.Banned,
		CreatedAt:  overview.CreatedAt.Format(time.RFC3339),
		OrderCount: overview.OrderCount,
	}
}

// NewAdminUserFromUser is used by ban/credit responses where no order count
// is aggregated.
func NewAdminUserFromUser(user *domain.User) AdminUserDTO {
	return AdminUserDTO{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		Credits:   user.Credits,
		Banned:    user.Banned,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

type AdminOrderProductDTO struct {
	Name     string `json:"name"`
	Operator string `json:"operator,omitempty"`
}

type AdminOrderUserDTO struct {
	Username string `json:"username"`
}

type AdminOrderDTO struct {
	ID            string               `json:"id"`
	UserID        int                  `json:"userId"`
	Type          string               `json:"type,omitempty" example:"CREDIT"`
	Cost          int                  `json:"cost"`
	Date          string               `json:"date"`
	Status        string               `json:"status" example:"Pending Approval"`
	Product       AdminOrderProductDTO `json:"product"`
	PaymentMethod string               `json:"paymentMethod,omitempty"`
	PaymentProof  string               `json:"paymentProof,omitempty"`
	DeliveryInfo  string               `json:"deliveryInfo,omitempty"`
	User          AdminOrderUserDTO    `json:"user"`
}

type AdminOrdersResponseDTO struct {
	Orders []AdminOrderDTO `json:"orders"`
}

// DisplayStatus maps a stored order status to the label the admin screen
// shows.
func DisplayStatus(status string) string {
	switch status {
	case "PENDING":
		return "Pending Approval"
	case "APPROVED":
		return "Completed"
	case "DECLINED":
		return "Declined"
	default:
		return status
	}
}

func NewAdminOrderDTO(order domain.AdminOrder) AdminOrderDTO {
	out := AdminOrderDTO{
		ID:     strconv.FormatInt(order.ID, 10),
		UserID: order.UserID,
		Cost:   order.Amount,
		Date:   order.CreatedAt.Format(time.RFC3339),
		Status: DisplayStatus(order.Status),
		User:   AdminOrderUserDTO{Username: order.Username},
	}
	if order.Type == "CREDIT" {
		out.Type = order.Type
		out.Product = AdminOrderProductDTO{Name: order.ProductName}
		out.PaymentMethod = "KPay"
		out.PaymentProof = order.ProofImage
	} else {
		out.Product = AdminOrderProductDTO{Name: order.ProductName, Operator: order.ProductOperator}
		out.DeliveryInfo = fmt.Sprintf("Order ID: %d", order.ID)
	}
	return out
}

type DecideOrderRequestDTO struct {
	Status string `json:"status" example:"APPROVED"`
}

type DecideOrderResponseDTO struct {
	Order   OrderDTO `json:"order"`
	Message string   `json:"message"`
}

type BanRequestDTO struct {
	Banned bool `json:"banned"`
}

type AdjustCreditsRequestDTO struct {
	Amount int `json:"amount" example:"50"`
}

type AdminUserResponseDTO struct {
	User    AdminUserDTO `json:"user"`
	Message string       `json:"message"`
}

type BroadcastRequestDTO struct {
	Message   string `json:"message"`
	TargetIDs []int  `json:"targetIds,omitempty"`
}

type PaymentAccountRequestDTO struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Active bool   `json:"active"`
}

type PaymentAccountDTO struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Active   bool   `json:"active"`
}

type PaymentAccountResponseDTO struct {
	PaymentAccount PaymentAccountDTO `json:"paymentAccount"`
	Message        string            `json:"message"`
}

type SettingRequestDTO struct {
	Value string `json:"value"`
}

type SettingDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SettingResponseDTO struct {
	Setting SettingDTO `json:"setting"`
	Message string     `json:"message"`
}
