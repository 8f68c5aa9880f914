package dto

import (
	"strconv"
	"time"

	"github.com/atompoint/storefront/internal/domain"
)

type CreateCreditOrderRequestDTO struct {
	Amount     int    `json:"amount" example:"5000"`
	ProofImage string `json:"proofImage"`
}

type CreateProductOrderRequestDTO struct {
	ProductID string `json:"productId" example:"atom_pts_500"`
}

type OrderDTO struct {
	ID          string `json:"id"`
	UserID      int    `json:"userId"`
	Type        string `json:"type" example:"CREDIT"`
	ProductName string `json:"productName"`
	Amount      int    `json:"amount"`
	Status      string `json:"status" example:"PENDING"`
	CreatedAt   string `json:"createdAt"`
	ProofImage  string `json:"proofImage,omitempty"`
}

type OrdersResponseDTO struct {
	Orders []OrderDTO `json:"orders"`
}

type CreateOrderResponseDTO struct {
	Order   OrderDTO `json:"order"`
	Message string   `json:"message"`
}

func NewOrderDTO(summary domain.OrderSummary) OrderDTO {
	return OrderDTO{
		ID:          strconv.FormatInt(summary.ID, 10),
		UserID:      summary.UserID,
		Type:        summary.Type,
		ProductName: summary.ProductName,
		Amount:      summary.Amount,
		Status:      summary.Status,
		CreatedAt:   summary.CreatedAt.Format(time.RFC3339),
		ProofImage:  summary.ProofImage,
	}
}
