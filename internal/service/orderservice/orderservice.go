package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atompoint/storefront/internal/domain"
	"go.uber.org/zap"
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	AdjustCredits(ctx context.Context, id int, delta int) (*domain.User, error)
	AppendNotification(ctx context.Context, id int, message string) error
	NotifyAdmins(ctx context.Context, message string) error
}

type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	orders   OrderRepo
	users    UserRepo
	products ProductRepo
	tx       TXManager
}

func New(orders OrderRepo, users UserRepo, products ProductRepo, tx TXManager) *Service {
	return &Service{
		orders:   orders,
		users:    users,
		products: products,
		tx:       tx,
	}
}

const (
	// CreditOrderType is a top-up request paid out-of-band and reviewed by an admin.
	CreditOrderType = "CREDIT"
	// ProductOrderType is a catalog purchase settled in platform credits.
	ProductOrderType = "PRODUCT"

	PendingStatus  = "PENDING"
	ApprovedStatus = "APPROVED"
	DeclinedStatus = "DECLINED"

	// MinTopUpMMK is the smallest accepted top-up request.
	MinTopUpMMK = 1000
	// MMKPerCredit is the fixed exchange rate: 100 MMK buys 1 credit.
	MMKPerCredit = 100
)

var (
	ErrMinimumAmount       = errors.New("minimum credit amount is 1000 MMK")
	ErrProductNotFound     = errors.New("product not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyDecided = errors.New("order already decided")
	ErrInvalidStatus       = errors.New("invalid order status")
)

// CreateCreditOrder stores a pending top-up request. The credit value is not
// derived here; it is computed from the MMK amount at approval time, and the
// balance is untouched until then.
func (s *Service) CreateCreditOrder(ctx context.Context, userID int, username string, amount int, proofImage string) (*domain.Order, error) {
	if amount < MinTopUpMMK {
		return nil, ErrMinimumAmount
	}

	order := &domain.Order{
		UserID:     userID,
		Type:       CreditOrderType,
		Amount:     amount,
		ProofImage: proofImage,
		Status:     PendingStatus,
		CreatedAt:  time.Now(),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		zap.L().Error("can't save credit order", zap.Error(err))
		return nil, err
	}

	if err := s.users.NotifyAdmins(ctx, fmt.Sprintf("💰 Credit Request: %s requests %d MMK via KPay.", username, amount)); err != nil {
		zap.L().Error("can't notify admins", zap.Error(err))
		return nil, err
	}

	zap.L().Info("credit order created", zap.Int64("order_id", order.ID), zap.Int("user_id", userID))
	return order, nil
}

// CreateProductOrder stores a pending purchase with a denormalized product
// reference. The credit check is advisory only: nothing is reserved, the
// deduction happens at approval so a declined order never needs a refund.
func (s *Service) CreateProductOrder(ctx context.Context, userID int, username string, productID string) (*domain.Order, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Credits < product.PriceCr {
		return nil, ErrInsufficientCredits
	}

	order := &domain.Order{
		UserID:    userID,
		Type:      ProductOrderType,
		Amount:    product.PriceCr,
		ProductID: product.ID,
		Status:    PendingStatus,
		CreatedAt: time.Now(),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		zap.L().Error("can't save product order", zap.Error(err))
		return nil, err
	}

	if err := s.users.NotifyAdmins(ctx, fmt.Sprintf("🛒 Product Order: %s ordered %s", username, product.Name)); err != nil {
		zap.L().Error("can't notify admins", zap.Error(err))
		return nil, err
	}

	zap.L().Info("product order created", zap.Int64("order_id", order.ID), zap.String("product_id", product.ID))
	return order, nil
}

// DecideOrder moves a pending order to APPROVED or DECLINED. Transitions are
// one-way; the balance is mutated exactly once at the approval edge. Status
// update, balance mutation and notifications commit as one transaction on the
// persistent backend.
func (s *Service) DecideOrder(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	if status != ApprovedStatus && status != DeclinedStatus {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != PendingStatus {
		return nil, ErrOrderAlreadyDecided
	}

	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
			return err
		}

		if status == ApprovedStatus {
			switch order.Type {
			case CreditOrderType:
				credits := order.Amount / MMKPerCredit
				if _, err := s.users.AdjustCredits(ctx, order.UserID, credits); err != nil {
					return err
				}
				if err := s.users.AppendNotification(ctx, order.UserID, fmt.Sprintf("Credit purchase approved! %d credits added to your account.", credits)); err != nil {
					return err
				}
			case ProductOrderType:
				if _, err := s.users.AdjustCredits(ctx, order.UserID, -order.Amount); err != nil {
					return err
				}
				if err := s.users.AppendNotification(ctx, order.UserID, fmt.Sprintf("Product order approved! %d credits deducted from your account.", order.Amount)); err != nil {
					return err
				}
			}
		} else if order.Type == ProductOrderType {
			if err := s.users.AppendNotification(ctx, order.UserID, "Product order declined. No credits were charged."); err != nil {
				return err
			}
		}

		return s.users.AppendNotification(ctx, order.UserID, decisionMessage(order.Type, status))
	})
	if err != nil {
		zap.L().Error("can't decide order", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	order.Status = status
	zap.L().Info("order decided", zap.Int64("order_id", orderID), zap.String("status", status))
	return order, nil
}

func decisionMessage(orderType, status string) string {
	if status == ApprovedStatus {
		return fmt.Sprintf("Your %s order has been approved!", strings.ToLower(orderType))
	}
	return fmt.Sprintf("Your %s order has been %s.", strings.ToLower(orderType), strings.ToLower(status))
}

// ListUserOrders returns the user's orders newest first with the display
// product name resolved.
func (s *Service) ListUserOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}

	cache := map[string]*domain.Product{}
	summaries := make([]domain.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, domain.OrderSummary{
			Order:       order,
			ProductName: s.productName(ctx, order, cache),
		})
	}
	return summaries, nil
}

// ListAllOrders returns every order newest first, enriched with the owner's
// username and product details for the admin review screen.
func (s *Service) ListAllOrders(ctx context.Context) ([]domain.AdminOrder, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get all orders", zap.Error(err))
		return nil, err
	}

	productCache := map[string]*domain.Product{}
	userCache := map[int]string{}
	result := make([]domain.AdminOrder, 0, len(orders))
	for _, order := range orders {
		username, ok := userCache[order.UserID]
		if !ok {
			username = "Unknown"
			if user, err := s.users.GetByID(ctx, order.UserID); err == nil && user != nil {
				username = user.Username
			}
			userCache[order.UserID] = username
		}

		adminOrder := domain.AdminOrder{
			Order:       order,
			Username:    username,
			ProductName: s.productName(ctx, order, productCache),
		}
		if order.Type == ProductOrderType {
			if product := productCache[order.ProductID]; product != nil {
				adminOrder.ProductOperator = product.Operator
			} else {
				adminOrder.ProductOperator = "Unknown"
			}
		}
		result = append(result, adminOrder)
	}
	return result, nil
}

func (s *Service) productName(ctx context.Context, order domain.Order, cache map[string]*domain.Product) string {
	if order.Type == CreditOrderType {
		return fmt.Sprintf("%d MMK Credit Purchase", order.Amount)
	}
	product, ok := cache[order.ProductID]
	if !ok {
		product, _ = s.products.FindByID(ctx, order.ProductID)
		cache[order.ProductID] = product
	}
	if product == nil {
		return fmt.Sprintf("Product %s", order.ProductID)
	}
	return product.Name
}
