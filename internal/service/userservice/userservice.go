package userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/atompoint/storefront/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserOverview, error)
	Delete(ctx context.Context, id int) error
	SetBanned(ctx context.Context, id int, banned bool) (*domain.User, error)
	AdjustCredits(ctx context.Context, id int, delta int) (*domain.User, error)
	AppendNotification(ctx context.Context, id int, message string) error
	ClearNotifications(ctx context.Context, id int) error
	Broadcast(ctx context.Context, message string, targetIDs []int) (int, error)
}

type OrderRepo interface {
	CountByUserID(ctx context.Context, userID int) (int, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

type SettingsRepo interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	ListActivePaymentAccounts(ctx context.Context) ([]domain.PaymentAccount, error)
	UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error)
	UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	users    UserRepo
	orders   OrderRepo
	settings SettingsRepo
	tx       TXManager
}

func New(users UserRepo, orders OrderRepo, settings SettingsRepo, tx TXManager) *Service {
	return &Service{
		users:    users,
		orders:   orders,
		settings: settings,
		tx:       tx,
	}
}

// DefaultAdminContact is served when no adminContact setting is stored.
const DefaultAdminContact = "https://t.me/CEO_METAVERSE"

var ErrUserNotFound = errors.New("user not found")

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.UserOverview, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	count, err := s.orders.CountByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count orders", zap.Error(err))
		return nil, err
	}
	return &domain.UserOverview{User: *user, OrderCount: count}, nil
}

func (s *Service) ClearNotifications(ctx context.Context, userID int) error {
	if err := s.users.ClearNotifications(ctx, userID); err != nil {
		zap.L().Error("failed to clear notifications", zap.Error(err))
		return err
	}
	return nil
}

// GetPublicSettings returns the unauthenticated storefront configuration:
// the settings map, active payment accounts and the admin contact link.
func (s *Service) GetPublicSettings(ctx context.Context) (map[string]string, []domain.PaymentAccount, error) {
	settings, err := s.settings.ListSettings(ctx)
	if err != nil {
		zap.L().Error("failed to list settings", zap.Error(err))
		return nil, nil, err
	}
	accounts, err := s.settings.ListActivePaymentAccounts(ctx)
	if err != nil {
		zap.L().Error("failed to list payment accounts", zap.Error(err))
		return nil, nil, err
	}
	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}
	return settingsMap, accounts, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.UserOverview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) SetBanned(ctx context.Context, userID int, banned bool) (*domain.User, error) {
	user, err := s.users.SetBanned(ctx, userID, banned)
	if err != nil {
		zap.L().Error("failed to update ban flag", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// AdjustCredits applies a signed delta to the user's balance and notifies them.
func (s *Service) AdjustCredits(ctx context.Context, userID int, amount int) (*domain.User, error) {
	var user *domain.User
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.AdjustCredits(ctx, userID, amount)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		message := fmt.Sprintf("✅ Admin added %d credits to your account!", amount)
		if amount <= 0 {
			message = fmt.Sprintf("⚠️ Admin deducted %d credits from your account.", -amount)
		}
		return s.users.AppendNotification(ctx, userID, message)
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			zap.L().Error("failed to adjust credits", zap.Error(err))
		}
		return nil, err
	}
	return user, nil
}

// PurgeUser deletes a user and all their orders in one transaction.
func (s *Service) PurgeUser(ctx context.Context, userID int) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		if err := s.orders.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return s.users.Delete(ctx, userID)
	})
	if err != nil {
		zap.L().Error("failed to purge user", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	zap.L().Info("user purged", zap.Int("user_id", userID))
	return nil
}

// Broadcast appends a message to all users, or only to targetIDs when given.
// Returns the number of users notified.
func (s *Service) Broadcast(ctx context.Context, message string, targetIDs []int) (int, error) {
	count, err := s.users.Broadcast(ctx, message, targetIDs)
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			zap.L().Error("failed to broadcast", zap.Error(err))
		}
		return 0, err
	}
	return count, nil
}

func (s *Service) UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	setting, err := s.settings.UpsertSetting(ctx, key, value)
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			zap.L().Error("failed to upsert setting", zap.Error(err))
		}
		return nil, err
	}
	return setting, nil
}

func (s *Service) UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error) {
	upserted, err := s.settings.UpsertPaymentAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			zap.L().Error("failed to upsert payment account", zap.Error(err))
		}
		return nil, err
	}
	return upserted, nil
}
