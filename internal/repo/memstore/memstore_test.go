package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"

	"github.com/atompoint/storefront/internal/domain"
)

func TestSeedData(t *testing.T) {
	s := New()
	ctx := context.Background()

	admin, err := s.Users().FindByUsername(ctx, "tw")
	assert.NoError(t, err)
	assert.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, 1000000, admin.Credits)
	assert.Equal(t, []string{"Welcome to Atom Point Web! (Admin Account)"}, admin.Notifications)

	user, err := s.Users().FindByUsername(ctx, "testuser")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, 500, user.Credits)

	products, err := s.Products().List(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, products, 32)
	for _, p := range products {
		assert.True(t, p.Available)
		assert.Greater(t, p.PriceCr, 0)
	}

	accounts, err := s.Settings().ListActivePaymentAccounts(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "KPay", accounts[0].Provider)
	assert.Equal(t, "Wave Pay", accounts[1].Provider)

	settings, err := s.Settings().ListSettings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Setting{{Key: "adminContact", Value: "https://t.me/CEO_METAVERSE"}}, settings)

	orders, err := s.Orders().FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUserStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	t.Run("Create assigns sequential ids", func(t *testing.T) {
		first, err := s.Users().Create(ctx, &domain.User{Username: gofakeit.Username(), PasswordHash: "hash"})
		assert.NoError(t, err)
		assert.Equal(t, 1, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := s.Users().Create(ctx, &domain.User{Username: gofakeit.Username(), PasswordHash: "hash"})
		assert.NoError(t, err)
		assert.Equal(t, 2, second.ID)

		found, err := s.Users().GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, first.Username, found.Username)
	})

	t.Run("GetByID returns a copy", func(t *testing.T) {
		user, err := s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		user.Credits = 0
		user.Notifications = append(user.Notifications, "local only")

		again, err := s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		assert.Equal(t, 500, again.Credits)
		assert.Len(t, again.Notifications, 1)
	})

	t.Run("Unknown user resolves to nil without error", func(t *testing.T) {
		user, err := s.Users().GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("SetBanned flips the flag", func(t *testing.T) {
		user, err := s.Users().SetBanned(ctx, 789012, true)
		assert.NoError(t, err)
		assert.True(t, user.Banned)

		user, err = s.Users().SetBanned(ctx, 789012, false)
		assert.NoError(t, err)
		assert.False(t, user.Banned)
	})

	t.Run("AdjustCredits applies the delta", func(t *testing.T) {
		user, err := s.Users().AdjustCredits(ctx, 789012, 30)
		assert.NoError(t, err)
		assert.Equal(t, 530, user.Credits)

		user, err = s.Users().AdjustCredits(ctx, 789012, -30)
		assert.NoError(t, err)
		assert.Equal(t, 500, user.Credits)
	})

	t.Run("Notifications append and clear", func(t *testing.T) {
		message := gofakeit.Sentence(4)
		assert.NoError(t, s.Users().AppendNotification(ctx, 789012, message))

		user, err := s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		assert.Contains(t, user.Notifications, message)

		assert.NoError(t, s.Users().ClearNotifications(ctx, 789012))
		user, err = s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		assert.Empty(t, user.Notifications)
	})

	t.Run("NotifyAdmins skips regular users", func(t *testing.T) {
		assert.NoError(t, s.Users().NotifyAdmins(ctx, "review queue is growing"))

		admin, err := s.Users().GetByID(ctx, 123456)
		assert.NoError(t, err)
		assert.Contains(t, admin.Notifications, "review queue is growing")

		user, err := s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		assert.NotContains(t, user.Notifications, "review queue is growing")
	})

	t.Run("Broadcast is unavailable", func(t *testing.T) {
		count, err := s.Users().Broadcast(ctx, gofakeit.Sentence(3), nil)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Equal(t, 0, count)
	})

	t.Run("List reports order counts", func(t *testing.T) {
		assert.NoError(t, s.Orders().Save(ctx, &domain.Order{UserID: 789012, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: time.Now()}))

		users, err := s.Users().List(ctx)
		assert.NoError(t, err)
		found := false
		for _, u := range users {
			if u.ID == 789012 {
				found = true
				assert.Equal(t, 1, u.OrderCount)
			}
		}
		assert.True(t, found)
	})

	t.Run("Delete removes the user", func(t *testing.T) {
		assert.NoError(t, s.Users().Delete(ctx, 789012))
		user, err := s.Users().GetByID(ctx, 789012)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestOrderStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := &domain.Order{UserID: 789012, Type: "CREDIT", Amount: 3000, Status: "PENDING", CreatedAt: time.Now().Add(-time.Hour)}
	second := &domain.Order{UserID: 789012, Type: "PRODUCT", ProductID: "atom_data_1gb", Status: "PENDING", CreatedAt: time.Now()}
	other := &domain.Order{UserID: 123456, Type: "CREDIT", Amount: 5000, Status: "PENDING", CreatedAt: time.Now()}

	assert.NoError(t, s.Orders().Save(ctx, first))
	assert.NoError(t, s.Orders().Save(ctx, second))
	assert.NoError(t, s.Orders().Save(ctx, other))

	t.Run("Save assigns unique increasing ids", func(t *testing.T) {
		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.Greater(t, other.ID, second.ID)
	})

	t.Run("FindByID", func(t *testing.T) {
		order, err := s.Orders().FindByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, 3000, order.Amount)

		order, err = s.Orders().FindByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("FindByUserID returns newest first", func(t *testing.T) {
		orders, err := s.Orders().FindByUserID(ctx, 789012)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, first.ID, orders[1].ID)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		assert.NoError(t, s.Orders().UpdateStatus(ctx, first.ID, "APPROVED"))
		order, err := s.Orders().FindByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", order.Status)
	})

	t.Run("CountByUserID", func(t *testing.T) {
		count, err := s.Orders().CountByUserID(ctx, 789012)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("DeleteByUserID keeps other users' orders", func(t *testing.T) {
		assert.NoError(t, s.Orders().DeleteByUserID(ctx, 789012))

		orders, err := s.Orders().FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, other.ID, orders[0].ID)
	})
}

func TestProductStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	t.Run("Create and FindByID", func(t *testing.T) {
		product := &domain.Product{
			ID:        "atom_custom_1",
			Operator:  "ATOM",
			Category:  gofakeit.ProductCategory(),
			Name:      gofakeit.ProductName(),
			PriceMMK:  2000,
			PriceCr:   20,
			Available: true,
		}
		assert.NoError(t, s.Products().Create(ctx, product))

		found, err := s.Products().FindByID(ctx, "atom_custom_1")
		assert.NoError(t, err)
		assert.Equal(t, product.Name, found.Name)
	})

	t.Run("Unknown product resolves to nil without error", func(t *testing.T) {
		product, err := s.Products().FindByID(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Update is unavailable", func(t *testing.T) {
		product, err := s.Products().Update(ctx, &domain.Product{ID: "atom_data_1gb"})
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Nil(t, product)
	})

	t.Run("Delete is unavailable", func(t *testing.T) {
		err := s.Products().Delete(ctx, "atom_data_1gb")
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestSettingsStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	t.Run("UpsertSetting is unavailable", func(t *testing.T) {
		setting, err := s.Settings().UpsertSetting(ctx, "adminContact", "https://t.me/other")
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Nil(t, setting)
	})

	t.Run("UpsertPaymentAccount is unavailable", func(t *testing.T) {
		account, err := s.Settings().UpsertPaymentAccount(ctx, &domain.PaymentAccount{Provider: "KPay"})
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Nil(t, account)
	})

	t.Run("Begin runs the callback inline", func(t *testing.T) {
		called := false
		err := s.Begin(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})
}
