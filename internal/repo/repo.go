package repo

import (
	"context"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/pg"
	"github.com/atompoint/storefront/internal/repo/memstore"
	orderrepo "github.com/atompoint/storefront/internal/repo/order-repo"
	productrepo "github.com/atompoint/storefront/internal/repo/product-repo"
	settingsrepo "github.com/atompoint/storefront/internal/repo/settings-repo"
	userrepo "github.com/atompoint/storefront/internal/repo/user-repo"
)

// Both backends implement the same interfaces so that no service or handler
// ever branches on which one is active.

type Users interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserOverview, error)
	Delete(ctx context.Context, id int) error
	SetBanned(ctx context.Context, id int, banned bool) (*domain.User, error)
	AdjustCredits(ctx context.Context, id int, delta int) (*domain.User, error)
	AppendNotification(ctx context.Context, id int, message string) error
	NotifyAdmins(ctx context.Context, message string) error
	ClearNotifications(ctx context.Context, id int) error
	Broadcast(ctx context.Context, message string, targetIDs []int) (int, error)
}

type Orders interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByUserID(ctx context.Context, userID int) (int, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

type Products interface {
	List(ctx context.Context, onlyAvailable bool) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Settings interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	ListActivePaymentAccounts(ctx context.Context) ([]domain.PaymentAccount, error)
	UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error)
	UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repositories struct {
	Users    Users
	Orders   Orders
	Products Products
	Settings Settings
	TX       TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Users:    userrepo.New(conn),
		Orders:   orderrepo.New(conn),
		Products: productrepo.New(conn),
		Settings: settingsrepo.New(conn),
		TX:       txManager,
	}
}

// NewMemory wires the seeded in-memory mirror used when the database is
// unreachable at startup.
func NewMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		Users:    store.Users(),
		Orders:   store.Orders(),
		Products: store.Products(),
		Settings: store.Settings(),
		TX:       store,
	}
}
