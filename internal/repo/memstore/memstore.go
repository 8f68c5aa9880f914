package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atompoint/storefront/internal/domain"
)

// Store is the in-memory mirror of the relational backend, used when the
// database is unreachable at startup. It holds the seeded fallback dataset
// and produces the same shapes as the SQL repositories.
type Store struct {
	mu          sync.Mutex
	users       []*domain.User
	products    []*domain.Product
	orders      []*domain.Order
	payments    map[string]*domain.PaymentAccount
	settings    map[string]string
	nextUserID  int
	lastOrderID int64
}

func New() *Store {
	return &Store{
		users:      seedUsers(time.Now()),
		products:   seedProducts(),
		orders:     nil,
		payments:   seedPaymentAccounts(),
		settings:   seedSettings(),
		nextUserID: 1,
	}
}

// Begin satisfies the transaction manager contract with plain sequential
// execution. The fallback store offers no atomicity across steps.
func (s *Store) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) Users() *UserStore        { return &UserStore{s: s} }
func (s *Store) Orders() *OrderStore      { return &OrderStore{s: s} }
func (s *Store) Products() *ProductStore  { return &ProductStore{s: s} }
func (s *Store) Settings() *SettingsStore { return &SettingsStore{s: s} }

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Notifications = append([]string(nil), u.Notifications...)
	return &c
}

type UserStore struct {
	s *Store
}

func (r *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.s.users = append(r.s.users, cloneUser(user))
	return user, nil
}

func (r *UserStore) List(ctx context.Context) ([]domain.UserOverview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[int]int, len(r.s.users))
	for _, o := range r.s.orders {
		counts[o.UserID]++
	}
	users := make([]domain.UserOverview, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, domain.UserOverview{User: *cloneUser(u), OrderCount: counts[u.ID]})
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserStore) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *UserStore) SetBanned(ctx context.Context, id int, banned bool) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Banned = banned
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserStore) AdjustCredits(ctx context.Context, id int, delta int) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Credits += delta
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserStore) AppendNotification(ctx context.Context, id int, message string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Notifications = append(u.Notifications, message)
			return nil
		}
	}
	return nil
}

func (r *UserStore) NotifyAdmins(ctx context.Context, message string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.IsAdmin {
			u.Notifications = append(u.Notifications, message)
		}
	}
	return nil
}

func (r *UserStore) ClearNotifications(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Notifications = nil
			return nil
		}
	}
	return nil
}

func (r *UserStore) Broadcast(ctx context.Context, message string, targetIDs []int) (int, error) {
	return 0, domain.ErrStorageUnavailable
}

type OrderStore struct {
	s *Store
}

func (r *OrderStore) Save(ctx context.Context, order *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= r.s.lastOrderID {
		id = r.s.lastOrderID + 1
	}
	r.s.lastOrderID = id
	order.ID = id
	c := *order
	r.s.orders = append(r.s.orders, &c)
	return nil
}

func (r *OrderStore) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (r *OrderStore) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []domain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderStore) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orders := make([]domain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		orders = append(orders, *o)
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return nil
}

func (r *OrderStore) CountByUserID(ctx context.Context, userID int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, o := range r.s.orders {
		if o.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *OrderStore) DeleteByUserID(ctx context.Context, userID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.orders[:0]
	for _, o := range r.s.orders {
		if o.UserID != userID {
			kept = append(kept, o)
		}
	}
	r.s.orders = kept
	return nil
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

type ProductStore struct {
	s *Store
}

func (r *ProductStore) List(ctx context.Context, onlyAvailable bool) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var products []domain.Product
	for _, p := range r.s.products {
		if onlyAvailable && !p.Available {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *ProductStore) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *product
	r.s.products = append(r.s.products, &c)
	return nil
}

func (r *ProductStore) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return nil, domain.ErrStorageUnavailable
}

func (r *ProductStore) Delete(ctx context.Context, id string) error {
	return domain.ErrStorageUnavailable
}

type SettingsStore struct {
	s *Store
}

func (r *SettingsStore) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	settings := make([]domain.Setting, 0, len(r.s.settings))
	for k, v := range r.s.settings {
		settings = append(settings, domain.Setting{Key: k, Value: v})
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

func (r *SettingsStore) ListActivePaymentAccounts(ctx context.Context) ([]domain.PaymentAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var accounts []domain.PaymentAccount
	for _, acc := range r.s.payments {
		if acc.Active {
			accounts = append(accounts, *acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Provider < accounts[j].Provider })
	return accounts, nil
}

func (r *SettingsStore) UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	return nil, domain.ErrStorageUnavailable
}

func (r *SettingsStore) UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error) {
	return nil, domain.ErrStorageUnavailable
}
