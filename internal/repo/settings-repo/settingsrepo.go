package settingsrepo

import (
	"context"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		zap.L().Error("can't list settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			zap.L().Error("can't scan setting row", zap.Error(err))
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func (r *Repository) ListActivePaymentAccounts(ctx context.Context) ([]domain.PaymentAccount, error) {
	rows, err := r.db.Query(ctx, `SELECT provider, name, number, active FROM payment_accounts WHERE active = TRUE ORDER BY provider ASC`)
	if err != nil {
		zap.L().Error("can't list payment accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.PaymentAccount
	for rows.Next() {
		var acc domain.PaymentAccount
		if err := rows.Scan(&acc.Provider, &acc.Name, &acc.Number, &acc.Active); err != nil {
			zap.L().Error("can't scan payment account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (r *Repository) UpsertSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING key, value
	`
	var setting domain.Setting
	err := r.db.QueryRow(ctx, query, key, value).Scan(&setting.Key, &setting.Value)
	if err != nil {
		zap.L().Error("can't upsert setting", zap.Error(err))
		return nil, err
	}
	return &setting, nil
}

func (r *Repository) UpsertPaymentAccount(ctx context.Context, account *domain.PaymentAccount) (*domain.PaymentAccount, error) {
	query := `
		INSERT INTO payment_accounts (provider, name, number, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider) DO UPDATE SET name = EXCLUDED.name, number = EXCLUDED.number, active = EXCLUDED.active
		RETURNING provider, name, number, active
	`
	var upserted domain.PaymentAccount
	err := r.db.QueryRow(ctx, query, account.Provider, account.Name, account.Number, account.Active).
		Scan(&upserted.Provider, &upserted.Name, &upserted.Number, &upserted.Active)
	if err != nil {
		zap.L().Error("can't upsert payment account", zap.Error(err))
		return nil, err
	}
	return &upserted, nil
}
