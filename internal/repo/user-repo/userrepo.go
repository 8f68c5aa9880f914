package userrepo

import (
	"context"
	"errors"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const userColumns = "id, username, password_hash, is_admin, credits, banned, notifications, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.Credits, &user.Banned, &user.Notifications, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash, is_admin, credits, banned, notifications)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash, user.IsAdmin, user.Credits, user.Banned, user.Notifications).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.UserOverview, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.is_admin, u.credits, u.banned, u.notifications, u.created_at,
		       COUNT(o.id) AS order_count
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserOverview
	for rows.Next() {
		var u domain.UserOverview
		err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.Credits, &u.Banned, &u.Notifications, &u.CreatedAt, &u.OrderCount)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetBanned(ctx context.Context, id int, banned bool) (*domain.User, error) {
	query := `
		UPDATE users SET banned = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, banned, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update ban flag", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) AdjustCredits(ctx context.Context, id int, delta int) (*domain.User, error) {
	query := `
		UPDATE users SET credits = credits + $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't adjust credits", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) AppendNotification(ctx context.Context, id int, message string) error {
	query := `UPDATE users SET notifications = array_append(notifications, $1) WHERE id = $2`
	_, err := r.db.Exec(ctx, query, message, id)
	if err != nil {
		zap.L().Error("can't append notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) NotifyAdmins(ctx context.Context, message string) error {
	query := `UPDATE users SET notifications = array_append(notifications, $1) WHERE is_admin = TRUE`
	_, err := r.db.Exec(ctx, query, message)
	if err != nil {
		zap.L().Error("can't notify admins", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ClearNotifications(ctx context.Context, id int) error {
	query := `UPDATE users SET notifications = '{}' WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't clear notifications", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Broadcast(ctx context.Context, message string, targetIDs []int) (int, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if len(targetIDs) > 0 {
		tag, err = r.db.Exec(ctx, `UPDATE users SET notifications = array_append(notifications, $1) WHERE id = ANY($2)`, message, targetIDs)
	} else {
		tag, err = r.db.Exec(ctx, `UPDATE users SET notifications = array_append(notifications, $1)`, message)
	}
	if err != nil {
		zap.L().Error("can't broadcast notification", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
