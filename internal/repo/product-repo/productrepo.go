package productrepo

import (
	"context"
	"errors"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/pg"
	"github.com/jackc/pgx/v5"
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

const productColumns = "id, operator, category, name, price_mmk, price_cr, available"

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Operator, &p.Category, &p.Name, &p.PriceMMK, &p.PriceCr, &p.Available)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY operator ASC`
	if onlyAvailable {
		query = `SELECT ` + productColumns + ` FROM products WHERE available = TRUE ORDER BY operator ASC`
	}
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, operator, category, name, price_mmk, price_cr, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.Operator, product.Category, product.Name, product.PriceMMK, product.PriceCr, product.Available)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET operator = $1, category = $2, name = $3, price_mmk = $4, price_cr = $5, available = $6
		WHERE id = $7
		RETURNING ` + productColumns
	updated, err := scanProduct(r.db.QueryRow(ctx, query, product.Operator, product.Category, product.Name, product.PriceMMK, product.PriceCr, product.Available, product.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete product", zap.Error(err))
		return err
	}
	return nil
}
