package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itplanet/retail-backend/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const productColumns = `id, product_name, description, quantity, status, selling_price, categories, location, brand, sku, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.ProductName, &p.Description, &p.Quantity, &p.Status, &p.SellingPrice,
		&p.Categories, &p.Location, &p.Brand, &p.SKU, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a product row.
func (r *Repository) Create(ctx context.Context, p Product) (*Product, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `INSERT INTO products
(product_name, description, quantity, status, selling_price, categories, location, brand, sku, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING `+productColumns,
		p.ProductName, p.Description, p.Quantity, p.Status, p.SellingPrice, p.Categories, p.Location, p.Brand, p.SKU, now)
	return scanProduct(row)
}

// Get fetches a product by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Product, error) {
	return scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// List returns catalogue rows for a location, optionally scoped to a category.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE location = $1`
	args := []any{filter.Location}
	if filter.Category != "" {
		query += ` AND categories = $2`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY product_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// Update overwrites a product row.
func (r *Repository) Update(ctx context.Context, id int64, p Product) (*Product, error) {
	row := r.pool.QueryRow(ctx, `UPDATE products SET
product_name = $1, description = $2, quantity = $3, status = $4, selling_price = $5,
categories = $6, location = $7, brand = $8, sku = $9, updated_at = NOW()
WHERE id = $10
RETURNING `+productColumns,
		p.ProductName, p.Description, p.Quantity, p.Status, p.SellingPrice, p.Categories, p.Location, p.Brand, p.SKU, id)
	return scanProduct(row)
}

// Delete removes a product row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStock applies all adjustments in one transaction, refusing any
// that would drive a quantity negative.
func (r *Repository) AdjustStock(ctx context.Context, adjustments []StockAdjustment) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, adj := range adjustments {
			var quantity float64
			err := tx.QueryRow(ctx, `SELECT quantity FROM products WHERE product_name = $1 AND location = $2 FOR UPDATE`,
				adj.ProductName, adj.Location).Scan(&quantity)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: %s", ErrNotFound, adj.ProductName)
				}
				return err
			}
			if quantity-adj.Qty < 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, adj.ProductName)
			}
			if _, err := tx.Exec(ctx, `UPDATE products SET quantity = quantity - $1, updated_at = NOW()
WHERE product_name = $2 AND location = $3`, adj.Qty, adj.ProductName, adj.Location); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ RepositoryPort = (*Repository)(nil)
