package purchases

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itplanet/retail-backend/internal/ledger"
	"github.com/itplanet/retail-backend/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence. Line items live in
// purchase_items and are written in the same transaction as the header.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const purchaseColumns = `id, purchase_number, supplier_name, mobile_number, purchase_date, categories, total, paid, due, payment_status, location, created_by, created_at`

func scanPurchase(row pgx.Row) (*Purchase, error) {
	var p Purchase
	err := row.Scan(&p.ID, &p.PurchaseNumber, &p.SupplierName, &p.MobileNumber, &p.PurchaseDate,
		&p.Categories, &p.Total, &p.Paid, &p.Due, &p.PaymentStatus, &p.Location, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts the purchase header and its line items atomically.
func (r *Repository) Create(ctx context.Context, p Purchase) (*Purchase, error) {
	var created *Purchase
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO purchases
(purchase_number, supplier_name, mobile_number, purchase_date, categories, total, paid, due, payment_status, location, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING `+purchaseColumns,
			p.PurchaseNumber, p.SupplierName, p.MobileNumber, p.PurchaseDate, p.Categories,
			p.Total, p.Paid, p.Due, p.PaymentStatus, p.Location, p.CreatedBy, time.Now().UTC())
		header, err := scanPurchase(row)
		if err != nil {
			return err
		}
		for i, it := range p.Products {
			if _, err := tx.Exec(ctx, `INSERT INTO purchase_items
(purchase_id, position, name, description, qty, price, sub_total)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				header.ID, i, it.Name, it.Description, it.Qty, it.UnitPrice, it.Subtotal); err != nil {
				return err
			}
		}
		header.Products = p.Products
		created = header
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a purchase with its line items.
func (r *Repository) Get(ctx context.Context, id int64) (*Purchase, error) {
	p, err := scanPurchase(r.pool.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Products = items
	return p, nil
}

// List returns purchases, newest first, optionally scoped to a location.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	var args []any
	if filter.Location != "" {
		query += ` WHERE location = $1`
		args = append(args, filter.Location)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range purchases {
		items, err := r.items(ctx, purchases[i].ID)
		if err != nil {
			return nil, err
		}
		purchases[i].Products = items
	}
	return purchases, nil
}

// Delete removes a purchase and its line items.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UpdatePayment overwrites the payment fields after a settlement.
func (r *Repository) UpdatePayment(ctx context.Context, id int64, paid, due float64, status string) (*Purchase, error) {
	p, err := scanPurchase(r.pool.QueryRow(ctx, `UPDATE purchases
SET paid = $1, due = $2, payment_status = $3
WHERE id = $4
RETURNING `+purchaseColumns, paid, due, status, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Products = items
	return p, nil
}

func (r *Repository) items(ctx context.Context, purchaseID int64) ([]ledger.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, description, qty, price, sub_total
FROM purchase_items WHERE purchase_id = $1 ORDER BY position`, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ledger.Item
	for rows.Next() {
		var it ledger.Item
		if err := rows.Scan(&it.Name, &it.Description, &it.Qty, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

var _ RepositoryPort = (*Repository)(nil)
