package quotations

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
// quotation_items and are written in the same transaction as the header.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const quotationColumns = `id, quotation_number, customer_name, mobile_number, quotation_date, categories, total_price, location, created_by, created_at`

func scanQuotation(row pgx.Row) (*Quotation, error) {
	var q Quotation
	err := row.Scan(&q.ID, &q.QuotationNumber, &q.CustomerName, &q.MobileNumber, &q.QuotationDate,
		&q.Categories, &q.TotalPrice, &q.Location, &q.CreatedBy, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// Create inserts the quotation header and its line items atomically.
func (r *Repository) Create(ctx context.Context, q Quotation) (*Quotation, error) {
	var created *Quotation
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO quotations
(quotation_number, customer_name, mobile_number, quotation_date, categories, total_price, location, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING `+quotationColumns,
			q.QuotationNumber, q.CustomerName, q.MobileNumber, q.QuotationDate, q.Categories,
			q.TotalPrice, q.Location, q.CreatedBy, time.Now().UTC())
		header, err := scanQuotation(row)
		if err != nil {
			return err
		}
		for i, it := range q.Products {
			if _, err := tx.Exec(ctx, `INSERT INTO quotation_items
(quotation_id, position, name, description, qty, price, sub_total)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				header.ID, i, it.Name, it.Description, it.Qty, it.UnitPrice, it.Subtotal); err != nil {
				return err
			}
		}
		header.Products = q.Products
		created = header
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a quotation with its line items.
func (r *Repository) Get(ctx context.Context, id int64) (*Quotation, error) {
	q, err := scanQuotation(r.pool.QueryRow(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Products = items
	return q, nil
}

// List returns quotations for a location, optionally by category, newest
// first.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE location = $1`
	args := []any{filter.Location}
	if filter.Category != "" {
		query += ` AND categories = $2`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range quotations {
		items, err := r.items(ctx, quotations[i].ID)
		if err != nil {
			return nil, err
		}
		quotations[i].Products = items
	}
	return quotations, nil
}

// Delete removes a quotation and its line items.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *Repository) items(ctx context.Context, quotationID int64) ([]ledger.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, description, qty, price, sub_total
FROM quotation_items WHERE quotation_id = $1 ORDER BY position`, quotationID)
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
