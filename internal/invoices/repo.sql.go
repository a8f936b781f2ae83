package invoices

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
// invoice_items and are rewritten whenever the invoice is saved.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const invoiceColumns = `id, invoice_number, client_name, mobile_number, invoice_date, due_date, categories, total, paid, due, payment_status, location, created_by, created_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &inv.MobileNumber, &inv.InvoiceDate,
		&inv.DueDate, &inv.Categories, &inv.Total, &inv.Paid, &inv.Due, &inv.PaymentStatus,
		&inv.Location, &inv.CreatedBy, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// Create inserts the invoice header and its line items atomically.
func (r *Repository) Create(ctx context.Context, inv Invoice) (*Invoice, error) {
	var created *Invoice
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO invoices
(invoice_number, client_name, mobile_number, invoice_date, due_date, categories, total, paid, due, payment_status, location, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING `+invoiceColumns,
			inv.InvoiceNumber, inv.ClientName, inv.MobileNumber, inv.InvoiceDate, inv.DueDate,
			inv.Categories, inv.Total, inv.Paid, inv.Due, inv.PaymentStatus, inv.Location,
			inv.CreatedBy, time.Now().UTC())
		header, err := scanInvoice(row)
		if err != nil {
			return err
		}
		if err := insertItems(ctx, tx, header.ID, inv.Products); err != nil {
			return err
		}
		header.Products = inv.Products
		created = header
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the invoice header and replaces its line items.
func (r *Repository) Update(ctx context.Context, id int64, inv Invoice) (*Invoice, error) {
	var updated *Invoice
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `UPDATE invoices SET
client_name = $1, mobile_number = $2, invoice_date = $3, due_date = $4, categories = $5,
total = $6, paid = $7, due = $8, payment_status = $9, location = $10
WHERE id = $11
RETURNING `+invoiceColumns,
			inv.ClientName, inv.MobileNumber, inv.InvoiceDate, inv.DueDate, inv.Categories,
			inv.Total, inv.Paid, inv.Due, inv.PaymentStatus, inv.Location, id)
		header, err := scanInvoice(row)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		if err := insertItems(ctx, tx, id, inv.Products); err != nil {
			return err
		}
		header.Products = inv.Products
		updated = header
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []ledger.Item) error {
	for i, it := range items {
		if _, err := tx.Exec(ctx, `INSERT INTO invoice_items
(invoice_id, position, name, description, qty, price, sub_total)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			invoiceID, i, it.Name, it.Description, it.Qty, it.UnitPrice, it.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

// Get fetches an invoice with its line items.
func (r *Repository) Get(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Products = items
	return inv, nil
}

// GetByNumber fetches an invoice by its invoice number.
func (r *Repository) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Products = items
	return inv, nil
}

// List returns invoices, newest first, optionally scoped to a location.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
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

	var invoices []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range invoices {
		items, err := r.items(ctx, invoices[i].ID)
		if err != nil {
			return nil, err
		}
		invoices[i].Products = items
	}
	return invoices, nil
}

// Delete removes an invoice and its line items.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
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
func (r *Repository) UpdatePayment(ctx context.Context, id int64, paid, due float64, status string) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `UPDATE invoices
SET paid = $1, due = $2, payment_status = $3
WHERE id = $4
RETURNING `+invoiceColumns, paid, due, status, id))
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Products = items
	return inv, nil
}

func (r *Repository) items(ctx context.Context, invoiceID int64) ([]ledger.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, description, qty, price, sub_total
FROM invoice_items WHERE invoice_id = $1 ORDER BY position`, invoiceID)
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
