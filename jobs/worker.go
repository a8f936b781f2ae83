package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Worker owns the task handlers and their database access.
type Worker struct {
	logger *slog.Logger
	pool   *pgxpool.Pool
}

// NewWorker builds Worker instance.
func NewWorker(logger *slog.Logger, pool *pgxpool.Pool) *Worker {
	return &Worker{logger: logger, pool: pool}
}

// Mux registers the task handlers.
func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentsStatusSync, w.handlePaymentsStatusSync)
	mux.HandleFunc(TypeLowStockScan, w.handleLowStockScan)
	return mux
}

// handlePaymentsStatusSync re-derives payment_status from the stored
// totals on invoices and purchases, repairing any drift.
func (w *Worker) handlePaymentsStatusSync(ctx context.Context, _ *asynq.Task) error {
	const statusExpr = `CASE
WHEN due <= 0 THEN 'Paid'
WHEN paid <= 0 THEN 'Due'
ELSE 'Partial'
END`

	for _, table := range []string{"invoices", "purchases"} {
		tag, err := w.pool.Exec(ctx, fmt.Sprintf(
			`UPDATE %s SET payment_status = %s WHERE payment_status <> %s`,
			table, statusExpr, statusExpr))
		if err != nil {
			return fmt.Errorf("jobs: sync %s payment status: %w", table, err)
		}
		if n := tag.RowsAffected(); n > 0 {
			w.logger.Warn("repaired payment statuses",
				slog.String("table", table), slog.Int64("rows", n))
		}
	}
	return nil
}

// handleLowStockScan logs every product at or below the threshold so
// operators can restock.
func (w *Worker) handleLowStockScan(ctx context.Context, t *asynq.Task) error {
	var payload LowStockPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("jobs: decode low stock payload: %w", err)
	}

	rows, err := w.pool.Query(ctx,
		`SELECT product_name, location, quantity FROM products WHERE quantity <= $1 ORDER BY quantity`,
		payload.Threshold)
	if err != nil {
		return fmt.Errorf("jobs: scan low stock: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, location string
		var quantity float64
		if err := rows.Scan(&name, &location, &quantity); err != nil {
			return err
		}
		w.logger.Warn("low stock",
			slog.String("product", name),
			slog.String("location", location),
			slog.Float64("quantity", quantity))
	}
	return rows.Err()
}
