package invoices

import (
	"context"

	"github.com/itplanet/retail-backend/internal/products"
)

// RepositoryPort abstracts persistence for the service layer.
type RepositoryPort interface {
	Create(ctx context.Context, inv Invoice) (*Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	List(ctx context.Context, filter ListFilter) ([]Invoice, error)
	Update(ctx context.Context, id int64, inv Invoice) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
	UpdatePayment(ctx context.Context, id int64, paid, due float64, status string) (*Invoice, error)
}

// StockAdjuster decrements catalogue stock when an invoice is saved.
// Satisfied by the products service.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, req products.UpdateStockRequest) error
}
