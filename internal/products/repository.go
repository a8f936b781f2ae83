package products

import "context"

// RepositoryPort abstracts persistence for the service layer.
type RepositoryPort interface {
	Create(ctx context.Context, p Product) (*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	Update(ctx context.Context, id int64, p Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, adjustments []StockAdjustment) error
}
