package purchases

import "context"

// RepositoryPort abstracts persistence for the service layer.
type RepositoryPort interface {
	Create(ctx context.Context, p Purchase) (*Purchase, error)
	Get(ctx context.Context, id int64) (*Purchase, error)
	List(ctx context.Context, filter ListFilter) ([]Purchase, error)
	Delete(ctx context.Context, id int64) error
	UpdatePayment(ctx context.Context, id int64, paid, due float64, status string) (*Purchase, error)
}
