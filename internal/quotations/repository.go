package quotations

import "context"

// RepositoryPort abstracts persistence for the service layer.
type RepositoryPort interface {
	Create(ctx context.Context, q Quotation) (*Quotation, error)
	Get(ctx context.Context, id int64) (*Quotation, error)
	List(ctx context.Context, filter ListFilter) ([]Quotation, error)
	Delete(ctx context.Context, id int64) error
}
