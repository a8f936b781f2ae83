package purchases

import (
	"context"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Service implements purchase workflows over the repository port.
type Service struct {
	repo    RepositoryPort
	numbers *ledger.NumberGenerator
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, numbers *ledger.NumberGenerator) *Service {
	return &Service{repo: repo, numbers: numbers}
}

// Create validates the purchase through the ledger rules, assigns the
// document number and derives total, due and payment status before
// persisting. The paid amount may not exceed the computed total.
func (s *Service) Create(ctx context.Context, req CreatePurchaseRequest, createdBy string) (*Purchase, error) {
	date, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, ledger.ErrMissingFields
	}

	lg := ledger.Ledger{
		PartyName:      req.SupplierName,
		ContactNumber:  req.MobileNumber,
		DocumentNumber: s.numbers.Next("PUR"),
		Date:           date,
		Category:       req.Categories,
	}
	for _, it := range req.Products {
		if err := lg.AddOrUpdate(it, nil); err != nil {
			return nil, err
		}
	}
	if err := lg.ValidateForSubmit(); err != nil {
		return nil, err
	}
	if req.Paid < 0 {
		return nil, ledger.ErrNonPositivePayment
	}
	if req.Paid > lg.Total {
		return nil, ledger.ErrOverpayment
	}

	return s.repo.Create(ctx, Purchase{
		PurchaseNumber: lg.DocumentNumber,
		SupplierName:   lg.PartyName,
		MobileNumber:   lg.ContactNumber,
		PurchaseDate:   lg.Date,
		Categories:     lg.Category,
		Products:       lg.Items,
		Total:          lg.Total,
		Paid:           req.Paid,
		Due:            lg.Total - req.Paid,
		PaymentStatus:  ledger.PaymentStatus(lg.Total, req.Paid),
		Location:       req.Location,
		CreatedBy:      createdBy,
	})
}

// List returns purchases, optionally scoped to a location.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Purchase, error) {
	return s.repo.List(ctx, filter)
}

// Get fetches one purchase.
func (s *Service) Get(ctx context.Context, id int64) (*Purchase, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a purchase.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Due returns the persisted remaining due for a purchase.
func (s *Service) Due(ctx context.Context, id int64) (float64, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Due, nil
}

// Settle applies a further payment against the stored due. The tendered
// amount must be positive and may not exceed the remaining due.
func (s *Service) Settle(ctx context.Context, id int64, tendered float64) (*Purchase, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	remaining, err := ledger.Settle(p.Due, tendered)
	if err != nil {
		return nil, err
	}
	paid := p.Paid + tendered
	return s.repo.UpdatePayment(ctx, id, paid, remaining, ledger.PaymentStatus(p.Total, paid))
}
