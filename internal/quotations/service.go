package quotations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Service implements quotation workflows over the repository port.
type Service struct {
	repo    RepositoryPort
	numbers *ledger.NumberGenerator
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, numbers *ledger.NumberGenerator) *Service {
	return &Service{repo: repo, numbers: numbers}
}

// Create validates the quotation through the ledger rules, assigns the
// document number and computes the total before persisting.
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest, createdBy string) (*Quotation, error) {
	date, err := time.Parse("2006-01-02", req.QuotationDate)
	if err != nil {
		return nil, ledger.ErrMissingFields
	}

	lg := ledger.Ledger{
		PartyName:      req.CustomerName,
		ContactNumber:  req.MobileNumber,
		DocumentNumber: s.numbers.Next("QUO"),
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

	return s.repo.Create(ctx, Quotation{
		QuotationNumber: lg.DocumentNumber,
		CustomerName:    lg.PartyName,
		MobileNumber:    lg.ContactNumber,
		QuotationDate:   lg.Date,
		Categories:      lg.Category,
		Products:        lg.Items,
		TotalPrice:      lg.Total,
		Location:        req.Location,
		CreatedBy:       createdBy,
	})
}

// List returns quotations scoped by location and optional category.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Quotation, error) {
	if strings.TrimSpace(filter.Location) == "" {
		return nil, errors.New("quotations: location required")
	}
	return s.repo.List(ctx, filter)
}

// Get fetches one quotation with its items, for the details page.
func (s *Service) Get(ctx context.Context, id int64) (*Quotation, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a quotation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
