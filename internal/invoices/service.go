package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
	"github.com/itplanet/retail-backend/internal/products"
)

// Service implements invoice workflows over the repository port. Stock
// is decremented through the adjuster when a new invoice is saved.
type Service struct {
	repo    RepositoryPort
	stock   StockAdjuster
	numbers *ledger.NumberGenerator
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, stock StockAdjuster, numbers *ledger.NumberGenerator) *Service {
	return &Service{repo: repo, stock: stock, numbers: numbers}
}

// Save creates or updates an invoice. A request without an invoice
// number creates a new invoice, decrementing stock for every line. A
// request carrying a known number overwrites that invoice without
// touching stock again.
func (s *Service) Save(ctx context.Context, req SaveInvoiceRequest, createdBy string) (*Invoice, error) {
	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, ledger.ErrMissingFields
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, ledger.ErrMissingFields
	}

	number := req.InvoiceNumber
	if number == "" {
		number = s.numbers.Next("INV")
	}

	lg := ledger.Ledger{
		PartyName:      req.ClientName,
		ContactNumber:  req.MobileNumber,
		DocumentNumber: number,
		Date:           invoiceDate,
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

	invoice := Invoice{
		InvoiceNumber: number,
		ClientName:    lg.PartyName,
		MobileNumber:  lg.ContactNumber,
		InvoiceDate:   lg.Date,
		DueDate:       dueDate,
		Categories:    lg.Category,
		Products:      lg.Items,
		Total:         lg.Total,
		Paid:          req.Paid,
		Due:           lg.Total - req.Paid,
		PaymentStatus: ledger.PaymentStatus(lg.Total, req.Paid),
		Location:      req.Location,
		CreatedBy:     createdBy,
	}

	existing, err := s.repo.GetByNumber(ctx, number)
	switch {
	case err == nil:
		invoice.CreatedBy = existing.CreatedBy
		return s.repo.Update(ctx, existing.ID, invoice)
	case errors.Is(err, ErrNotFound):
		if err := s.adjustStock(ctx, invoice); err != nil {
			return nil, err
		}
		return s.repo.Create(ctx, invoice)
	default:
		return nil, err
	}
}

func (s *Service) adjustStock(ctx context.Context, inv Invoice) error {
	adjustments := make([]products.StockAdjustment, 0, len(inv.Products))
	for _, it := range inv.Products {
		adjustments = append(adjustments, products.StockAdjustment{
			ProductName: it.Name,
			Location:    inv.Location,
			Qty:         it.Qty,
		})
	}
	return s.stock.AdjustStock(ctx, products.UpdateStockRequest{Items: adjustments})
}

// List returns invoices, optionally scoped to a location.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Invoice, error) {
	return s.repo.List(ctx, filter)
}

// Get fetches one invoice with its items.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes an invoice.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Due returns the persisted remaining due for an invoice.
func (s *Service) Due(ctx context.Context, id int64) (float64, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return inv.Due, nil
}

// Settle applies a further payment against the stored due. The tendered
// amount must be positive and may not exceed the remaining due.
func (s *Service) Settle(ctx context.Context, id int64, tendered float64) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	remaining, err := ledger.Settle(inv.Due, tendered)
	if err != nil {
		return nil, err
	}
	paid := inv.Paid + tendered
	return s.repo.UpdatePayment(ctx, id, paid, remaining, ledger.PaymentStatus(inv.Total, paid))
}
