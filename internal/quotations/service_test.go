package quotations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itplanet/retail-backend/internal/ledger"
)

type memoryQuotationRepo struct {
	quotations map[int64]*Quotation
	nextID     int64
}

func newMemoryQuotationRepo() *memoryQuotationRepo {
	return &memoryQuotationRepo{quotations: make(map[int64]*Quotation)}
}

func (r *memoryQuotationRepo) Create(ctx context.Context, q Quotation) (*Quotation, error) {
	r.nextID++
	q.ID = r.nextID
	r.quotations[q.ID] = &q
	return &q, nil
}

func (r *memoryQuotationRepo) Get(ctx context.Context, id int64) (*Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

func (r *memoryQuotationRepo) List(ctx context.Context, filter ListFilter) ([]Quotation, error) {
	var out []Quotation
	for _, q := range r.quotations {
		if q.Location != filter.Location {
			continue
		}
		if filter.Category != "" && q.Categories != filter.Category {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (r *memoryQuotationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.quotations[id]; !ok {
		return ErrNotFound
	}
	delete(r.quotations, id)
	return nil
}

func validRequest() CreateQuotationRequest {
	return CreateQuotationRequest{
		CustomerName:  "Shree Enterprises",
		MobileNumber:  "9123456780",
		QuotationDate: "2026-08-20",
		Categories:    "CCTV",
		Products: []ledger.Item{
			{Name: "Dome Camera", Qty: 4, UnitPrice: 2500},
			{Name: "DVR 8ch", Qty: 1, UnitPrice: 6000},
		},
		Location: "Latur",
	}
}

func newTestService() *Service {
	return NewService(newMemoryQuotationRepo(), ledger.NewNumberGenerator())
}

func TestCreateQuotationComputesTotal(t *testing.T) {
	svc := newTestService()

	q, err := svc.Create(context.Background(), validRequest(), "kiran")
	require.NoError(t, err)
	require.Equal(t, 16000.0, q.TotalPrice)
	require.Regexp(t, `^QUO-\d+$`, q.QuotationNumber)
	require.Equal(t, "kiran", q.CreatedBy)
	require.Equal(t, 10000.0, q.Products[0].Subtotal)
}

func TestCreateQuotationValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.Products = nil
	_, err := svc.Create(ctx, req, "")
	require.ErrorIs(t, err, ledger.ErrNoItems)

	req = validRequest()
	req.Products[0].Name = "  "
	_, err = svc.Create(ctx, req, "")
	require.ErrorIs(t, err, ledger.ErrEmptyName)

	req = validRequest()
	req.QuotationDate = "20/08/2026"
	_, err = svc.Create(ctx, req, "")
	require.ErrorIs(t, err, ledger.ErrMissingFields)
}

func TestListRequiresLocation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest(), "")
	require.NoError(t, err)

	_, err = svc.List(ctx, ListFilter{})
	require.Error(t, err)

	got, err := svc.List(ctx, ListFilter{Location: "Latur", Category: "CCTV"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.List(ctx, ListFilter{Location: "Latur", Category: "Accessories"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDeleteQuotation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	q, err := svc.Create(ctx, validRequest(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, q.ID))
	_, err = svc.Get(ctx, q.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, q.ID), ErrNotFound)
}
