package purchases

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/itplanet/retail-backend/internal/ledger"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Service, *memoryPurchaseRepo) {
	t.Helper()
	svc, repo := newTestService()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, svc).MountRoutes(r)
	return r, svc, repo
}

func TestDueEndpointReturnsBareNumber(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	created, err := svc.Create(context.Background(), validRequest(), "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/due-purchase-payments/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "100", strings.TrimSpace(rec.Body.String()))
	require.Equal(t, created.Due, 100.0)
}

func TestDueEndpointLargeAmountPlainDigits(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	req := validRequest()
	req.Products = []ledger.Item{{Name: "NVR Rack", Qty: 200, UnitPrice: 10000}}
	req.Paid = 500000
	_, err := svc.Create(context.Background(), req, "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/due-purchase-payments/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1500000", strings.TrimSpace(rec.Body.String()))
}

func TestCreateEndpointRejectsMissingHeaderField(t *testing.T) {
	router, _, repo := newTestRouter(t)

	body := `{
		"supplier_name": "",
		"mobile_number": "9876543210",
		"purchase_date": "2026-08-15",
		"categories": "Accessories",
		"products": [{"name": "Cable", "qty": 2, "price": 50}],
		"paid": 0,
		"location": "Nanded"
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-purchase", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"All fields are required!"}`, rec.Body.String())
	require.Empty(t, repo.purchases)
}

func TestDueEndpointUnknownPurchase(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/due-purchase-payments/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"Purchase not found"}`, rec.Body.String())
}

func TestSettleEndpointRejectsOverpayment(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	_, err := svc.Create(context.Background(), validRequest(), "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update-due-purchase-payments/1",
		strings.NewReader(`{"paid": 500}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"Paid amount exceeds due amount!"}`, rec.Body.String())

	due, err := svc.Due(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 100.0, due)
}

func TestSettleEndpointUpdatesPurchase(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	_, err := svc.Create(context.Background(), validRequest(), "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update-due-purchase-payments/1",
		strings.NewReader(`{"paid": 100}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	p, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Due)
	require.Equal(t, ledger.PaymentStatus(p.Total, p.Paid), p.PaymentStatus)
	require.Equal(t, "Paid", p.PaymentStatus)
}
