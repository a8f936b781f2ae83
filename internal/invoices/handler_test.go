package invoices

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

func newTestRouter(t *testing.T, stockLevels map[string]float64) (*chi.Mux, *Service, *memoryInvoiceRepo, *fakeStock) {
	t.Helper()
	svc, repo, stock := newTestService(stockLevels)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, svc).MountRoutes(r)
	return r, svc, repo, stock
}

func TestSaveEndpointRejectsMissingHeaderField(t *testing.T) {
	router, _, repo, stock := newTestRouter(t, ampleStock())

	body := `{
		"client_name": "Rahul Traders",
		"mobile_number": "9012345678",
		"invoice_date": "",
		"due_date": "2026-09-25",
		"categories": "Accessories",
		"products": [{"name": "HDMI Cable", "qty": 2, "price": 50}],
		"paid": 0,
		"location": "Nanded"
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/save-invoice", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"All fields are required!"}`, rec.Body.String())
	require.Empty(t, repo.invoices)
	require.Equal(t, 0, stock.calls)
}

func TestDueEndpointLargeAmountPlainDigits(t *testing.T) {
	router, svc, _, _ := newTestRouter(t, map[string]float64{"NVR Rack": 500})

	req := validRequest()
	req.Products = []ledger.Item{{Name: "NVR Rack", Qty: 200, UnitPrice: 10000}}
	req.Paid = 500000
	_, err := svc.Save(context.Background(), req, "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/due-payments/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1500000", strings.TrimSpace(rec.Body.String()))
}
