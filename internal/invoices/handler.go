package invoices

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/itplanet/retail-backend/internal/export"
	"github.com/itplanet/retail-backend/internal/ledger"
	"github.com/itplanet/retail-backend/internal/platform/httpx"
	"github.com/itplanet/retail-backend/internal/products"
	"github.com/itplanet/retail-backend/internal/shared"
)

// Handler wires invoice endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/save-invoice", h.save)
	r.Get("/invoice-list", h.list)
	r.Get("/invoice-list/export", h.exportList)
	r.Get("/invoice-details/{id}", h.details)
	r.Get("/invoice-pdf/{id}", h.pdf)
	r.Delete("/delete-invoice/{id}", h.delete)
	r.Get("/due-payments/{id}", h.due)
	r.Put("/update-due-payments/{id}", h.settle)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req SaveInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, ledger.ErrMissingFields.Error())
		return
	}

	createdBy := ""
	if user := shared.SessionFromContext(r.Context()).User(); user != nil {
		createdBy = user.Username
	}

	invoice, err := h.service.Save(r.Context(), req, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInsufficientStock), errors.Is(err, products.ErrNotFound):
			httpx.Message(w, http.StatusConflict, err.Error())
		default:
			httpx.Message(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Invoice saved successfully",
		"invoice": invoice,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context(), h.filter(r))
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load invoices")
		return
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoices": invoices})
}

func (h *Handler) exportList(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context(), h.filter(r))
	if err != nil {
		h.logger.Error("export invoices", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to export invoices")
		return
	}

	headers := []string{"Invoice Number", "Client Name", "Invoice Date", "Mobile Number",
		"Total", "Paid", "Due", "Payment Status", "Location"}
	rows := make([][]any, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []any{
			inv.InvoiceNumber, inv.ClientName, inv.InvoiceDate.Format("02-01-2006"), inv.MobileNumber,
			inv.Total, inv.Paid, inv.Due, inv.PaymentStatus, inv.Location,
		})
	}

	book, err := export.Workbook("Invoices", headers, rows)
	if err != nil {
		h.logger.Error("render invoice workbook", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to export invoices")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice_list.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(book)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	invoice, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("invoice details", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load invoice")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoice": invoice})
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	invoice, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("invoice pdf", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	doc, err := export.PDF(export.Document{
		Kind:         "Invoice",
		Number:       invoice.InvoiceNumber,
		Date:         invoice.InvoiceDate,
		PartyLabel:   "Client",
		PartyName:    invoice.ClientName,
		MobileNumber: invoice.MobileNumber,
		Location:     invoice.Location,
		Items:        invoice.Products,
		Total:        invoice.Total,
		Paid:         invoice.Paid,
		Due:          invoice.Due,
		ShowPayments: true,
	})
	if err != nil {
		h.logger.Error("render invoice pdf", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename=%q`, export.FileName(invoice.ClientName, "Invoice")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("delete invoice", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	httpx.Message(w, http.StatusOK, "Invoice deleted successfully")
}

// due responds with the remaining amount as a bare JSON number.
func (h *Handler) due(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	due, err := h.service.Due(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("fetch invoice due", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load due amount")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strconv.FormatFloat(due, 'f', -1, 64)))
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var req SettleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.service.Settle(r.Context(), id, req.Paid)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
		case errors.Is(err, ledger.ErrNonPositivePayment), errors.Is(err, ledger.ErrOverpayment):
			httpx.Message(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("settle invoice", slog.Any("error", err))
			httpx.Message(w, http.StatusInternalServerError, "Failed to update payment")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Payment updated successfully",
		"invoice": invoice,
	})
}

func (h *Handler) filter(r *http.Request) ListFilter {
	location := r.URL.Query().Get("location")
	if location == "" {
		if user := shared.SessionFromContext(r.Context()).User(); user != nil {
			location = user.Location
		}
	}
	return ListFilter{Location: location}
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid invoice ID")
		return 0, false
	}
	return id, true
}
