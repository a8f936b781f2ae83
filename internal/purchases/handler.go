package purchases

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/itplanet/retail-backend/internal/export"
	"github.com/itplanet/retail-backend/internal/ledger"
	"github.com/itplanet/retail-backend/internal/platform/httpx"
	"github.com/itplanet/retail-backend/internal/shared"
)

// Handler wires purchase endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers purchase routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/add-purchase", h.create)
	r.Get("/purchase-list", h.list)
	r.Get("/purchase-list/export", h.exportList)
	r.Delete("/delete-purchase/{id}", h.delete)
	r.Get("/due-purchase-payments/{id}", h.due)
	r.Put("/update-due-purchase-payments/{id}", h.settle)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreatePurchaseRequest
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

	purchase, err := h.service.Create(r.Context(), req, createdBy)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message":  "Purchase saved successfully",
		"purchase": purchase,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.service.List(r.Context(), h.filter(r))
	if err != nil {
		h.logger.Error("list purchases", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load purchases")
		return
	}
	if purchases == nil {
		purchases = []Purchase{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"purchases": purchases})
}

func (h *Handler) exportList(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.service.List(r.Context(), h.filter(r))
	if err != nil {
		h.logger.Error("export purchases", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to export purchases")
		return
	}

	headers := []string{"Purchase Number", "Supplier Name", "Purchase Date", "Mobile Number",
		"Total", "Paid", "Due", "Payment Status", "Location"}
	rows := make([][]any, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []any{
			p.PurchaseNumber, p.SupplierName, p.PurchaseDate.Format("02-01-2006"), p.MobileNumber,
			p.Total, p.Paid, p.Due, p.PaymentStatus, p.Location,
		})
	}

	book, err := export.Workbook("Purchases", headers, rows)
	if err != nil {
		h.logger.Error("render purchase workbook", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to export purchases")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="purchase_list.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(book)
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
		h.logger.Error("delete purchase", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to delete purchase")
		return
	}
	httpx.Message(w, http.StatusOK, "Purchase deleted successfully")
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
		h.logger.Error("fetch purchase due", slog.Any("error", err))
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

	purchase, err := h.service.Settle(r.Context(), id, req.Paid)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
		case errors.Is(err, ledger.ErrNonPositivePayment), errors.Is(err, ledger.ErrOverpayment):
			httpx.Message(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("settle purchase", slog.Any("error", err))
			httpx.Message(w, http.StatusInternalServerError, "Failed to update payment")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message":  "Payment updated successfully",
		"purchase": purchase,
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
		httpx.Message(w, http.StatusBadRequest, "Invalid purchase ID")
		return 0, false
	}
	return id, true
}
