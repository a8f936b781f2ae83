package quotations

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
	"github.com/itplanet/retail-backend/internal/shared"
)

// Handler wires quotation endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers quotation routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/add-quotation", h.create)
	r.Get("/quotation-list/{location}", h.list)
	r.Get("/quotation-list/{location}/{category}", h.list)
	r.Get("/quotation-details/{id}", h.details)
	r.Get("/quotation-pdf/{id}", h.pdf)
	r.Delete("/delete-quotation/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
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

	quotation, err := h.service.Create(r.Context(), req, createdBy)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message":   "Quotation saved successfully",
		"quotation": quotation,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Location: chi.URLParam(r, "location"),
		Category: chi.URLParam(r, "category"),
	}
	quotations, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list quotations", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load quotations")
		return
	}
	if quotations == nil {
		quotations = []Quotation{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"quotations": quotations})
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	quotation, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("quotation details", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load quotation")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"quotation": quotation})
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	quotation, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("quotation pdf", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load quotation")
		return
	}

	doc, err := export.PDF(export.Document{
		Kind:         "Quotation",
		Number:       quotation.QuotationNumber,
		Date:         quotation.QuotationDate,
		PartyLabel:   "Customer",
		PartyName:    quotation.CustomerName,
		MobileNumber: quotation.MobileNumber,
		Location:     quotation.Location,
		Items:        quotation.Products,
		Total:        quotation.TotalPrice,
	})
	if err != nil {
		h.logger.Error("render quotation pdf", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename=%q`, export.FileName(quotation.CustomerName, "Quotation")))
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
		h.logger.Error("delete quotation", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to delete quotation")
		return
	}
	httpx.Message(w, http.StatusOK, "Quotation deleted successfully")
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid quotation ID")
		return 0, false
	}
	return id, true
}
