package products

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/itplanet/retail-backend/internal/platform/httpx"
)

// Handler wires catalogue endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/add", h.create)
	r.Get("/list/{location}", h.list)
	r.Get("/list/{location}/{category}", h.list)
	r.Put("/update/{id}", h.update)
	r.Delete("/delete/{id}", h.delete)
	r.Put("/update-stock", h.updateStock)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "All fields are required!")
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Product saved successfully",
		"product": product,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Location: chi.URLParam(r, "location"),
		Category: chi.URLParam(r, "category"),
	}
	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load inventory")
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"inventory": products})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "All fields are required!")
		return
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("update product", slog.Any("error", err))
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Product updated successfully",
		"product": product,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		h.logger.Error("delete product", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	httpx.Message(w, http.StatusOK, "Product deleted successfully")
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req UpdateStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Stock adjustments are required")
		return
	}

	if err := h.service.AdjustStock(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Message(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInsufficientStock):
			httpx.Message(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("update stock", slog.Any("error", err))
			httpx.Message(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	httpx.Message(w, http.StatusOK, "Stock updated successfully")
}
