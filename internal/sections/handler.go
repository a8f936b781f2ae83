package sections

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itplanet/retail-backend/internal/platform/httpx"
)

// ListerPort abstracts section listing for the handler.
type ListerPort interface {
	List(ctx context.Context) ([]Section, error)
}

// Handler serves section lookups.
type Handler struct {
	logger *slog.Logger
	repo   ListerPort
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, repo ListerPort) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// MountRoutes registers section routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/get-sections", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sections, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list sections", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to load sections")
		return
	}
	if sections == nil {
		sections = []Section{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"sections": sections})
}
