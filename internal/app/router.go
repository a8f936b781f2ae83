package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/itplanet/retail-backend/internal/auth"
	"github.com/itplanet/retail-backend/internal/invoices"
	"github.com/itplanet/retail-backend/internal/observability"
	"github.com/itplanet/retail-backend/internal/platform/httpx"
	"github.com/itplanet/retail-backend/internal/products"
	"github.com/itplanet/retail-backend/internal/purchases"
	"github.com/itplanet/retail-backend/internal/quotations"
	"github.com/itplanet/retail-backend/internal/sections"
	"github.com/itplanet/retail-backend/internal/shared"
)

// RouterDeps aggregates everything the HTTP router mounts.
type RouterDeps struct {
	Logger     *slog.Logger
	Config     *Config
	Sessions   *shared.SessionManager
	Metrics    *observability.Metrics
	Auth       *auth.Handler
	Sections   *sections.Handler
	Products   *products.Handler
	Purchases  *purchases.Handler
	Quotations *quotations.Handler
	Invoices   *invoices.Handler
}

// NewRouter assembles the HTTP router. Auth endpoints are public;
// everything else sits behind the session gate.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(deps.Config.AppRequestTimeout))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         deps.Logger,
		Config:         deps.Config,
		SessionManager: deps.Sessions,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.Message(w, http.StatusOK, "ok")
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	deps.Auth.MountRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		deps.Sections.MountRoutes(r)
		deps.Products.MountRoutes(r)
		deps.Purchases.MountRoutes(r)
		deps.Quotations.MountRoutes(r)
		deps.Invoices.MountRoutes(r)
	})

	return r
}
