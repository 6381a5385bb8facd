// Package http is the inbound HTTP adapter: the chi router and the server
// lifecycle around it.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

// NewRouter mounts the probes at /health and the API at /api/v1, wrapping
// every route in middlewares, outermost first.
func NewRouter(
	departments *handlers.DepartmentHandler,
	sellers *handlers.SellerHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departments.ListDepartments)
			r.Get("/{id}", departments.GetDepartment)
			r.Delete("/{id}", departments.DeleteDepartment)
		})
		r.Route("/sellers", func(r chi.Router) {
			r.Get("/", sellers.ListSellers)
			r.Get("/{id}", sellers.GetSeller)
			r.Delete("/{id}", sellers.DeleteSeller)
		})
		r.Route("/forms", func(r chi.Router) {
			r.Get("/departments", departments.OpenForm)
			r.Post("/departments", departments.SubmitForm)
			r.Get("/sellers", sellers.OpenForm)
			r.Post("/sellers", sellers.SubmitForm)
		})
	})

	return r
}
