// internal/app/features/resources/routes.go
package resources

import (
	"github.com/dalemusser/coursehub/internal/app/system/gates"
	"github.com/go-chi/chi/v5"
)

// Routes is mounted under /api/resources.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.With(gates.AdminOnly(h.Policy, h.ErrLog)).Post("/", h.HandleCreate)
	return r
}
