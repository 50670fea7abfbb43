// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/coursehub/internal/app/system/gates"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all member routes under the path where the caller mounts it.
// Typically: r.Mount("/api/members", members.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public self-registration
	r.Post("/register", h.HandleRegister)

	// Admin-only listing and updates
	r.Group(func(pr chi.Router) {
		pr.Use(gates.AdminOnly(h.Policy, h.ErrLog))
		pr.Get("/", h.ServeList)
		pr.Patch("/update", h.HandleUpdate)
	})

	return r
}
