package admin

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/is_admin", h.ServeIsAdmin)
	return r
}
