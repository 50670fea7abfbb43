package subscriptions

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/subscribe.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubscribe)
	return r
}
