package messages

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/messages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandlePost)
	return r
}
