package members

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
)

// ServeList returns every member. Mounted behind the admin gate.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Members.List(ctx)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	respond.OK(w, members)
}
