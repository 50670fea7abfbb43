// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Policy *memberpolicy.Policy
}

func NewHandler(docs *docstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		ErrLog: errLog,
		Policy: memberpolicy.New(memberstore.New(docs)),
	}
}

type isAdminQuery struct {
	Email string `schema:"email" validate:"required"`
}

type isAdminResponse struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// ServeIsAdmin reports whether ?email= names an admin. Unknown emails are
// simply not admins.
func (h *Handler) ServeIsAdmin(w http.ResponseWriter, r *http.Request) {
	var q isAdminQuery
	if err := reqdecode.Query(r, &q); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Policy.IsAdmin(ctx, q.Email)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	respond.OK(w, isAdminResponse{Email: q.Email, IsAdmin: ok})
}
