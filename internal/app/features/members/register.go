package members

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleRegister creates a member with role "member", status "inactive", and
// the configured plan. A second registration for the same email is rejected.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := reqdecode.JSON(r, &in); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Members.Register(ctx, in.Name, in.Email, h.Plan)
	if errors.Is(err, memberstore.ErrDuplicateEmail) {
		h.ErrLog.Write(w, r, uierrors.Conflict("Email already registered"))
		return
	}
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Info("member registered", zap.String("member_id", id), zap.String("email", in.Email))
	respond.OK(w, respond.Created{ID: id, Message: "Registered"})
}
