package members

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUpdate changes a member's role and/or subscription status.
// Mounted behind the admin gate.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var q updateQuery
	if err := reqdecode.Query(r, &q); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	upd, err := parseUpdate(q)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Policy.EnsureMember(ctx, q.Email); err != nil {
		if errors.Is(err, memberpolicy.ErrMemberNotFound) {
			h.ErrLog.Write(w, r, uierrors.NotFound("Member not found"))
			return
		}
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	if upd.Empty() {
		h.ErrLog.Write(w, r, uierrors.BadRequest("No updates provided"))
		return
	}

	if err := h.Members.Apply(ctx, q.Email, upd); err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Info("member updated", zap.String("email", q.Email))
	respond.OK(w, respond.Message{Message: "Updated"})
}

// parseUpdate validates role and status against their closed sets.
func parseUpdate(q updateQuery) (memberstore.Update, error) {
	var upd memberstore.Update
	if q.Role != "" {
		role, ok := models.ParseRole(q.Role)
		if !ok {
			return upd, uierrors.BadRequest("Invalid role")
		}
		upd.Role = &role
	}
	if q.SubscriptionStatus != "" {
		st, ok := models.ParseSubscriptionStatus(q.SubscriptionStatus)
		if !ok {
			return upd, uierrors.BadRequest("Invalid subscription_status")
		}
		upd.SubscriptionStatus = &st
	}
	return upd, nil
}
