// internal/app/features/messages/handler.go
package messages

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	messagestore "github.com/dalemusser/coursehub/internal/app/store/messages"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the community message board.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Messages *messagestore.Store
	Policy   *memberpolicy.Policy
	// DefaultLimit applies when a listing gives no limit.
	DefaultLimit int64
}

func NewHandler(docs *docstore.Store, defaultLimit int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = messagestore.DefaultLimit
	}
	return &Handler{
		Log:          logger,
		ErrLog:       errLog,
		Messages:     messagestore.New(docs),
		Policy:       memberpolicy.New(memberstore.New(docs)),
		DefaultLimit: defaultLimit,
	}
}

type listQuery struct {
	Channel string `schema:"channel"`
	Limit   *int64 `schema:"limit" validate:"omitempty,gt=0"`
}

type postInput struct {
	MemberEmail string `json:"member_email" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Channel     string `json:"channel"`
}

// ServeList returns the newest messages in ?channel= (default "general"),
// at most ?limit= of them.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := reqdecode.Query(r, &q); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}
	limit := h.DefaultLimit
	if q.Limit != nil {
		limit = *q.Limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs, err := h.Messages.ListChannel(ctx, q.Channel, limit)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	respond.OK(w, msgs)
}

// HandlePost stores a message from a member whose subscription allows posting.
func (h *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var in postInput
	if err := reqdecode.JSON(r, &in); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Policy.EnsureMember(ctx, in.MemberEmail)
	if err != nil {
		if errors.Is(err, memberpolicy.ErrMemberNotFound) {
			h.ErrLog.Write(w, r, uierrors.NotFound("Member not found"))
			return
		}
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	if !memberpolicy.CanPost(m) {
		h.ErrLog.Write(w, r, uierrors.Forbidden("Subscription required"))
		return
	}

	// Content is stored exactly as sent; only blank text is refused.
	content := in.Content
	if strings.TrimSpace(content) == "" {
		h.ErrLog.Write(w, r, uierrors.BadRequest("Content is required"))
		return
	}
	channel := in.Channel
	if channel == "" {
		channel = models.DefaultChannel
	}

	id, err := h.Messages.Post(ctx, m.Email, content, channel)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Debug("message posted", zap.String("message_id", id), zap.String("channel", channel))
	respond.OK(w, respond.Created{ID: id, Message: "Posted"})
}
