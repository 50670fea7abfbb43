// internal/app/features/videos/handler.go
package videos

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	videostore "github.com/dalemusser/coursehub/internal/app/store/videos"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the course video catalog.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Videos *videostore.Store
	Policy *memberpolicy.Policy
}

func NewHandler(docs *docstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		ErrLog: errLog,
		Videos: videostore.New(docs),
		Policy: memberpolicy.New(memberstore.New(docs)),
	}
}

type createInput struct {
	Title       string  `json:"title" validate:"required"`
	VimeoID     string  `json:"vimeo_id" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vids, err := h.Videos.List(ctx)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	respond.OK(w, vids)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := reqdecode.JSON(r, &in); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Videos.Create(ctx, models.Video{
		Title:       in.Title,
		VimeoID:     in.VimeoID,
		Description: in.Description,
		Category:    in.Category,
	})
	switch {
	case errors.Is(err, videostore.ErrTitleRequired), errors.Is(err, videostore.ErrVimeoIDRequired):
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	case err != nil:
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Info("video added", zap.String("video_id", id), zap.String("vimeo_id", in.VimeoID))
	respond.OK(w, respond.Created{ID: id, Message: "Video added"})
}
