// internal/app/features/resources/handler.go
package resources

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	resourcestore "github.com/dalemusser/coursehub/internal/app/store/resources"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the prompt and tool library.
type Handler struct {
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
	Resources *resourcestore.Store
	Policy    *memberpolicy.Policy
}

func NewHandler(docs *docstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:       logger,
		ErrLog:    errLog,
		Resources: resourcestore.New(docs),
		Policy:    memberpolicy.New(memberstore.New(docs)),
	}
}

type createInput struct {
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Description *string  `json:"description"`
	URL         *string  `json:"url"`
	Tags        []string `json:"tags"`
}

// ServeList returns every resource. Public.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Resources.List(ctx)
	if err != nil {
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}
	respond.OK(w, items)
}

// HandleCreate adds a resource. Mounted behind the admin gate.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := reqdecode.JSON(r, &in); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Resources.Create(ctx, models.Resource{
		Title:       in.Title,
		Type:        models.ResourceType(in.Type),
		Description: in.Description,
		URL:         in.URL,
		Tags:        in.Tags,
	})
	switch {
	case errors.Is(err, resourcestore.ErrTitleRequired),
		errors.Is(err, resourcestore.ErrBadType),
		errors.Is(err, resourcestore.ErrBadURL):
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	case err != nil:
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Info("resource added", zap.String("resource_id", id), zap.String("title", in.Title))
	respond.OK(w, respond.Created{ID: id, Message: "Resource added"})
}
