package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// maxCollections bounds the collection names reported by diagnostics.
const maxCollections = 10

// Handler holds dependencies needed for health checks.
type Handler struct {
	Docs *docstore.Store
	// URIConfigured reports whether a store connection string was configured.
	URIConfigured bool
	Log           *zap.Logger
}

// NewHandler constructs a health Handler. docs may wrap a nil database.
func NewHandler(docs *docstore.Store, uriConfigured bool, logger *zap.Logger) *Handler {
	return &Handler{
		Docs:          docs,
		URIConfigured: uriConfigured,
		Log:           logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// With no store configured or on ping failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Docs.Ping(ctx); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		respond.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
			Error:    err.Error(),
		})
		return
	}

	respond.OK(w, healthResponse{Status: "ok", Database: "connected"})
}
