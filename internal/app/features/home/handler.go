package home

import (
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"go.uber.org/zap"
)

// RootMessage is the liveness string returned by GET /.
const RootMessage = "AI Sales Training Backend Running"

// Handler serves the liveness root.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – liveness                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, respond.Message{Message: RootMessage})
}
