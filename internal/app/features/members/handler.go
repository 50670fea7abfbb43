// internal/app/features/members/handler.go
package members

import (
	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Members.
// It holds the stores and logger provided by WAFFLE DBDeps / Startup.
type Handler struct {
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
	Members *memberstore.Store
	Policy  *memberpolicy.Policy
	// Plan is the plan label given to new registrations.
	Plan string
}

func NewHandler(docs *docstore.Store, plan string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	members := memberstore.New(docs)
	return &Handler{
		Log:     logger,
		ErrLog:  errLog,
		Members: members,
		Policy:  memberpolicy.New(members),
		Plan:    plan,
	}
}
