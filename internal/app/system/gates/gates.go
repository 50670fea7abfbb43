// Package gates provides authorization gates for HTTP handlers.
//
// A gate either lets the request through or writes the JSON error itself and
// reports false, so handlers can simply return:
//
//	if !gates.RequireAdmin(w, r, h.Policy, h.ErrLog) {
//	    return
//	}
//
// AdminOnly wraps the same check as chi middleware for route groups where
// every handler is admin-only.
package gates

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
)

// AdminChecker is the single capability check behind every admin gate.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin admits the request only when the caller identity resolves to an
// admin member. A missing identity or a non-admin answers 403 "Admin only"
// without touching anything else; a store failure answers 503.
func RequireAdmin(w http.ResponseWriter, r *http.Request, checker AdminChecker, errLog *uierrors.ErrorLogger) bool {
	email, ok := authz.CallerEmail(r)
	if !ok {
		errLog.Write(w, r, uierrors.Forbidden("Admin only"))
		return false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := checker.IsAdmin(ctx, email)
	if err != nil {
		errLog.Write(w, r, uierrors.FromStore(err))
		return false
	}
	if !admin {
		errLog.Write(w, r, uierrors.Forbidden("Admin only"))
		return false
	}
	return true
}

// AdminOnly is RequireAdmin as middleware.
func AdminOnly(checker AdminChecker, errLog *uierrors.ErrorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RequireAdmin(w, r, checker, errLog) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
