// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// body is the JSON error shape: {"detail": "..."}.
type body struct {
	Detail string `json:"detail"`
}

// Write renders err as a JSON error response.
func Write(w http.ResponseWriter, err error) {
	e := As(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Kind.Status())
	_ = json.NewEncoder(w).Encode(body{Detail: e.Msg})
}

// ErrorLogger writes JSON errors and logs the server-side ones.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// Write logs 5xx failures with the request context, then renders err.
// Client errors are returned without logging.
func (l *ErrorLogger) Write(w http.ResponseWriter, r *http.Request, err error) {
	e := As(err)
	if e.Kind.Status() >= http.StatusInternalServerError && l != nil && l.Log != nil {
		l.Log.Error(e.Msg,
			zap.Error(e.Err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	}
	Write(w, e)
}
