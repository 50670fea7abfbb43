package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Diagnostics is the body of GET /test. Every field is a human-readable
// string; failures are reported in place rather than as an error status.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ServeDiagnostics handles GET /test. It always answers 200.
func (h *Handler) ServeDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Docs.Available() {
		resp.Database = "✅ Available"
		if h.URIConfigured {
			resp.DatabaseURL = "✅ Set"
		}
		resp.DatabaseName = h.Docs.Name()
		resp.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		names, err := h.Docs.Collections(ctx, maxCollections)
		if err != nil {
			h.Log.Warn("diagnostics: list collections failed", zap.Error(err))
			resp.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), 80))
		} else {
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}

	respond.OK(w, resp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
