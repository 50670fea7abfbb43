package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/features/health"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(docstore.New(db), true, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var response struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Database != "connected" {
		t.Errorf("database: got %q, want %q", response.Database, "connected")
	}
}

func TestServe_NoStoreConfigured(t *testing.T) {
	handler := health.NewHandler(docstore.New(nil), false, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestServeDiagnostics_NoStoreConfigured(t *testing.T) {
	handler := health.NewHandler(docstore.New(nil), false, zap.NewNop())

	rec := httptest.NewRecorder()
	health.DiagnosticsRoutes(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got health.Diagnostics
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.ConnectionStatus != "Not Connected" {
		t.Errorf("connection_status: got %q", got.ConnectionStatus)
	}
	if got.DatabaseURL != "❌ Not Set" {
		t.Errorf("database_url: got %q", got.DatabaseURL)
	}
	if got.Collections == nil || len(got.Collections) != 0 {
		t.Errorf("collections: got %v, want empty list", got.Collections)
	}
}

func TestServeDiagnostics_Connected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := db.Collection(docstore.Videos).InsertOne(ctx, map[string]string{"title": "Intro"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := health.NewHandler(docstore.New(db), true, zap.NewNop())
	rec := httptest.NewRecorder()
	handler.ServeDiagnostics(rec, httptest.NewRequest("GET", "/test", nil))

	var got health.Diagnostics
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.ConnectionStatus != "Connected" {
		t.Errorf("connection_status: got %q", got.ConnectionStatus)
	}
	if got.Database != "✅ Connected & Working" {
		t.Errorf("database: got %q", got.Database)
	}
	if got.DatabaseName != db.Name() {
		t.Errorf("database_name: got %q, want %q", got.DatabaseName, db.Name())
	}
	if len(got.Collections) == 0 || len(got.Collections) > 10 {
		t.Errorf("collections: got %v", got.Collections)
	}
}
