package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	deps := DBDeps{MongoDatabase: db}
	if err := ensureAdmin(ctx, deps, "owner@test.com", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	m := fx.GetMember(ctx, "owner@test.com")
	if !m.IsAdmin() {
		t.Errorf("expected role 'admin', got %q", m.Role)
	}
	if m.Name != "owner" {
		t.Errorf("expected name derived from email, got %q", m.Name)
	}
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Existing", "existing@test.com", models.RoleMember, models.StatusActive)

	deps := DBDeps{MongoDatabase: db}
	if err := ensureAdmin(ctx, deps, "existing@test.com", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}
	// Running twice is a no-op.
	if err := ensureAdmin(ctx, deps, "existing@test.com", testLogger()); err != nil {
		t.Fatalf("second ensureAdmin failed: %v", err)
	}

	m := fx.GetMember(ctx, "existing@test.com")
	if !m.IsAdmin() {
		t.Errorf("expected role 'admin', got %q", m.Role)
	}
	if m.Name != "Existing" || m.SubscriptionStatus != models.StatusActive {
		t.Errorf("other fields changed: %+v", m)
	}
	if n := fx.Count(ctx, docstore.Members, bson.M{"email": "existing@test.com"}); n != 1 {
		t.Errorf("expected 1 member, got %d", n)
	}
}

func TestStartup_NoDatabaseSkipsAdmin(t *testing.T) {
	appCfg := AppConfig{AdminEmail: "owner@test.com"}
	if err := Startup(context.Background(), nil, appCfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup without database failed: %v", err)
	}
}

func TestEnsureSchema_NoDatabase(t *testing.T) {
	if err := EnsureSchema(context.Background(), nil, AppConfig{}, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("EnsureSchema without database failed: %v", err)
	}
}

func TestConnectDB_BlankURI(t *testing.T) {
	deps, err := ConnectDB(context.Background(), nil, AppConfig{}, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.MongoClient != nil || deps.MongoDatabase != nil {
		t.Errorf("expected empty deps, got %+v", deps)
	}
	if deps.Docs().Available() {
		t.Error("expected docs to be unavailable")
	}
	if deps.WriteLimiter != nil {
		t.Error("write throttling should be off by default")
	}
}

func TestConnectDB_WriteLimiterClosedOnShutdown(t *testing.T) {
	cfg := AppConfig{WriteRateLimit: 2, WriteRateWindow: time.Minute}
	deps, err := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.WriteLimiter == nil {
		t.Fatal("expected a write limiter when write_rate_limit > 0")
	}
	if err := Shutdown(context.Background(), nil, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	// Closing again is harmless.
	deps.WriteLimiter.Close()
}

func TestValidateConfig(t *testing.T) {
	valid := AppConfig{MongoDatabase: "coursehub", MessagesDefaultLimit: 50, MongoMaxPoolSize: 100}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"no uri", func(c *AppConfig) {}, false},
		{"good uri", func(c *AppConfig) { c.MongoURI = "mongodb://localhost:27017" }, false},
		{"bad uri", func(c *AppConfig) { c.MongoURI = "localhost:27017" }, true},
		{"uri without database", func(c *AppConfig) {
			c.MongoURI = "mongodb://localhost:27017"
			c.MongoDatabase = ""
		}, true},
		{"zero limit", func(c *AppConfig) { c.MessagesDefaultLimit = 0 }, true},
		{"pool sizes inverted", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
