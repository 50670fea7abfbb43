package members_test

import (
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/features/members"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *members.Handler {
	logger := zap.NewNop()
	return members.NewHandler(docstore.New(db), models.DefaultPlan, uierrors.NewErrorLogger(logger), logger)
}

func serve(h *members.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	members.Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestRegister_CreatesInactiveMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	rec := serve(newHandler(db), testutil.NewJSONRequest("POST", "/register", `{"name":"Ann","email":"ann@x.com"}`))
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	rec.DecodeJSON(t, &body)
	if body.Message != "Registered" || body.ID == "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	m := fx.GetMember(ctx, "ann@x.com")
	if m.Role != models.RoleMember {
		t.Errorf("role: got %q, want member", m.Role)
	}
	if m.SubscriptionStatus != models.StatusInactive {
		t.Errorf("status: got %q, want inactive", m.SubscriptionStatus)
	}
	if m.Plan != models.DefaultPlan {
		t.Errorf("plan: got %q, want %q", m.Plan, models.DefaultPlan)
	}
	if m.Provider != nil {
		t.Errorf("provider: got %v, want nil", *m.Provider)
	}
	if m.ID.Hex() != body.ID {
		t.Errorf("id: got %s, want %s", body.ID, m.ID.Hex())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	h := newHandler(db)

	serve(h, testutil.NewJSONRequest("POST", "/register", `{"name":"Ann","email":"ann@x.com"}`)).
		AssertStatus(t, http.StatusOK)

	rec := serve(h, testutil.NewJSONRequest("POST", "/register", `{"name":"Ann Again","email":"ann@x.com"}`))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Email already registered")

	if n := fx.Count(ctx, docstore.Members, bson.M{"email": "ann@x.com"}); n != 1 {
		t.Errorf("members with email: got %d, want 1", n)
	}
}

func TestRegister_EmailMatchIsExact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(db)

	serve(h, testutil.NewJSONRequest("POST", "/register", `{"name":"Ann","email":"ann@x.com"}`)).
		AssertStatus(t, http.StatusOK)
	serve(h, testutil.NewJSONRequest("POST", "/register", `{"name":"Ann","email":"ANN@x.com"}`)).
		AssertStatus(t, http.StatusOK)
}

func TestRegister_MissingFields(t *testing.T) {
	h := newHandler(nil)

	for _, body := range []string{``, `{}`, `{"name":"Ann"}`, `{"email":"ann@x.com"}`, `{"name":`} {
		rec := serve(h, testutil.NewJSONRequest("POST", "/register", body))
		rec.AssertStatus(t, http.StatusBadRequest)
	}
}

func TestRegister_NoStore(t *testing.T) {
	rec := serve(newHandler(nil), testutil.NewJSONRequest("POST", "/register", `{"name":"Ann","email":"ann@x.com"}`))
	rec.AssertStatus(t, http.StatusServiceUnavailable)
	rec.AssertContains(t, "Database not available")
}

func TestList_RequiresAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Bob", "bob@x.com", models.RoleMember, models.StatusActive)
	h := newHandler(db)

	rec := serve(h, testutil.NewRequest("GET", "/"))
	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "Admin only")

	rec = serve(h, testutil.AsAdmin(testutil.NewRequest("GET", "/"), "bob@x.com"))
	rec.AssertStatus(t, http.StatusForbidden)

	rec = serve(h, testutil.AsAdmin(testutil.NewRequest("GET", "/"), "nobody@x.com"))
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestList_AsAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	admin := fx.CreateAdmin(ctx, "root@x.com")
	fx.CreateMember(ctx, "Bob", "bob@x.com", models.RoleMember, models.StatusInactive)

	rec := serve(newHandler(db), testutil.AsAdmin(testutil.NewRequest("GET", "/"), "root@x.com"))
	rec.AssertStatus(t, http.StatusOK)

	var got []map[string]any
	rec.DecodeJSON(t, &got)
	if len(got) != 2 {
		t.Fatalf("members: got %d, want 2", len(got))
	}
	ids := map[string]bool{}
	for _, m := range got {
		id, ok := m["_id"].(string)
		if !ok {
			t.Fatalf("_id is not a string: %#v", m["_id"])
		}
		ids[id] = true
	}
	if !ids[admin.ID.Hex()] {
		t.Errorf("admin id %s missing from %v", admin.ID.Hex(), ids)
	}
}

func TestList_NoStore(t *testing.T) {
	rec := serve(newHandler(nil), testutil.AsAdmin(testutil.NewRequest("GET", "/"), "root@x.com"))
	rec.AssertStatus(t, http.StatusServiceUnavailable)
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "root@x.com")
	fx.CreateMember(ctx, "Bob", "bob@x.com", models.RoleMember, models.StatusInactive)
	h := newHandler(db)

	req := testutil.AsAdmin(testutil.NewRequest("PATCH", "/update?email=bob@x.com&subscription_status=active"), "root@x.com")
	rec := serve(h, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Updated")

	m := fx.GetMember(ctx, "bob@x.com")
	if m.SubscriptionStatus != models.StatusActive {
		t.Errorf("status: got %q, want active", m.SubscriptionStatus)
	}
	if m.Role != models.RoleMember {
		t.Errorf("role changed unexpectedly: %q", m.Role)
	}
}

func TestUpdate_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "root@x.com")
	fx.CreateMember(ctx, "Bob", "bob@x.com", models.RoleMember, models.StatusInactive)
	h := newHandler(db)

	tests := []struct {
		name   string
		target string
		admin  string
		status int
		detail string
	}{
		{"not admin", "/update?email=bob@x.com&role=admin", "bob@x.com", http.StatusForbidden, "Admin only"},
		{"unknown member", "/update?email=ghost@x.com&role=admin", "root@x.com", http.StatusNotFound, "Member not found"},
		{"no updates", "/update?email=bob@x.com", "root@x.com", http.StatusBadRequest, "No updates provided"},
		{"bad role", "/update?email=bob@x.com&role=owner", "root@x.com", http.StatusBadRequest, "Invalid role"},
		{"bad status", "/update?email=bob@x.com&subscription_status=gold", "root@x.com", http.StatusBadRequest, "Invalid subscription_status"},
		{"missing email", "/update?role=admin", "root@x.com", http.StatusBadRequest, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, testutil.AsAdmin(testutil.NewRequest("PATCH", tt.target), tt.admin))
			rec.AssertStatus(t, tt.status)
			rec.AssertContains(t, tt.detail)
		})
	}

	m := fx.GetMember(ctx, "bob@x.com")
	if m.Role != models.RoleMember || m.SubscriptionStatus != models.StatusInactive {
		t.Errorf("member changed by rejected updates: %+v", m)
	}
}
