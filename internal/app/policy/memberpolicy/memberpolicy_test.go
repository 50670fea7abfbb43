package memberpolicy_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
)

func TestIsAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "root@x.com")
	fx.CreateMember(ctx, "Mod", "mod@x.com", models.RoleModerator, models.StatusActive)

	p := memberpolicy.New(memberstore.New(docstore.New(db)))
	tests := []struct {
		email string
		want  bool
	}{
		{"root@x.com", true},
		{"mod@x.com", false},
		{"ghost@x.com", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := p.IsAdmin(ctx, tt.email)
		if err != nil {
			t.Errorf("IsAdmin(%q) error: %v", tt.email, err)
		}
		if got != tt.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsAdmin_NoStore(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()
	p := memberpolicy.New(memberstore.New(docstore.New(nil)))

	if _, err := p.IsAdmin(ctx, "root@x.com"); !errors.Is(err, docstore.ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
	// An empty email never reaches the store.
	if ok, err := p.IsAdmin(ctx, ""); ok || err != nil {
		t.Errorf("empty email: got (%v, %v)", ok, err)
	}
}

func TestEnsureMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Ann", "ann@x.com", models.RoleMember, models.StatusPending)

	p := memberpolicy.New(memberstore.New(docstore.New(db)))

	m, err := p.EnsureMember(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("EnsureMember failed: %v", err)
	}
	if m.Name != "Ann" {
		t.Errorf("Name: got %q", m.Name)
	}
	if _, err := p.EnsureMember(ctx, "ghost@x.com"); !errors.Is(err, memberpolicy.ErrMemberNotFound) {
		t.Errorf("got %v, want ErrMemberNotFound", err)
	}
}

func TestCanPost(t *testing.T) {
	tests := []struct {
		status models.SubscriptionStatus
		want   bool
	}{
		{models.StatusActive, true},
		{models.StatusPastDue, true},
		{models.StatusPending, true},
		{models.StatusInactive, false},
		{models.StatusCanceled, false},
	}
	for _, tt := range tests {
		if got := memberpolicy.CanPost(&models.Member{SubscriptionStatus: tt.status}); got != tt.want {
			t.Errorf("CanPost(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
	if memberpolicy.CanPost(nil) {
		t.Error("CanPost(nil) = true")
	}
}
