// Package memberpolicy provides the member lookups that gate operations.
//
// Authorization rules:
//   - Admin-only operations require the caller's member record to have role "admin"
//   - Member-scoped operations require the referenced member to exist
//   - Posting to the community requires an active, past-due, or pending subscription
//
// IsAdmin is a soft check: an unknown email is simply not an admin.
// EnsureMember is a hard requirement: an unknown email is ErrMemberNotFound.
package memberpolicy

import (
	"context"
	"errors"

	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMemberNotFound is returned by EnsureMember when no member has the email.
var ErrMemberNotFound = errors.New("member not found")

// Policy resolves members through the member store.
type Policy struct {
	Members *memberstore.Store
}

func New(members *memberstore.Store) *Policy {
	return &Policy{Members: members}
}

// IsAdmin reports whether email belongs to a member whose role is exactly
// "admin". A missing member is false with a nil error; the only errors
// returned come from the store itself (for example docstore.ErrUnavailable).
func (p *Policy) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	m, err := p.Members.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return m.IsAdmin(), nil
}

// EnsureMember returns the member with this email or ErrMemberNotFound.
func (p *Policy) EnsureMember(ctx context.Context, email string) (*models.Member, error) {
	m, err := p.Members.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CanPost reports whether m may post community messages.
func CanPost(m *models.Member) bool {
	return m != nil && m.SubscriptionStatus.CanPost()
}
