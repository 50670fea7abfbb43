package memberstore

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")

type Store struct {
	ds *docstore.Store
}

func New(ds *docstore.Store) *Store {
	return &Store{ds: ds}
}

// GetByEmail looks up a member by exact email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	c, err := s.ds.Collection(docstore.Members)
	if err != nil {
		return nil, err
	}
	var m models.Member
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, docstore.Unavailable(err)
	}
	return &m, nil
}

// Exists reports whether a member with this exact email is registered.
func (s *Store) Exists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Register inserts a new member with the default role, status, and plan.
// The duplicate check is a lookup followed by the insert; the unique index on
// email turns a lost race into ErrDuplicateEmail as well.
func (s *Store) Register(ctx context.Context, name, email, plan string) (string, error) {
	exists, err := s.Exists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateEmail
	}

	if strings.TrimSpace(plan) == "" {
		plan = models.DefaultPlan
	}
	now := docstore.Now()
	m := models.Member{
		Name:               name,
		Email:              email,
		Role:               models.RoleMember,
		SubscriptionStatus: models.StatusInactive,
		Provider:           nil,
		Plan:               plan,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	id, err := s.ds.Create(ctx, docstore.Members, m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return id, nil
}

// List returns every member in store order.
func (s *Store) List(ctx context.Context) ([]models.Member, error) {
	members := []models.Member{}
	if err := s.ds.Find(ctx, docstore.Members, nil, docstore.ListOptions{}, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Update holds the member fields an admin may change. Nil fields are left as is.
type Update struct {
	Role               *models.Role
	SubscriptionStatus *models.SubscriptionStatus
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.Role == nil && u.SubscriptionStatus == nil
}

// Apply sets only the fields present in upd on the member with this email.
func (s *Store) Apply(ctx context.Context, email string, upd Update) error {
	set := bson.M{}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.SubscriptionStatus != nil {
		set["subscription_status"] = *upd.SubscriptionStatus
	}
	if len(set) == 0 {
		return nil
	}
	return s.set(ctx, email, set)
}

// SetSubscription records the outcome of a subscribe request.
func (s *Store) SetSubscription(ctx context.Context, email string, status models.SubscriptionStatus, provider models.Provider) error {
	return s.set(ctx, email, bson.M{
		"subscription_status": status,
		"provider":            provider,
	})
}

// EnsureAdmin promotes the member with this email to admin, creating the
// member first if needed. It reports whether anything changed.
func (s *Store) EnsureAdmin(ctx context.Context, name, email string) (bool, error) {
	m, err := s.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if m.IsAdmin() {
			return false, nil
		}
		role := models.RoleAdmin
		return true, s.Apply(ctx, email, Update{Role: &role})
	case errors.Is(err, mongo.ErrNoDocuments):
		if _, err := s.Register(ctx, name, email, ""); err != nil && !errors.Is(err, ErrDuplicateEmail) {
			return false, err
		}
		role := models.RoleAdmin
		return true, s.Apply(ctx, email, Update{Role: &role})
	default:
		return false, err
	}
}

func (s *Store) set(ctx context.Context, email string, set bson.M) error {
	c, err := s.ds.Collection(docstore.Members)
	if err != nil {
		return err
	}
	set["updated_at"] = docstore.Now()
	if _, err := c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set}); err != nil {
		return docstore.Unavailable(err)
	}
	return nil
}
