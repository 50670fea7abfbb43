package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMember inserts a member with the given role and subscription status.
func (f *Fixtures) CreateMember(ctx context.Context, name, email string, role models.Role, status models.SubscriptionStatus) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:                 primitive.NewObjectID(),
		Name:               name,
		Email:              email,
		Role:               role,
		SubscriptionStatus: status,
		Plan:               models.DefaultPlan,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := f.db.Collection(docstore.Members).InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreateAdmin inserts an admin member.
func (f *Fixtures) CreateAdmin(ctx context.Context, email string) models.Member {
	f.t.Helper()
	return f.CreateMember(ctx, "Test Admin", email, models.RoleAdmin, models.StatusActive)
}

// CreateMessage inserts a message. A nil createdAt stores no timestamp at all.
func (f *Fixtures) CreateMessage(ctx context.Context, email, content, channel string, createdAt *time.Time) primitive.ObjectID {
	f.t.Helper()

	doc := bson.M{"member_email": email, "content": content, "channel": channel}
	if createdAt != nil {
		doc["created_at"] = *createdAt
	}
	res, err := f.db.Collection(docstore.Messages).InsertOne(ctx, doc)
	if err != nil {
		f.t.Fatalf("failed to create test message: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID)
}

// GetMember reads a member back by email.
func (f *Fixtures) GetMember(ctx context.Context, email string) models.Member {
	f.t.Helper()

	var m models.Member
	if err := f.db.Collection(docstore.Members).FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		f.t.Fatalf("failed to load member %q: %v", email, err)
	}
	return m
}

// InvoiceRequests reads back the invoice requests filed for email.
func (f *Fixtures) InvoiceRequests(ctx context.Context, email string) []models.InvoiceRequest {
	f.t.Helper()

	cur, err := f.db.Collection(docstore.InvoiceRequests).Find(ctx, bson.M{"member_email": email})
	if err != nil {
		f.t.Fatalf("find invoice requests for %q: %v", email, err)
	}
	out := []models.InvoiceRequest{}
	if err := cur.All(ctx, &out); err != nil {
		f.t.Fatalf("decode invoice requests for %q: %v", email, err)
	}
	return out
}

// Count returns the number of documents in collection matching filter.
func (f *Fixtures) Count(ctx context.Context, collection string, filter bson.M) int64 {
	f.t.Helper()

	if filter == nil {
		filter = bson.M{}
	}
	n, err := f.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		f.t.Fatalf("count %s: %v", collection, err)
	}
	return n
}
