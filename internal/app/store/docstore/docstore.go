// Package docstore is the generic document store adapter. It wraps the
// optional MongoDB database handle and exposes create/list by collection name.
//
// A Store built from a nil database is valid: every operation then returns
// ErrUnavailable, which lets the service boot and answer diagnostics without
// a configured store.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. They match the lowercase entity names used by the
// existing data set.
const (
	Members         = "member"
	InvoiceRequests = "invoicerequest"
	Messages        = "message"
	Resources       = "resource"
	Videos          = "video"
)

var known = map[string]bool{
	Members:         true,
	InvoiceRequests: true,
	Messages:        true,
	Resources:       true,
	Videos:          true,
}

var (
	// ErrUnavailable is returned when no database is configured or the
	// database could not serve the request.
	ErrUnavailable = errors.New("document store unavailable")
	// ErrUnknownCollection is returned for a collection outside the known set.
	ErrUnknownCollection = errors.New("unknown collection")
)

// ListOptions narrows a List or Find call. Zero values mean "no limit" and
// "store order".
type ListOptions struct {
	Limit int64
	Sort  bson.D
}

type Store struct {
	db *mongo.Database
}

// New wraps db. db may be nil.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether a database handle is configured.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name returns the database name, or "" when unavailable.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// Collection returns the named collection for lookups and updates that the
// generic operations do not cover.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if !known[name] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return s.db.Collection(name), nil
}

// Create inserts doc into collection and returns the assigned id as a hex
// string. doc is marshaled as-is; the caller stamps timestamps.
func (s *Store) Create(ctx context.Context, collection string, doc any) (string, error) {
	c, err := s.Collection(collection)
	if err != nil {
		return "", err
	}
	res, err := c.InsertOne(ctx, doc)
	if err != nil {
		return "", Unavailable(err)
	}
	return IDString(res.InsertedID), nil
}

// List returns raw documents with "_id" rendered as a string.
func (s *Store) List(ctx context.Context, collection string, filter bson.M, lo ListOptions) ([]bson.M, error) {
	var docs []bson.M
	if err := s.Find(ctx, collection, filter, lo, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		if id, ok := d["_id"]; ok {
			d["_id"] = IDString(id)
		}
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// Find decodes matching documents into out, which must be a pointer to a slice.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, lo ListOptions, out any) error {
	c, err := s.Collection(collection)
	if err != nil {
		return err
	}
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if lo.Limit > 0 {
		opts.SetLimit(lo.Limit)
	}
	if len(lo.Sort) > 0 {
		opts.SetSort(lo.Sort)
	}
	cur, err := c.Find(ctx, filter, opts)
	if err != nil {
		return Unavailable(err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return Unavailable(err)
	}
	return nil
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// Collections returns up to max collection names.
func (s *Store) Collections(ctx context.Context, max int) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Now is the timestamp source for created_at/updated_at.
func Now() time.Time {
	return time.Now().UTC()
}

// IDString renders a store-assigned id as a string.
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Unavailable wraps driver failures that mean the store could not be reached
// with ErrUnavailable. Other errors (duplicate keys, validation) pass through
// untouched so callers can still inspect them.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
