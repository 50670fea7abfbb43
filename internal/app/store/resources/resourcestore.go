// internal/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrBadType       = errors.New(`type must be "prompt" or "tool"`)
	ErrBadURL        = errors.New("url must be a valid http(s) URL")
)

type Store struct {
	ds *docstore.Store
}

func New(ds *docstore.Store) *Store {
	return &Store{ds: ds}
}

// Create inserts a new Resource, stamping timestamps. It validates Title and
// Type, and URL when one is given. Tags keep their order; nil becomes empty.
func (s *Store) Create(ctx context.Context, r models.Resource) (string, error) {
	if strings.TrimSpace(r.Title) == "" {
		return "", ErrTitleRequired
	}
	if _, ok := models.ParseResourceType(string(r.Type)); !ok {
		return "", ErrBadType
	}
	if r.URL != nil && strings.TrimSpace(*r.URL) != "" && !urlutil.IsValidAbsHTTPURL(*r.URL) {
		return "", ErrBadURL
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	r.CreatedAt = docstore.Now()
	r.UpdatedAt = r.CreatedAt
	return s.ds.Create(ctx, docstore.Resources, r)
}

// List returns the whole library in store order.
func (s *Store) List(ctx context.Context) ([]models.Resource, error) {
	out := []models.Resource{}
	if err := s.ds.Find(ctx, docstore.Resources, nil, docstore.ListOptions{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
