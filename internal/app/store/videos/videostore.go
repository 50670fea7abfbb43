package videostore

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrVimeoIDRequired = errors.New("vimeo_id is required")
)

type Store struct {
	ds *docstore.Store
}

func New(ds *docstore.Store) *Store {
	return &Store{ds: ds}
}

func (s *Store) Create(ctx context.Context, v models.Video) (string, error) {
	if strings.TrimSpace(v.Title) == "" {
		return "", ErrTitleRequired
	}
	if strings.TrimSpace(v.VimeoID) == "" {
		return "", ErrVimeoIDRequired
	}
	v.CreatedAt = docstore.Now()
	v.UpdatedAt = v.CreatedAt
	return s.ds.Create(ctx, docstore.Videos, v)
}

func (s *Store) List(ctx context.Context) ([]models.Video, error) {
	out := []models.Video{}
	if err := s.ds.Find(ctx, docstore.Videos, nil, docstore.ListOptions{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
