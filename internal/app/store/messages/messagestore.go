package messagestore

import (
	"context"
	"sort"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultLimit caps a channel listing when the caller gives no limit.
const DefaultLimit = 50

type Store struct {
	ds *docstore.Store
}

func New(ds *docstore.Store) *Store {
	return &Store{ds: ds}
}

// Post stores a message. An empty channel falls back to DefaultChannel.
func (s *Store) Post(ctx context.Context, memberEmail, content, channel string) (string, error) {
	if channel == "" {
		channel = models.DefaultChannel
	}
	now := docstore.Now()
	return s.ds.Create(ctx, docstore.Messages, models.Message{
		MemberEmail: memberEmail,
		Content:     content,
		Channel:     channel,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	})
}

// ListChannel returns at most limit messages from channel, newest first.
// The limit applies after the store-side sort, so the result is the most
// recent messages rather than an arbitrary slice. Mongo sorts a missing
// created_at lowest; SortNewestFirst keeps undated messages last.
func (s *Store) ListChannel(ctx context.Context, channel string, limit int64) ([]models.Message, error) {
	if channel == "" {
		channel = models.DefaultChannel
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := []models.Message{}
	err := s.ds.Find(ctx, docstore.Messages,
		bson.M{"channel": channel},
		docstore.ListOptions{Limit: limit, Sort: bson.D{{Key: "created_at", Value: -1}}},
		&out)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(out)
	return out, nil
}

// SortNewestFirst orders msgs by CreatedAt descending; undated messages sort
// as oldest and keep their relative order.
func SortNewestFirst(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		a, b := msgs[i].CreatedAt, msgs[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
