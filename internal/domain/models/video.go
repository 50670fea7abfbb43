package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is a course video hosted on Vimeo.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	VimeoID     string             `bson:"vimeo_id" json:"vimeo_id"`
	Description *string            `bson:"description" json:"description"`
	Category    *string            `bson:"category" json:"category"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
