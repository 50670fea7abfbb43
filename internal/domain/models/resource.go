package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a prompt or tool in the learning library.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Type        ResourceType       `bson:"type" json:"type"` // prompt | tool
	Description *string            `bson:"description" json:"description"`
	URL         *string            `bson:"url" json:"url"`
	Tags        []string           `bson:"tags" json:"tags"` // order preserved, never nil once stored

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
