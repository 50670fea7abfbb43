// internal/domain/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultChannel is used when a message is posted or listed without a channel.
const DefaultChannel = "general"

type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MemberEmail string             `bson:"member_email" json:"member_email"`
	Content     string             `bson:"content" json:"content"`
	Channel     string             `bson:"channel" json:"channel"`

	// CreatedAt is a pointer so documents written without a timestamp
	// decode as nil and sort after dated ones.
	CreatedAt *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
