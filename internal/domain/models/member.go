// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPlan is the plan label given to every newly registered member.
const DefaultPlan = "$49/mo"

// Member is a registered course member. Email is the lookup key for every
// member-scoped operation, matched exactly as stored.
type Member struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Role               Role               `bson:"role" json:"role"`
	SubscriptionStatus SubscriptionStatus `bson:"subscription_status" json:"subscription_status"`
	Provider           *Provider          `bson:"provider" json:"provider"` // nil until the member subscribes
	Plan               string             `bson:"plan" json:"plan"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsAdmin reports whether the member holds the admin role.
func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
