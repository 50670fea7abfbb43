// internal/domain/models/invoicerequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceRequest is created when a member subscribes with the invoice provider.
// MemberEmail references Member.Email but is not enforced by the store.
type InvoiceRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MemberEmail string             `bson:"member_email" json:"member_email"`
	Company     *string            `bson:"company" json:"company"`
	Notes       *string            `bson:"notes" json:"notes"`
	Status      InvoiceStatus      `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
