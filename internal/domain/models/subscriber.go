// internal/domain/models/subscriber.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a stored email opt-in from the calculator page.
//
// EmailCI is the case-folded form of Email and carries the unique index;
// two opt-ins that differ only by case are the same subscriber.
type Subscriber struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Email   string `bson:"email" json:"email"`
	EmailCI string `bson:"email_ci" json:"-"`

	// Source identifies where the opt-in came from (e.g. "calculator").
	Source string `bson:"source,omitempty" json:"source,omitempty"`

	// Payload is the opt-in context forwarded to the webhook, typically the
	// visitor's calculator inputs at the time of signup. Arbitrary JSON.
	Payload any `bson:"payload,omitempty" json:"payload,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
