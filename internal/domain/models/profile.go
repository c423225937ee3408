// internal/domain/models/profile.go
package models

import (
	"time"

	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSiteName is shown in the page header until an operator changes it.
const DefaultSiteName = "Creator Funnel Calculator"

// Profile is a named set of default calculator assumptions.
//
// Two profiles ship seeded (starter, agency); operators can edit the copy
// and defaults in place. Blurb may contain HTML and is sanitized before
// rendering.
type Profile struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Slug     string `bson:"slug" json:"slug"` // URL-safe identifier (starter, agency)
	Name     string `bson:"name" json:"name"` // Display name
	Headline string `bson:"headline,omitempty" json:"headline,omitempty"`
	Blurb    string `bson:"blurb,omitempty" json:"blurb,omitempty"` // HTML, sanitized at render time

	// Defaults applied to calculator fields the visitor has not set.
	Defaults funnel.Inputs `bson:"defaults" json:"defaults"`

	// ViewToBookingBand is the suggested slider range for the
	// view-to-booking rate on this profile.
	ViewToBookingBand funnel.Band `bson:"view_to_booking_band" json:"view_to_booking_band"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
