// internal/app/store/profiles/store.go
package profilestore

import (
	"context"
	"time"

	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the profiles collection. Profiles hold the
// default inputs and copy shown for each audience preset.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// Get loads a profile by slug. Returns mongo.ErrNoDocuments if not found.
func (s *Store) Get(ctx context.Context, slug string) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all profiles ordered by slug so the page renders them in a
// stable order.
func (s *Store) List(ctx context.Context) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var profiles []models.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert saves a profile keyed by slug. Works whether the profile exists
// or not, which is what seeding needs.
func (s *Store) Upsert(ctx context.Context, p models.Profile) error {
	now := time.Now().UTC()
	p.UpdatedAt = &now

	filter := bson.M{"slug": p.Slug}
	update := bson.M{
		"$set": bson.M{
			"slug":                 p.Slug,
			"name":                 p.Name,
			"headline":             p.Headline,
			"blurb":                p.Blurb,
			"defaults":             p.Defaults,
			"view_to_booking_band": p.ViewToBookingBand,
			"updated_at":           p.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Exists reports whether any profiles have been seeded.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
