// internal/app/store/subscribers/store.go
package subscriberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadySubscribed is returned when a folded email already exists.
// Callers treat it as success from the visitor's point of view.
var ErrAlreadySubscribed = errors.New("email already subscribed")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subscribers")}
}

// Insert records an opt-in. The email is stored as entered plus a folded
// copy (email_ci) that carries the unique index, so "Jane@X.com" and
// "jane@x.com" count as the same subscriber.
func (s *Store) Insert(ctx context.Context, email, source string, payload any) (*models.Subscriber, error) {
	now := time.Now().UTC()
	sub := models.Subscriber{
		ID:        primitive.NewObjectID(),
		Email:     email,
		EmailCI:   text.Fold(email),
		Source:    source,
		Payload:   payload,
		CreatedAt: now,
	}

	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return &sub, nil
}

// GetByEmail looks up a subscriber case-insensitively.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns subscribers newest-first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []models.Subscriber
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Count returns the total number of subscribers.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// isDuplicateKeyError checks if the error is a duplicate key error.
func isDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}
