// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	profilestore "github.com/z-bubblegum/nigelleadmagnet/internal/app/store/profiles"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedProfiles(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedProfiles creates the built-in audience profiles if they don't exist.
// Existing profiles are left alone so edits made in the database survive
// restarts.
func seedProfiles(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := profilestore.New(db)

	defaultProfiles := []models.Profile{
		{
			Slug:     funnel.ProfileStarter,
			Name:     "Solo Creator",
			Headline: "How many videos until your content pays the bills?",
			Blurb: `You make videos and sell a service or offer on the side. ` +
				`Plug in your real numbers and see how long the road to your revenue goal actually is.`,
			Defaults:          funnel.StarterDefaults,
			ViewToBookingBand: funnel.ViewToBookingBands[funnel.ProfileStarter],
		},
		{
			Slug:     funnel.ProfileAgency,
			Name:     "Agency / High Ticket",
			Headline: "Turn your content pipeline into a client pipeline.",
			Blurb: `Fewer views, higher prices. See how a high-ticket offer changes the math ` +
				`on every video you publish.`,
			Defaults:          funnel.AgencyDefaults,
			ViewToBookingBand: funnel.ViewToBookingBands[funnel.ProfileAgency],
		},
	}

	for _, p := range defaultProfiles {
		n, err := db.Collection("profiles").CountDocuments(ctx, bson.M{"slug": p.Slug})
		if err != nil {
			logger.Error("failed to check if profile exists",
				zap.String("slug", p.Slug),
				zap.Error(err))
			return err
		}
		if n == 0 {
			if err := store.Upsert(ctx, p); err != nil {
				logger.Error("failed to seed profile",
					zap.String("slug", p.Slug),
					zap.Error(err))
				return err
			}
			logger.Info("seeded default profile", zap.String("slug", p.Slug))
		}
	}

	return nil
}
