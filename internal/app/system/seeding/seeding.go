// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	aboutstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/aboutpage"
	analyticsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/analytics"
	animalsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/animalspage"
	contactstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/contactpage"
	gallerystore "github.com/hoffmansreptiles/reptilecms/internal/app/store/gallerypage"
	homepagestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/homepage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll makes sure every singleton page document exists so the public
// site never renders from a missing document. The stores create their
// defaults on first read, so seeding is just reading each one once.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	seeds := []struct {
		name string
		get  func(context.Context) error
	}{
		{"home", func(ctx context.Context) error {
			_, err := homepagestore.New(db).Get(ctx)
			return err
		}},
		{"animals", func(ctx context.Context) error {
			_, err := animalsstore.New(db).Get(ctx)
			return err
		}},
		{"gallery", func(ctx context.Context) error {
			_, err := gallerystore.New(db).Get(ctx)
			return err
		}},
		{"about", func(ctx context.Context) error {
			_, err := aboutstore.New(db).Get(ctx)
			return err
		}},
		{"contact", func(ctx context.Context) error {
			_, err := contactstore.New(db).Get(ctx)
			return err
		}},
		{"analytics", func(ctx context.Context) error {
			_, err := analyticsstore.New(db).Get(ctx)
			return err
		}},
	}

	for _, s := range seeds {
		if err := s.get(ctx); err != nil {
			logger.Error("failed to seed page document",
				zap.String("page", s.name),
				zap.Error(err))
			return err
		}
	}
	logger.Info("page documents seeded")
	return nil
}
