// internal/app/store/aboutpage/aboutstore.go
package aboutstore

import (
	"context"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the about_pages collection.
// The collection holds a single document.
type Store struct {
	c *mongo.Collection
}

// New creates a new about page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about_pages")}
}

// Get returns the about page document, creating it with default content on
// first access.
func (s *Store) Get(ctx context.Context) (*models.AboutPage, error) {
	var page models.AboutPage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultAboutPage(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// set applies targeted field updates to the singleton, creating it first
// so an edit can never land on a missing document.
func (s *Store) set(ctx context.Context, fields bson.M) error {
	if _, err := s.Get(ctx); err != nil {
		return err
	}
	fields["updated_at"] = time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{"$set": fields})
	return err
}

// SetHeroImage replaces the hero image URL.
func (s *Store) SetHeroImage(ctx context.Context, url string) error {
	return s.set(ctx, bson.M{"hero.image": url})
}

// SetHeroText replaces the hero title and subtitle.
func (s *Store) SetHeroText(ctx context.Context, title, subtitle string) error {
	return s.set(ctx, bson.M{"hero.title": title, "hero.subtitle": subtitle})
}

// SetContent replaces the main content text.
func (s *Store) SetContent(ctx context.Context, text string) error {
	return s.set(ctx, bson.M{"content.text": text})
}

// SetFooter replaces the footer block.
func (s *Store) SetFooter(ctx context.Context, f models.SectionFooter) error {
	return s.set(ctx, bson.M{"footer": f})
}

// Publish touches the document's updated_at.
func (s *Store) Publish(ctx context.Context) error {
	return s.set(ctx, bson.M{})
}
