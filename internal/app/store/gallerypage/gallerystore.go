// internal/app/store/gallerypage/gallerystore.go
package gallerystore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrImageNotFound is returned when an image position is out of range.
var ErrImageNotFound = errors.New("image not found")

// Store provides access to the gallery_pages collection.
// The collection holds a single document.
type Store struct {
	c *mongo.Collection
}

// New creates a new gallery page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery_pages")}
}

// Get returns the gallery page document, creating it with default content
// on first access.
func (s *Store) Get(ctx context.Context) (*models.GalleryPage, error) {
	var page models.GalleryPage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultGalleryPage(), &page); err != nil {
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
	return s.set(ctx, bson.M{"hero_url": url})
}

// SetHeroText replaces the hero title and subtitle.
func (s *Store) SetHeroText(ctx context.Context, title, subtitle string) error {
	return s.set(ctx, bson.M{"hero_title": title, "hero_subtitle": subtitle})
}

// SetInfo replaces the info block above the image grid.
func (s *Store) SetInfo(ctx context.Context, title, text string) error {
	return s.set(ctx, bson.M{"info.title": title, "info.text": text})
}

// SetFooter replaces the footer block.
func (s *Store) SetFooter(ctx context.Context, f models.SectionFooter) error {
	return s.set(ctx, bson.M{"footer": f})
}

// AddImage appends an image URL to the gallery grid.
func (s *Store) AddImage(ctx context.Context, url string) error {
	if _, err := s.Get(ctx); err != nil {
		return err
	}
	_, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$push": bson.M{"images": url},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// ReplaceImage swaps the gallery image at the given position. Gallery
// images have no IDs of their own, so they are addressed by position.
func (s *Store) ReplaceImage(ctx context.Context, index int, url string) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(page.Images) {
		return ErrImageNotFound
	}
	return s.set(ctx, bson.M{"images." + strconv.Itoa(index): url})
}

// RemoveImage deletes the gallery image at the given position.
func (s *Store) RemoveImage(ctx context.Context, index int) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(page.Images) {
		return ErrImageNotFound
	}
	images := append(page.Images[:index:index], page.Images[index+1:]...)
	return s.set(ctx, bson.M{"images": images})
}

// Publish stamps published_at along with updated_at.
func (s *Store) Publish(ctx context.Context) error {
	return s.set(ctx, bson.M{"published_at": time.Now().UTC()})
}
