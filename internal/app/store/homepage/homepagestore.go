// internal/app/store/homepage/homepagestore.go
package homepagestore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrItemNotFound is returned when a slide or grid image reference does not
// resolve to an existing item.
var ErrItemNotFound = errors.New("item not found")

// Store provides access to the home_pages collection.
// The collection holds a single document.
type Store struct {
	c *mongo.Collection
}

// New creates a new home page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("home_pages")}
}

// Get returns the home page document, creating it with default content on
// first access.
func (s *Store) Get(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultHomePage(), &page); err != nil {
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

// SetInfo replaces the headline/paragraph block under the carousel.
func (s *Store) SetInfo(ctx context.Context, headline, text string) error {
	return s.set(ctx, bson.M{"info.headline": headline, "info.text": text})
}

// SetSplitImage replaces the split section image.
func (s *Store) SetSplitImage(ctx context.Context, image string) error {
	return s.set(ctx, bson.M{"split.image": image})
}

// SetSplitText replaces the split section title and text.
func (s *Store) SetSplitText(ctx context.Context, title, text string) error {
	return s.set(ctx, bson.M{"split.title": title, "split.text": text})
}

// SetMid replaces the mid section text block.
func (s *Store) SetMid(ctx context.Context, text string) error {
	return s.set(ctx, bson.M{"mid.text": text})
}

// SetGridHeader replaces the grid title and subtitle.
func (s *Store) SetGridHeader(ctx context.Context, title, subtitle string) error {
	return s.set(ctx, bson.M{"grid.title": title, "grid.subtitle": subtitle})
}

// SetFooter replaces the footer block.
func (s *Store) SetFooter(ctx context.Context, f models.SectionFooter) error {
	return s.set(ctx, bson.M{"footer": f})
}

// AddSlide appends a carousel slide and returns it with its assigned ID.
func (s *Store) AddSlide(ctx context.Context, slide models.CarouselSlide) (models.CarouselSlide, error) {
	if _, err := s.Get(ctx); err != nil {
		return models.CarouselSlide{}, err
	}
	slide.ID = primitive.NewObjectID()
	_, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$push": bson.M{"carousel": slide},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return slide, err
}

// SetSlideText updates the title and description of the slide with the
// given ID. The image is untouched.
func (s *Store) SetSlideText(ctx context.Context, id primitive.ObjectID, title, description string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"carousel._id": id},
		bson.M{"$set": bson.M{
			"carousel.$.title":       title,
			"carousel.$.description": description,
			"updated_at":             time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SetSlideImage replaces the image of the slide with the given ID.
func (s *Store) SetSlideImage(ctx context.Context, id primitive.ObjectID, image string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"carousel._id": id},
		bson.M{"$set": bson.M{
			"carousel.$.image": image,
			"updated_at":       time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveSlide deletes the slide with the given ID.
func (s *Store) RemoveSlide(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$pull": bson.M{"carousel": bson.M{"_id": id}},
	})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrItemNotFound
	}
	return s.set(ctx, bson.M{})
}

// AddGridImage appends an image URL to the grid.
func (s *Store) AddGridImage(ctx context.Context, url string) error {
	if _, err := s.Get(ctx); err != nil {
		return err
	}
	_, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$push": bson.M{"grid.images": url},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// ReplaceGridImage swaps the grid image at the given position. Grid images
// have no IDs of their own, so they are addressed by position.
func (s *Store) ReplaceGridImage(ctx context.Context, index int, url string) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(page.Grid.Images) {
		return ErrItemNotFound
	}
	return s.set(ctx, bson.M{"grid.images." + strconv.Itoa(index): url})
}

// RemoveGridImage deletes the grid image at the given position.
func (s *Store) RemoveGridImage(ctx context.Context, index int) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(page.Grid.Images) {
		return ErrItemNotFound
	}
	images := append(page.Grid.Images[:index:index], page.Grid.Images[index+1:]...)
	return s.set(ctx, bson.M{"grid.images": images})
}

// Publish touches the document's updated_at so caches and clients see a
// fresh version.
func (s *Store) Publish(ctx context.Context) error {
	return s.set(ctx, bson.M{})
}
