// internal/app/store/animalspage/animalsstore.go
package animalsstore

import (
	"context"
	"errors"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/slugify"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAnimalNotFound is returned when a slug or ID does not match any
// animal on the page.
var ErrAnimalNotFound = errors.New("animal not found")

// Store provides access to the animals_pages collection.
// The collection holds a single document with the animals embedded.
type Store struct {
	c *mongo.Collection
}

// New creates a new animals page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("animals_pages")}
}

// Get returns the animals page document, creating it with default content
// on first access.
func (s *Store) Get(ctx context.Context) (*models.AnimalsPage, error) {
	var page models.AnimalsPage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultAnimalsPage(), &page); err != nil {
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

// SetHero replaces the hero image URL.
func (s *Store) SetHero(ctx context.Context, url string) error {
	return s.set(ctx, bson.M{"hero_url": url})
}

// SetWelcome replaces the welcome text.
func (s *Store) SetWelcome(ctx context.Context, text string) error {
	return s.set(ctx, bson.M{"welcome_text": text})
}

// SetFooter replaces the footer block.
func (s *Store) SetFooter(ctx context.Context, f models.SectionFooter) error {
	return s.set(ctx, bson.M{"footer": f})
}

// AddAnimal appends an animal to the page. The slug is derived from the
// name and made unique among the page's existing animals. An empty name
// slug falls back to the animal's ID.
func (s *Store) AddAnimal(ctx context.Context, a models.Animal) (models.Animal, error) {
	page, err := s.Get(ctx)
	if err != nil {
		return models.Animal{}, err
	}

	used := make(map[string]bool, len(page.Animals))
	for _, existing := range page.Animals {
		if existing.Slug != "" {
			used[existing.Slug] = true
		}
	}

	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	base := slugify.Slugify(a.Name)
	if base == "" {
		base = "animal-" + a.ID.Hex()
	}
	a.Slug = slugify.Unique(base, used)
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err = s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$push": bson.M{"animals": a},
		"$set":  bson.M{"updated_at": now},
	})
	if err != nil {
		return models.Animal{}, err
	}
	return a, nil
}

// SetAnimalDetails updates the text fields of the animal with the given
// ID. The slug and image are untouched; renames keep the original slug so
// bookmarked detail links stay valid.
func (s *Store) SetAnimalDetails(ctx context.Context, id primitive.ObjectID, name, price, description string, available bool) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"animals._id": id},
		bson.M{"$set": bson.M{
			"animals.$.name":        name,
			"animals.$.price":       price,
			"animals.$.description": description,
			"animals.$.available":   available,
			"animals.$.updated_at":  now,
			"updated_at":            now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAnimalNotFound
	}
	return nil
}

// SetAnimalImage replaces the card image of the animal with the given ID.
func (s *Store) SetAnimalImage(ctx context.Context, id primitive.ObjectID, image string) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"animals._id": id},
		bson.M{"$set": bson.M{
			"animals.$.image":      image,
			"animals.$.updated_at": now,
			"updated_at":           now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAnimalNotFound
	}
	return nil
}

// RemoveAnimal deletes the animal with the given ID.
func (s *Store) RemoveAnimal(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{
		"$pull": bson.M{"animals": bson.M{"_id": id}},
	})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrAnimalNotFound
	}
	return s.set(ctx, bson.M{})
}

// FindAnimal returns the animal whose slug matches key, falling back to a
// hex ObjectID match for legacy links.
func (s *Store) FindAnimal(ctx context.Context, key string) (*models.Animal, error) {
	page, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	for i := range page.Animals {
		if page.Animals[i].Slug == key {
			return &page.Animals[i], nil
		}
	}
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		for i := range page.Animals {
			if page.Animals[i].ID == id {
				return &page.Animals[i], nil
			}
		}
	}
	return nil, ErrAnimalNotFound
}

// Publish touches the document's updated_at.
func (s *Store) Publish(ctx context.Context) error {
	return s.set(ctx, bson.M{})
}
