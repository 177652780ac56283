// internal/app/store/contactpage/contactstore.go
package contactstore

import (
	"context"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the contact_pages collection.
// The collection holds a single document.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_pages")}
}

// Get returns the contact page document, creating it with default content
// on first access.
func (s *Store) Get(ctx context.Context) (*models.ContactPage, error) {
	var page models.ContactPage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultContactPage(), &page); err != nil {
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

// SetInfo replaces the intro block.
func (s *Store) SetInfo(ctx context.Context, title, text string) error {
	return s.set(ctx, bson.M{"info.title": title, "info.text": text})
}

// SetDetails replaces the reach-us block as a whole.
func (s *Store) SetDetails(ctx context.Context, d models.ContactDetails) error {
	return s.set(ctx, bson.M{"details": d})
}

// SetFooter replaces the footer block.
func (s *Store) SetFooter(ctx context.Context, f models.SectionFooter) error {
	return s.set(ctx, bson.M{"footer": f})
}

// Publish touches the document's updated_at.
func (s *Store) Publish(ctx context.Context) error {
	return s.set(ctx, bson.M{})
}
