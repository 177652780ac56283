// internal/app/store/messages/messagestore.go
package messagestore

import (
	"context"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the email_messages collection. Contact form
// submissions are append-only; only explicit admin actions remove them.
type Store struct {
	c *mongo.Collection
}

// New creates a new message store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("email_messages")}
}

// Create records one contact form submission and returns it.
func (s *Store) Create(ctx context.Context, fullName, email, message string) (*models.EmailMessage, error) {
	m := models.EmailMessage{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns one page of stored messages, newest first. Pages are
// 1-based; out-of-range pages come back empty.
func (s *Store) List(ctx context.Context, limit, page int64) ([]models.EmailMessage, error) {
	opts := storeutil.Paginate(limit, page).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var msgs []models.EmailMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Delete removes one message by ID. Returns mongo.ErrNoDocuments if no
// message matched.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of stored messages.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// DeleteAll removes every stored message and returns how many were
// deleted.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
