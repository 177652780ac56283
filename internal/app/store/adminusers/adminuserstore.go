// internal/app/store/adminusers/adminuserstore.go
package adminuserstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Token lifetimes. Verification links last a day; reset links are shorter
// because they grant a password change on their own.
const (
	VerifyTokenTTL = 24 * time.Hour
	ResetTokenTTL  = time.Hour
)

var (
	// ErrDuplicateEmail is returned when registering with an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("an admin with this email already exists")
	// ErrTokenInvalid is returned when a verification or reset token is
	// unknown, already redeemed, or expired.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Store provides access to the admin_users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new admin user store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_users")}
}

// Create inserts a new admin account. The caller supplies the bcrypt hash
// and a normalized (lowercase, trimmed) email. A verification token is
// issued on the new account and returned so the caller can mail the link.
// Returns ErrDuplicateEmail if the email is taken.
func (s *Store) Create(ctx context.Context, u models.AdminUser) (models.AdminUser, string, error) {
	token, err := generateToken()
	if err != nil {
		return models.AdminUser{}, "", err
	}

	now := time.Now().UTC()
	expires := now.Add(VerifyTokenTTL)
	u.ID = primitive.NewObjectID()
	u.EmailVerified = false
	u.VerifyToken = token
	u.VerifyTokenExpiresAt = &expires
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.AdminUser{}, "", ErrDuplicateEmail
		}
		return models.AdminUser{}, "", err
	}
	return u, token, nil
}

// GetByEmail looks up an account by normalized email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID looks up an account by ID.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RedeemVerifyToken marks the matching unverified account as verified and
// clears the token so the link is single-use. Returns ErrTokenInvalid when
// the token is unknown, expired, or already used.
func (s *Store) RedeemVerifyToken(ctx context.Context, token string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	filter := bson.M{
		"verify_token":            token,
		"verify_token_expires_at": bson.M{"$gt": time.Now().UTC()},
		"email_verified":          false,
	}
	update := bson.M{
		"$set":   bson.M{"email_verified": true, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"verify_token": "", "verify_token_expires_at": ""},
	}

	var u models.AdminUser
	err := s.c.FindOneAndUpdate(ctx, filter, update).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}
	u.EmailVerified = true
	return &u, nil
}

// IssueResetToken stores a fresh password reset token on the account with
// the given normalized email and returns it. A second request replaces any
// outstanding token. Returns mongo.ErrNoDocuments if the email is unknown.
func (s *Store) IssueResetToken(ctx context.Context, email string) (*models.AdminUser, string, error) {
	token, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	expires := time.Now().UTC().Add(ResetTokenTTL)
	update := bson.M{"$set": bson.M{
		"reset_token":            token,
		"reset_token_expires_at": expires,
		"updated_at":             time.Now().UTC(),
	}}

	var u models.AdminUser
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"email": email}, update).Decode(&u); err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// GetByResetToken returns the account holding an unexpired reset token.
// Returns ErrTokenInvalid when the token is unknown or expired.
func (s *Store) GetByResetToken(ctx context.Context, token string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	filter := bson.M{
		"reset_token":            token,
		"reset_token_expires_at": bson.M{"$gt": time.Now().UTC()},
	}
	var u models.AdminUser
	err := s.c.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RedeemResetToken replaces the account's password hash and clears the
// token so the link is single-use. Returns ErrTokenInvalid when the token
// is unknown or expired.
func (s *Store) RedeemResetToken(ctx context.Context, token, passwordHash string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	filter := bson.M{
		"reset_token":            token,
		"reset_token_expires_at": bson.M{"$gt": time.Now().UTC()},
	}
	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"reset_token": "", "reset_token_expires_at": ""},
	}

	var u models.AdminUser
	err := s.c.FindOneAndUpdate(ctx, filter, update).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes an account and returns how many documents were deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of admin accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// generateToken returns 32 random bytes hex encoded, matching the format
// used in verification and reset links.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
