// internal/app/store/adminusers/fetcher.go
package adminuserstore

import (
	"context"

	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/timeouts"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Fetcher implements auth.AdminFetcher so LoadSessionAdmin sees fresh
// account data on each request. A deleted account's sessions stop
// working the moment the document is gone.
type Fetcher struct {
	admins *mongo.Collection
	logger *zap.Logger
}

// NewFetcher creates an AdminFetcher that queries the given database.
func NewFetcher(db *mongo.Database, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		admins: db.Collection("admin_users"),
		logger: logger,
	}
}

// FetchAdmin retrieves an admin account by ID and returns nil if the
// account is not found, not yet verified, or if any error occurs.
func (f *Fetcher) FetchAdmin(ctx context.Context, adminID string) *auth.SessionAdmin {
	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u models.AdminUser
	proj := options.FindOne().SetProjection(bson.M{
		"_id":            1,
		"first_name":     1,
		"last_name":      1,
		"email":          1,
		"email_verified": 1,
	})

	if err := f.admins.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u); err != nil {
		return nil
	}

	if !u.EmailVerified {
		return nil
	}

	return &auth.SessionAdmin{
		ID:    u.ID.Hex(),
		Name:  u.FullName(),
		Email: u.Email,
	}
}
