// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ResetTokenCleanupJob creates a job that clears expired password reset
// tokens from admin accounts. The account itself is untouched; only the
// spent token fields are removed.
func ResetTokenCleanupJob(db *mongo.Database, logger *zap.Logger) Job {
	return Job{
		Name:     "reset-token-cleanup",
		Interval: 1 * time.Hour,
		Run: func(ctx context.Context) error {
			coll := db.Collection("admin_users")
			result, err := coll.UpdateMany(ctx,
				bson.M{"reset_token_expires_at": bson.M{"$lt": time.Now().UTC()}},
				bson.M{"$unset": bson.M{
					"reset_token":            "",
					"reset_token_expires_at": "",
				}},
			)
			if err != nil {
				return err
			}
			if result.ModifiedCount > 0 {
				logger.Info("cleared expired password reset tokens",
					zap.Int64("count", result.ModifiedCount))
			}
			return nil
		},
	}
}

// UnverifiedAccountCleanupJob creates a job that removes admin accounts
// that never verified their email. Accounts are kept for a grace period
// past token expiry so a slow verifier is not deleted out from under a
// still-valid link; after that the email address frees up for a fresh
// registration.
func UnverifiedAccountCleanupJob(db *mongo.Database, logger *zap.Logger, grace time.Duration) Job {
	return Job{
		Name:     "unverified-account-cleanup",
		Interval: 6 * time.Hour,
		Run: func(ctx context.Context) error {
			coll := db.Collection("admin_users")
			cutoff := time.Now().UTC().Add(-grace)
			result, err := coll.DeleteMany(ctx, bson.M{
				"email_verified":          false,
				"verify_token_expires_at": bson.M{"$lt": cutoff},
			})
			if err != nil {
				return err
			}
			if result.DeletedCount > 0 {
				logger.Info("removed unverified admin accounts",
					zap.Int64("deleted", result.DeletedCount))
			}
			return nil
		},
	}
}

// MessageRetentionJob creates a job that prunes contact form messages
// older than the retention window. Zero or negative retention disables
// pruning; the job is simply never registered.
func MessageRetentionJob(db *mongo.Database, logger *zap.Logger, retention time.Duration) Job {
	return Job{
		Name:     "message-retention",
		Interval: 24 * time.Hour,
		Run: func(ctx context.Context) error {
			coll := db.Collection("email_messages")
			cutoff := time.Now().UTC().Add(-retention)
			result, err := coll.DeleteMany(ctx, bson.M{
				"created_at": bson.M{"$lt": cutoff},
			})
			if err != nil {
				return err
			}
			if result.DeletedCount > 0 {
				logger.Info("pruned old contact messages",
					zap.Int64("deleted", result.DeletedCount))
			}
			return nil
		},
	}
}
