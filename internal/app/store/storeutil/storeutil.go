// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSingleton loads the lone document in c, inserting defaults first if
// the collection is empty, and decodes the result into out. The insert and
// the read are one FindOneAndUpdate so concurrent first reads cannot create
// two documents.
func EnsureSingleton(ctx context.Context, c *mongo.Collection, defaults, out any) error {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	return c.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$setOnInsert": defaults}, opts).Decode(out)
}

// Paginate returns *options.FindOptions with skip/limit given a 1-based page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}
