// internal/app/store/analytics/analyticsstore.go
package analyticsstore

import (
	"context"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/app/store/storeutil"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the analytics_pages collection.
// The collection holds a single counter document.
type Store struct {
	c *mongo.Collection
}

// New creates a new analytics store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("analytics_pages")}
}

// Get returns the analytics document, creating a zeroed one on first
// access.
func (s *Store) Get(ctx context.Context) (*models.AnalyticsPage, error) {
	var page models.AnalyticsPage
	if err := storeutil.EnsureSingleton(ctx, s.c, models.DefaultAnalyticsPage(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RecordView counts one animal detail-page view at time now: the total,
// the (year, week) bucket for now, and the click record matching
// animalName (exact match, created on first sight) each go up by one.
// Analytics failures are for the caller to log and swallow; a page view
// must never fail because a counter did.
func (s *Store) RecordView(ctx context.Context, animalName string, now time.Time) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}

	page.TotalViews++

	year, week := WeekKeyOf(now)
	found := false
	for i := range page.Weeks {
		if page.Weeks[i].Year == year && page.Weeks[i].Week == week {
			page.Weeks[i].Count++
			found = true
			break
		}
	}
	if !found {
		page.Weeks = append(page.Weeks, models.WeekBucket{Year: year, Week: week, Count: 1})
	}

	found = false
	for i := range page.Clicks {
		if page.Clicks[i].Name == animalName {
			page.Clicks[i].Clicks++
			found = true
			break
		}
	}
	if !found {
		page.Clicks = append(page.Clicks, models.ClickRecord{Name: animalName, Clicks: 1})
	}

	_, err = s.c.UpdateOne(ctx, bson.M{"_id": page.ID}, bson.M{"$set": bson.M{
		"total_views": page.TotalViews,
		"weeks":       page.Weeks,
		"clicks":      page.Clicks,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}
