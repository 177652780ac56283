package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeekBucket aggregates views for one (year, week) pair. Week numbers are
// 1-indexed from January 1st (day-of-year divided by seven), not ISO-8601.
type WeekBucket struct {
	Year  int   `bson:"year" json:"year"`
	Week  int   `bson:"week" json:"week"`
	Count int64 `bson:"count" json:"count"`
}

// ClickRecord counts detail-page opens for one animal, matched by exact name.
type ClickRecord struct {
	Name   string `bson:"name" json:"name"`
	Clicks int64  `bson:"clicks" json:"clicks"`
}

// AnalyticsPage is the singleton analytics document. There is no per-visitor
// deduplication: every detail-page render counts.
type AnalyticsPage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TotalViews int64              `bson:"total_views" json:"total_views"`
	Weeks      []WeekBucket       `bson:"weeks" json:"weeks"`
	Clicks     []ClickRecord      `bson:"clicks" json:"clicks"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
