package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryPage is the singleton document backing the public gallery page.
type GalleryPage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HeroURL      string             `bson:"hero_url" json:"hero_url"`
	HeroTitle    string             `bson:"hero_title" json:"hero_title"`
	HeroSubtitle string             `bson:"hero_subtitle" json:"hero_subtitle"`

	Info struct {
		Title string `bson:"title" json:"title"`
		Text  string `bson:"text" json:"text"`
	} `bson:"info" json:"info"`

	Images []string      `bson:"images" json:"images"`
	Footer SectionFooter `bson:"footer" json:"footer"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
}
