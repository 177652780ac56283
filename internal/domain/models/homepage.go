package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselSlide is one slide in the home page carousel.
type CarouselSlide struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}

// HomeGrid is the title/subtitle header plus the image grid on the home page.
type HomeGrid struct {
	Title    string   `bson:"title" json:"title"`
	Subtitle string   `bson:"subtitle" json:"subtitle"`
	Images   []string `bson:"images" json:"images"`
}

// HomePage is the singleton document backing the public home page.
type HomePage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Carousel []CarouselSlide    `bson:"carousel" json:"carousel"`

	Info struct {
		Headline string `bson:"headline" json:"headline"`
		Text     string `bson:"text" json:"text"`
	} `bson:"info" json:"info"`

	Split struct {
		Image string `bson:"image" json:"image"`
		Title string `bson:"title" json:"title"`
		Text  string `bson:"text" json:"text"`
	} `bson:"split" json:"split"`

	Mid struct {
		Text string `bson:"text" json:"text"`
	} `bson:"mid" json:"mid"`

	Grid   HomeGrid      `bson:"grid" json:"grid"`
	Footer SectionFooter `bson:"footer" json:"footer"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SectionFooter is the footer block shared by every content area.
type SectionFooter struct {
	Title string `bson:"title" json:"title"`
	Text  string `bson:"text" json:"text"`
}
