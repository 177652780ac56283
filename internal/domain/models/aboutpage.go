package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutPage is the singleton document backing the public about page.
type AboutPage struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Hero struct {
		Image    string `bson:"image" json:"image"`
		Title    string `bson:"title" json:"title"`
		Subtitle string `bson:"subtitle" json:"subtitle"`
	} `bson:"hero" json:"hero"`

	Content struct {
		Text string `bson:"text" json:"text"`
	} `bson:"content" json:"content"`

	Footer SectionFooter `bson:"footer" json:"footer"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
