package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactDetails holds the reach-us block on the contact page.
type ContactDetails struct {
	Address  string `bson:"address" json:"address"`
	Phone    string `bson:"phone" json:"phone"`
	Email    string `bson:"email" json:"email"`
	Hours    string `bson:"hours" json:"hours"`
	MapEmbed string `bson:"map_embed" json:"map_embed"`
}

// ContactPage is the singleton document backing the public contact page.
type ContactPage struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Info struct {
		Title string `bson:"title" json:"title"`
		Text  string `bson:"text" json:"text"`
	} `bson:"info" json:"info"`

	Details ContactDetails `bson:"details" json:"details"`
	Footer  SectionFooter  `bson:"footer" json:"footer"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
