package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Animal is one animal card embedded in the animals page document.
// Slug is derived from Name at creation time and is unique among the
// siblings on the same page, not globally.
type Animal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Image       string             `bson:"image" json:"image"`
	Price       string             `bson:"price" json:"price"`
	Available   bool               `bson:"available" json:"available"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// AnimalsPage is the singleton document backing the public animals page.
type AnimalsPage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HeroURL     string             `bson:"hero_url" json:"hero_url"`
	WelcomeText string             `bson:"welcome_text" json:"welcome_text"`
	Animals     []Animal           `bson:"animals" json:"animals"`
	Footer      SectionFooter      `bson:"footer" json:"footer"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
