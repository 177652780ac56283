package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailMessage is one contact-form submission. Records are append-only and
// are only removed by explicit admin action.
type EmailMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
