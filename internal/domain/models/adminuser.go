package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser is an administrator account. Email is stored lowercase and is
// unique. The password is stored only as a bcrypt hash. Verification and
// reset tokens are single-use: both are cleared the moment they are
// redeemed.
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	Phone     string             `bson:"phone" json:"phone"`
	Email     string             `bson:"email" json:"email"`

	PasswordHash string `bson:"password_hash" json:"-"`

	EmailVerified        bool       `bson:"email_verified" json:"email_verified"`
	VerifyToken          string     `bson:"verify_token,omitempty" json:"-"`
	VerifyTokenExpiresAt *time.Time `bson:"verify_token_expires_at,omitempty" json:"-"`
	ResetToken           string     `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiresAt  *time.Time `bson:"reset_token_expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns the display name for the account.
func (u *AdminUser) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
