package models

import (
	"time"
)

// User is the canonical user record. ID is the store-generated
// surrogate key (insertion order); UserID is the client-supplied
// opaque identifier used in the API.
type User struct {
	ID         int64     `json:"-" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	GivenName  string    `json:"given_name" db:"given_name"`
	FamilyName string    `json:"family_name" db:"family_name"`
	Email      string    `json:"email" db:"email"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
