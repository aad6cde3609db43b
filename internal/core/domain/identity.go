package domain

import (
	"errors"
	"time"
)

var (
	ErrIdentityNotFound   = errors.New("identity record not found")
	ErrIdentityExists     = errors.New("identity record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Identity is the credential record held by the identity store. Its ID equals
// the restaurant document id by construction.
type Identity struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	DisplayName  string    `bson:"display_name"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
