package ports

import "context"

// AuthService authenticates restaurant accounts against the identity store.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// shared account id.
	Login(ctx context.Context, email, password string) (token string, accountID string, err error)
}
