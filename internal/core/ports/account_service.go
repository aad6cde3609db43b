package ports

import "context"

// CreateAccountInput carries the profile for a new restaurant account.
// Extra holds caller-supplied fields stored verbatim on the document.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Extra    map[string]any
}

// AccountService orchestrates the restaurant account lifecycle across the
// identity store and the document store.
type AccountService interface {
	// Create returns the identifier shared by the account document and the
	// identity record.
	Create(ctx context.Context, input CreateAccountInput) (string, error)
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, newPassword string) error
	EditProfile(ctx context.Context, id string, fields map[string]any) error

	GetByID(ctx context.Context, id string) (map[string]any, error)
	GetAll(ctx context.Context) ([]map[string]any, error)
	GetByName(ctx context.Context, name string) ([]map[string]any, error)
}
