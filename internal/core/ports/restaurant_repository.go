package ports

import (
	"context"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
)

// RestaurantRepository defines persistence operations for restaurant account
// documents.
type RestaurantRepository interface {
	// AllocateID returns a fresh identifier from the document store's id
	// space. The id is later reused as the identity-store user id.
	AllocateID() string

	// Create inserts the account document and an empty menu root keyed by the
	// same id in one atomic batch: both writes commit or neither does.
	Create(ctx context.Context, r *domain.Restaurant) error

	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindAll(ctx context.Context) ([]*domain.Restaurant, error)
	// FindByName matches the name field exactly (case-sensitive). Zero
	// matches yields domain.ErrRestaurantNotFound.
	FindByName(ctx context.Context, name string) ([]*domain.Restaurant, error)

	// Update merge-sets the given fields on the account document.
	Update(ctx context.Context, id string, fields map[string]any) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error

	// Delete removes the account document. Deleting a nonexistent document is
	// not an error.
	Delete(ctx context.Context, id string) error
}
