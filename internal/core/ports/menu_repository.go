package ports

import (
	"context"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
)

// MenuRepository defines persistence for menu roots and their items.
type MenuRepository interface {
	// RegisterCategory adds the category to the menu root's category set.
	// Adding an already-registered category is a no-op. Returns
	// domain.ErrMenuNotFound when the restaurant has no menu root.
	RegisterCategory(ctx context.Context, restaurantID, category string) error
	// Categories returns the registered category names, or
	// domain.ErrMenuNotFound when the root is absent.
	Categories(ctx context.Context, restaurantID string) ([]string, error)

	InsertItem(ctx context.Context, item *domain.MenuItem) (string, error)
	UpdateItem(ctx context.Context, id, restaurantID, category string, fields map[string]any) error
	DeleteItem(ctx context.Context, id, restaurantID, category string) error

	ItemsByCategory(ctx context.Context, restaurantID, category string) ([]*domain.MenuItem, error)
	// ItemsByName matches the name field exactly within one category. Zero
	// matches yields domain.ErrItemNotFound.
	ItemsByName(ctx context.Context, restaurantID, category, name string) ([]*domain.MenuItem, error)

	// DeleteAll removes the menu root and every item of the restaurant.
	// Used when the account is deleted.
	DeleteAll(ctx context.Context, restaurantID string) error
}
