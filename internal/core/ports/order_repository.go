package ports

import (
	"context"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
)

// OrderRepository defines persistence for restaurant orders.
type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) (string, error)
	// Update merge-sets the given fields on the order document.
	Update(ctx context.Context, id string, fields map[string]any) error
	// FindByRestaurant returns every order of the restaurant. Zero orders
	// yields domain.ErrOrderNotFound.
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error)
	// DeleteAll removes every order of the restaurant.
	DeleteAll(ctx context.Context, restaurantID string) error
}
