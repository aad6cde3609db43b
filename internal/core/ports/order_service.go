package ports

import "context"

// CreateOrderInput carries a new order. Products is the product list; Extra
// fields are stored verbatim. Date uses the DD/MM/YYYY wire format.
type CreateOrderInput struct {
	RestaurantID string
	Products     []ProductInput
	Date         string
	Extra        map[string]any
}

// ProductInput is one product list entry.
type ProductInput struct {
	Name  string
	Extra map[string]any
}

// OrderService covers order creation and the restaurant-scoped projections.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (string, error)
	Edit(ctx context.Context, id string, fields map[string]any) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]map[string]any, error)
	// ListByDay keeps only orders dated today in the server's local time zone.
	ListByDay(ctx context.Context, restaurantID string) ([]map[string]any, error)
	// ListItems flattens product names across every order of the restaurant.
	ListItems(ctx context.Context, restaurantID string) ([]string, error)
}
