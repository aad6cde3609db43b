package ports

import "context"

// AddItemInput carries a new menu item. Extra fields are stored verbatim.
type AddItemInput struct {
	RestaurantID string
	Category     string
	Name         string
	Extra        map[string]any
}

// Menu maps category name to the items under it. A registered category with
// no items maps to an empty slice, not to an absent key.
type Menu struct {
	Categories map[string][]map[string]any `json:"categories"`
}

// MenuService covers menu roots, categories and items.
type MenuService interface {
	CreateCategory(ctx context.Context, restaurantID, category string) error
	AddItem(ctx context.Context, input AddItemInput) (string, error)
	EditItem(ctx context.Context, id, restaurantID, category string, fields map[string]any) error
	DeleteItem(ctx context.Context, id, restaurantID, category string) error
	GetMenu(ctx context.Context, restaurantID string) (*Menu, error)
	GetItemByName(ctx context.Context, restaurantID, category, name string) ([]map[string]any, error)
}
