package domain

import "errors"

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuRoot is the per-restaurant anchor document. Categories are registered
// here so they enumerate even while empty.
type MenuRoot struct {
	RestaurantID string   `bson:"_id"`
	Categories   []string `bson:"categories"`
}

// MenuItem belongs to exactly one category of one restaurant's menu.
type MenuItem struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	RestaurantID string         `json:"restaurantId" bson:"restaurant_id"`
	Category     string         `json:"category" bson:"category"`
	Name         string         `json:"name" bson:"name"`
	Extra        map[string]any `json:"-" bson:",inline"`
}

// View flattens the item for API responses, annotated with its id.
func (i *MenuItem) View() map[string]any {
	out := make(map[string]any, len(i.Extra)+3)
	for k, v := range i.Extra {
		out[k] = v
	}
	out["id"] = i.ID
	out["category"] = i.Category
	out["name"] = i.Name
	return out
}
