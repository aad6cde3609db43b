package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderDateLayout is the wire format of an order's date field.
const OrderDateLayout = "02/01/2006"

// Product is a single entry of an order's product list.
type Product struct {
	Name  string         `json:"name" bson:"name"`
	Extra map[string]any `json:"-" bson:",inline"`
}

// Order belongs to one restaurant. The date is stored as a DD/MM/YYYY string.
type Order struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	RestaurantID string         `json:"restaurantId" bson:"restaurant_id"`
	Products     []Product      `json:"products" bson:"products"`
	Date         string         `json:"date" bson:"date"`
	Extra        map[string]any `json:"-" bson:",inline"`
}

// OnDay reports whether the order's stored date falls on the same calendar
// day as t, in t's location. Unparseable dates never match.
func (o *Order) OnDay(t time.Time) bool {
	d, err := time.ParseInLocation(OrderDateLayout, o.Date, t.Location())
	if err != nil {
		return false
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// View flattens a product for API responses.
func (p *Product) View() map[string]any {
	out := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["name"] = p.Name
	return out
}

// View flattens the order for API responses.
func (o *Order) View() map[string]any {
	products := make([]map[string]any, len(o.Products))
	for i := range o.Products {
		products[i] = o.Products[i].View()
	}
	out := make(map[string]any, len(o.Extra)+4)
	for k, v := range o.Extra {
		out[k] = v
	}
	out["id"] = o.ID
	out["restaurantId"] = o.RestaurantID
	out["products"] = products
	out["date"] = o.Date
	return out
}
