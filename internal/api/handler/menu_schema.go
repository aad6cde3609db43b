package handler

type createCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

// addItemRequest holds the required fields of a new menu item; any other body
// field is stored verbatim on the item document.
type addItemRequest struct {
	Category string `json:"category" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

// deleteItemRequest scopes the delete. The field is named "restaurant" here
// and "restaurantId" on edit; the original API shipped with both spellings
// and clients depend on them.
type deleteItemRequest struct {
	Restaurant string `json:"restaurant" validate:"required"`
	Category   string `json:"category"   validate:"required"`
}

type editItemScope struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Category     string `json:"category"     validate:"required"`
}
