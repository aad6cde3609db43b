package handler

// createOrderRequest holds the required fields of a new order; any other body
// field is stored verbatim on the order document. The date keeps the legacy
// DD/MM/YYYY wire format.
type createOrderRequest struct {
	Date     string           `json:"date" validate:"required"`
	Products []map[string]any `json:"-"    validate:"required,min=1"`
}
