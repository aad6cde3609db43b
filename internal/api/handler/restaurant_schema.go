package handler

// createRestaurantRequest holds the required fields of a new account; any
// other body field is stored verbatim as an extension field.
type createRestaurantRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type createdResponse struct {
	ID string `json:"id"`
}
