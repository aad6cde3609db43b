package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// RestaurantHandler handles HTTP requests for restaurant accounts.
type RestaurantHandler struct {
	accounts ports.AccountService
}

func NewRestaurantHandler(accounts ports.AccountService) *RestaurantHandler {
	return &RestaurantHandler{accounts: accounts}
}

// Create handles POST /addNewRestaurant.
//
// @Summary      Register a new restaurant account
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        body  body      createRestaurantRequest  true  "Profile; extra fields are stored verbatim"
// @Success      200   {object}  envelope
// @Failure      422   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /addNewRestaurant [post]
func (h *RestaurantHandler) Create(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	req := createRestaurantRequest{
		Name:     popString(body, "name"),
		Email:    popString(body, "email"),
		Password: popString(body, "password"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.accounts.Create(c.Request().Context(), ports.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Extra:    body,
	})
	if err != nil {
		return err
	}
	return respondOK(c, "restaurant and identity record created", createdResponse{ID: id})
}

// GetByID handles GET /getRestaurantById/:id.
//
// @Summary      Get a restaurant profile by id
// @Tags         restaurants
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorEnvelope
// @Router       /getRestaurantById/{id} [get]
func (h *RestaurantHandler) GetByID(c echo.Context) error {
	profile, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, "", profile)
}

// Delete handles DELETE /deleteRestaurant/:id.
func (h *RestaurantHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondOK(c, "restaurant deleted", nil)
}

// Edit handles PUT /editRestaurant/:id.
func (h *RestaurantHandler) Edit(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	if err := h.accounts.EditProfile(c.Request().Context(), c.Param("id"), body); err != nil {
		return err
	}
	return respondOK(c, "restaurant updated", nil)
}

// UpdatePassword handles PUT /updatePassword/:id.
//
// @Summary      Change the account credential in both stores
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Account id"
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  envelope
// @Failure      404   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /updatePassword/{id} [put]
func (h *RestaurantHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.accounts.UpdatePassword(c.Request().Context(), c.Param("id"), req.NewPassword); err != nil {
		return err
	}
	return respondOK(c, "password updated", nil)
}

// GetAll handles GET /getAllRestaurants.
func (h *RestaurantHandler) GetAll(c echo.Context) error {
	profiles, err := h.accounts.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, "", profiles)
}

// GetByName handles GET /getRestaurantByName/:name. The match is exact and
// case-sensitive; zero matches is a 404, not an empty success.
func (h *RestaurantHandler) GetByName(c echo.Context) error {
	profiles, err := h.accounts.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return respondOK(c, "", profiles)
}
