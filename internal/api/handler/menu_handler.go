package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// MenuHandler handles HTTP requests for menu categories and items.
type MenuHandler struct {
	menus ports.MenuService
}

func NewMenuHandler(menus ports.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// CreateCategory handles POST /createCategory/:restaurantId.
//
// @Summary      Register an empty menu category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        restaurantId  path      string                 true  "Account id"
// @Param        body          body      createCategoryRequest  true  "Category name"
// @Success      200           {object}  envelope
// @Failure      404           {object}  errorEnvelope
// @Router       /createCategory/{restaurantId} [post]
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.menus.CreateCategory(c.Request().Context(), c.Param("restaurantId"), req.CategoryName); err != nil {
		return err
	}
	return respondOK(c, "category created", nil)
}

// AddItem handles POST /addNewItem/:restaurantId.
func (h *MenuHandler) AddItem(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	req := addItemRequest{
		Category: popString(body, "category"),
		Name:     popString(body, "name"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.menus.AddItem(c.Request().Context(), ports.AddItemInput{
		RestaurantID: c.Param("restaurantId"),
		Category:     req.Category,
		Name:         req.Name,
		Extra:        body,
	})
	if err != nil {
		return err
	}
	return respondOK(c, "item created", createdResponse{ID: id})
}

// EditItem handles PUT /editItem/:id.
func (h *MenuHandler) EditItem(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	scope := editItemScope{
		RestaurantID: popString(body, "restaurantId"),
		Category:     popString(body, "category"),
	}
	if err := c.Validate(&scope); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.menus.EditItem(c.Request().Context(), c.Param("id"), scope.RestaurantID, scope.Category, body); err != nil {
		return err
	}
	return respondOK(c, "item updated", nil)
}

// DeleteItem handles DELETE /deleteItem/:id.
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	var req deleteItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.menus.DeleteItem(c.Request().Context(), c.Param("id"), req.Restaurant, req.Category); err != nil {
		return err
	}
	return respondOK(c, "item deleted", nil)
}

// GetMenu handles GET /getRestaurantMenu/:restaurantId.
//
// @Summary      Get the full menu grouped by category
// @Tags         menu
// @Produce      json
// @Param        restaurantId  path      string  true  "Account id"
// @Success      200           {object}  envelope
// @Failure      404           {object}  errorEnvelope
// @Router       /getRestaurantMenu/{restaurantId} [get]
func (h *MenuHandler) GetMenu(c echo.Context) error {
	menu, err := h.menus.GetMenu(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return err
	}
	return respondOK(c, "", menu)
}

// GetItemByName handles GET /getItemByName/:restaurantId/:categoryName/:itemName.
func (h *MenuHandler) GetItemByName(c echo.Context) error {
	items, err := h.menus.GetItemByName(
		c.Request().Context(),
		c.Param("restaurantId"),
		c.Param("categoryName"),
		c.Param("itemName"),
	)
	if err != nil {
		return err
	}
	return respondOK(c, "", items)
}
