package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// OrderHandler handles HTTP requests for restaurant orders.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /addNewOrder/:restaurantId.
//
// @Summary      Create an order for a restaurant
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        restaurantId  path      string              true  "Account id"
// @Param        body          body      createOrderRequest  true  "Order; extra fields are stored verbatim"
// @Success      200           {object}  envelope
// @Failure      422           {object}  errorEnvelope
// @Failure      500           {object}  errorEnvelope
// @Router       /addNewOrder/{restaurantId} [post]
func (h *OrderHandler) Create(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	req := createOrderRequest{
		Date:     popString(body, "date"),
		Products: popProducts(body),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if _, err := time.Parse(domain.OrderDateLayout, req.Date); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "date must be DD/MM/YYYY")
	}

	products := make([]ports.ProductInput, len(req.Products))
	for i, p := range req.Products {
		name, _ := p["name"].(string)
		delete(p, "name")
		products[i] = ports.ProductInput{Name: name, Extra: p}
	}

	id, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		RestaurantID: c.Param("restaurantId"),
		Products:     products,
		Date:         req.Date,
		Extra:        body,
	})
	if err != nil {
		return err
	}
	return respondOK(c, "order created", createdResponse{ID: id})
}

// Edit handles PUT /editOrder/:id.
func (h *OrderHandler) Edit(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return err
	}
	if err := h.orders.Edit(c.Request().Context(), c.Param("id"), body); err != nil {
		return err
	}
	return respondOK(c, "order updated", nil)
}

// List handles GET /getRestaurantOrders/:restaurantId.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListByRestaurant(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return err
	}
	return respondOK(c, "", orders)
}

// ListByDay handles GET /getRestaurantOrdersByDay/:restaurantId. Only orders
// dated today in the server's local time zone come back.
func (h *OrderHandler) ListByDay(c echo.Context) error {
	orders, err := h.orders.ListByDay(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return err
	}
	return respondOK(c, "", orders)
}

// ListItems handles GET /getRestaurantOrdersItems/:restaurantId.
func (h *OrderHandler) ListItems(c echo.Context) error {
	names, err := h.orders.ListItems(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return err
	}
	return respondOK(c, "", names)
}

// popProducts extracts the products array from the open body, keeping each
// entry's unknown fields.
func popProducts(body map[string]any) []map[string]any {
	raw, ok := body["products"].([]any)
	if !ok {
		return nil
	}
	delete(body, "products")
	products := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			products = append(products, m)
		}
	}
	return products
}
