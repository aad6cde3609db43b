package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tfxsoftware/PickPegaAPI/internal/api/handler"
	"github.com/tfxsoftware/PickPegaAPI/internal/api/middleware"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// Services groups the use-case implementations the router wires handlers to.
type Services struct {
	Accounts ports.AccountService
	Menus    ports.MenuService
	Orders   ports.OrderService
	Auth     ports.AuthService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, documents, identityDB *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Cross-origin requests are permitted unconditionally.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("pickpega"))

	restaurantHandler := handler.NewRestaurantHandler(svc.Accounts)
	menuHandler := handler.NewMenuHandler(svc.Menus)
	orderHandler := handler.NewOrderHandler(svc.Orders)
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Accounts)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Restaurant accounts ---
	e.POST("/addNewRestaurant", restaurantHandler.Create)
	e.GET("/getRestaurantById/:id", restaurantHandler.GetByID)
	e.DELETE("/deleteRestaurant/:id", restaurantHandler.Delete)
	e.PUT("/editRestaurant/:id", restaurantHandler.Edit)
	e.PUT("/updatePassword/:id", restaurantHandler.UpdatePassword)
	e.GET("/getAllRestaurants", restaurantHandler.GetAll)
	e.GET("/getRestaurantByName/:name", restaurantHandler.GetByName)

	// --- Orders ---
	e.POST("/addNewOrder/:restaurantId", orderHandler.Create)
	e.PUT("/editOrder/:id", orderHandler.Edit)
	e.GET("/getRestaurantOrders/:restaurantId", orderHandler.List)
	e.GET("/getRestaurantOrdersByDay/:restaurantId", orderHandler.ListByDay)
	e.GET("/getRestaurantOrdersItems/:restaurantId", orderHandler.ListItems)

	// --- Menu ---
	e.POST("/addNewItem/:restaurantId", menuHandler.AddItem)
	e.DELETE("/deleteItem/:id", menuHandler.DeleteItem)
	e.PUT("/editItem/:id", menuHandler.EditItem)
	e.GET("/getRestaurantMenu/:restaurantId", menuHandler.GetMenu)
	e.POST("/createCategory/:restaurantId", menuHandler.CreateCategory)
	e.GET("/getItemByName/:restaurantId/:categoryName/:itemName", menuHandler.GetItemByName)

	// --- Auth ---
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(documents, identityDB, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
