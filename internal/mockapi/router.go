// Package mockapi assembles the development stub API: a fixture-serving
// stand-in for the production backend so the console can be exercised
// end-to-end without network access to the real service.
package mockapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/movaro/console/internal/core/domain"
	"github.com/movaro/console/internal/core/token"
	"github.com/movaro/console/internal/infrastructure/config"
	"github.com/movaro/console/internal/mockapi/fixtures"
	"github.com/movaro/console/internal/mockapi/handler"
	"github.com/movaro/console/internal/mockapi/middleware"
)

// NewRouter builds the Echo instance with all stub routes registered.
func NewRouter(cfg *config.StubConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("movaro_stub"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	store, err := fixtures.Seed()
	if err != nil {
		return nil, err
	}
	issuer := token.NewIssuer(cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(store, issuer, cfg.TokenTTL)
	resources := handler.NewResourceHandler(store)

	// --- Open routes ---
	e.GET("/health", handler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Authenticated routes (any role) ---
	api := e.Group("/v1", middleware.Auth(cfg.JWTSecret))
	api.GET("/dashboard", resources.Dashboard)
	api.GET("/drivers", resources.ListDrivers)
	api.GET("/drivers/:id", resources.GetDriver)
	api.GET("/vehicles", resources.ListVehicles)
	api.GET("/vehicles/:id", resources.GetVehicle)
	api.GET("/bookings", resources.ListBookings)
	api.GET("/bookings/:id", resources.GetBooking)

	// --- Admin-only routes ---
	admin := api.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/products", resources.ListProducts)
	admin.GET("/products/:id", resources.GetProduct)
	admin.POST("/products", resources.CreateProduct)
	admin.PUT("/products/:id", resources.UpdateProduct)
	admin.DELETE("/products/:id", resources.DeleteProduct)
	admin.GET("/orders", resources.ListOrders)
	admin.GET("/orders/:id", resources.GetOrder)
	admin.PATCH("/orders/:id/status", resources.UpdateOrderStatus)
	admin.GET("/service-requests", resources.ListServiceRequests)
	admin.GET("/service-requests/:id", resources.GetServiceRequest)
	admin.PATCH("/service-requests/:id/status", resources.UpdateServiceRequestStatus)

	return e, nil
}
