package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movaro/console/internal/core/domain"
	"github.com/movaro/console/internal/mockapi/fixtures"
	"github.com/movaro/console/internal/mockapi/metrics"
)

// ResourceHandler serves the fixture-backed resource endpoints.
type ResourceHandler struct {
	store *fixtures.Store
}

func NewResourceHandler(store *fixtures.Store) *ResourceHandler {
	return &ResourceHandler{store: store}
}

// Dashboard handles GET /v1/dashboard.
func (h *ResourceHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Dashboard())
}

// --- Transportation ---

// ListDrivers handles GET /v1/drivers.
func (h *ResourceHandler) ListDrivers(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Drivers(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetDriver handles GET /v1/drivers/:id.
func (h *ResourceHandler) GetDriver(c echo.Context) error {
	d, err := h.store.Driver(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// ListVehicles handles GET /v1/vehicles.
func (h *ResourceHandler) ListVehicles(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Vehicles(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetVehicle handles GET /v1/vehicles/:id.
func (h *ResourceHandler) GetVehicle(c echo.Context) error {
	v, err := h.store.Vehicle(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// ListBookings handles GET /v1/bookings.
func (h *ResourceHandler) ListBookings(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Bookings(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetBooking handles GET /v1/bookings/:id.
func (h *ResourceHandler) GetBooking(c echo.Context) error {
	b, err := h.store.Booking(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// --- Catalog ---

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Unit        string  `json:"unit"        validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

// ListProducts handles GET /v1/products.
func (h *ResourceHandler) ListProducts(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Products(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetProduct handles GET /v1/products/:id.
func (h *ResourceHandler) GetProduct(c echo.Context) error {
	p, err := h.store.Product(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /v1/products.
func (h *ResourceHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created := h.store.CreateProduct(req.toDomain())
	metrics.CatalogWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles PUT /v1/products/:id.
func (h *ResourceHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.store.UpdateProduct(c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles DELETE /v1/products/:id.
func (h *ResourceHandler) DeleteProduct(c echo.Context) error {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- Orders ---

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// ListOrders handles GET /v1/orders.
func (h *ResourceHandler) ListOrders(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Orders(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetOrder handles GET /v1/orders/:id.
func (h *ResourceHandler) GetOrder(c echo.Context) error {
	o, err := h.store.Order(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// UpdateOrderStatus handles PATCH /v1/orders/:id/status.
func (h *ResourceHandler) UpdateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.store.UpdateOrderStatus(c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		metrics.StatusUpdatesTotal.WithLabelValues("order", updateResult(err)).Inc()
		return err
	}
	metrics.StatusUpdatesTotal.WithLabelValues("order", "applied").Inc()
	return c.JSON(http.StatusOK, updated)
}

// --- Service requests ---

type requestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received in_progress completed rejected"`
	Notes  string `json:"notes"`
}

// ListServiceRequests handles GET /v1/service-requests.
func (h *ResourceHandler) ListServiceRequests(c echo.Context) error {
	q := listQuery(c)
	items, total := h.store.Requests(q)
	return c.JSON(http.StatusOK, newPage(items, total, q))
}

// GetServiceRequest handles GET /v1/service-requests/:id.
func (h *ResourceHandler) GetServiceRequest(c echo.Context) error {
	r, err := h.store.Request(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// UpdateServiceRequestStatus handles PATCH /v1/service-requests/:id/status.
func (h *ResourceHandler) UpdateServiceRequestStatus(c echo.Context) error {
	var req requestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.store.UpdateRequestStatus(c.Param("id"), domain.ServiceRequestStatus(req.Status), req.Notes)
	if err != nil {
		metrics.StatusUpdatesTotal.WithLabelValues("service_request", updateResult(err)).Inc()
		return err
	}
	metrics.StatusUpdatesTotal.WithLabelValues("service_request", "applied").Inc()
	return c.JSON(http.StatusOK, updated)
}

func updateResult(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
