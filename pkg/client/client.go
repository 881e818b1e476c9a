// Package client is the console's HTTP call layer: one thin wrapper per
// backend REST endpoint, each attaching the current bearer token at call
// time. When no token is present the request is still issued
// unauthenticated — rejecting it is the backend's job. No retrying,
// batching, or caching happens here; errors propagate to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/movaro/console/internal/core/domain"
)

// TokenSource yields the bearer token to attach to outgoing requests, or
// "" when the session is anonymous. The client never mutates session state
// through it.
type TokenSource interface {
	Token() string
}

// Client is the Movaro backend API client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	validate   *validator.Validate
}

// New creates an API client. A timeout of 0 defaults to 30s.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// --- Auth ---

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; storing it is the session manager's responsibility.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := loginRequest{Email: email, Password: password}
	if err := c.checkPayload(req); err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	var resp loginResponse
	if err := c.post(ctx, "/v1/auth/login", req, &resp); err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	return resp.Token, nil
}

// --- Dashboard ---

// Dashboard returns the read-only aggregate stats for the landing view.
func (c *Client) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	var s domain.DashboardSummary
	if err := c.get(ctx, "/v1/dashboard", &s); err != nil {
		return nil, fmt.Errorf("client.Dashboard: %w", err)
	}
	return &s, nil
}

// --- Transportation ---

// ListDrivers fetches a page of drivers.
func (c *Client) ListDrivers(ctx context.Context, opts ListOptions) (*Page[domain.Driver], error) {
	var page Page[domain.Driver]
	if err := c.get(ctx, "/v1/drivers"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListDrivers: %w", err)
	}
	return &page, nil
}

// GetDriver fetches a single driver by ID.
func (c *Client) GetDriver(ctx context.Context, id string) (*domain.Driver, error) {
	var d domain.Driver
	if err := c.get(ctx, "/v1/drivers/"+url.PathEscape(id), &d); err != nil {
		return nil, fmt.Errorf("client.GetDriver: %w", err)
	}
	return &d, nil
}

// ListVehicles fetches a page of fleet vehicles.
func (c *Client) ListVehicles(ctx context.Context, opts ListOptions) (*Page[domain.Vehicle], error) {
	var page Page[domain.Vehicle]
	if err := c.get(ctx, "/v1/vehicles"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListVehicles: %w", err)
	}
	return &page, nil
}

// GetVehicle fetches a single vehicle by ID.
func (c *Client) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := c.get(ctx, "/v1/vehicles/"+url.PathEscape(id), &v); err != nil {
		return nil, fmt.Errorf("client.GetVehicle: %w", err)
	}
	return &v, nil
}

// ListBookings fetches a page of transport bookings.
func (c *Client) ListBookings(ctx context.Context, opts ListOptions) (*Page[domain.Booking], error) {
	var page Page[domain.Booking]
	if err := c.get(ctx, "/v1/bookings"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListBookings: %w", err)
	}
	return &page, nil
}

// GetBooking fetches a single booking by ID.
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.get(ctx, "/v1/bookings/"+url.PathEscape(id), &b); err != nil {
		return nil, fmt.Errorf("client.GetBooking: %w", err)
	}
	return &b, nil
}

// --- Catalog ---

// ListProducts fetches a page of catalog products.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) (*Page[domain.Product], error) {
	var page Page[domain.Product]
	if err := c.get(ctx, "/v1/products"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListProducts: %w", err)
	}
	return &page, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/v1/products/"+url.PathEscape(id), &p); err != nil {
		return nil, fmt.Errorf("client.GetProduct: %w", err)
	}
	return &p, nil
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := c.checkPayload(input); err != nil {
		return nil, fmt.Errorf("client.CreateProduct: %w", err)
	}
	var p domain.Product
	if err := c.post(ctx, "/v1/products", input, &p); err != nil {
		return nil, fmt.Errorf("client.CreateProduct: %w", err)
	}
	return &p, nil
}

// UpdateProduct replaces a product's details.
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if err := c.checkPayload(input); err != nil {
		return nil, fmt.Errorf("client.UpdateProduct: %w", err)
	}
	var p domain.Product
	if err := c.doRequest(ctx, http.MethodPut, "/v1/products/"+url.PathEscape(id), input, &p); err != nil {
		return nil, fmt.Errorf("client.UpdateProduct: %w", err)
	}
	return &p, nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/v1/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteProduct: %w", err)
	}
	return nil
}

// --- Orders ---

// ListOrders fetches a page of orders.
func (c *Client) ListOrders(ctx context.Context, opts ListOptions) (*Page[domain.Order], error) {
	var page Page[domain.Order]
	if err := c.get(ctx, "/v1/orders"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListOrders: %w", err)
	}
	return &page, nil
}

// GetOrder fetches one order.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := c.get(ctx, "/v1/orders/"+url.PathEscape(id), &o); err != nil {
		return nil, fmt.Errorf("client.GetOrder: %w", err)
	}
	return &o, nil
}

// UpdateOrderStatus moves an order to a new status. The transition is
// checked against the order's current state before any request is issued;
// the backend re-checks it, both ends share the same state machine.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !domain.ValidOrderStatus(string(next)) {
		return nil, fmt.Errorf("client.UpdateOrderStatus: unknown status %q", status)
	}
	current, err := c.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateOrderStatus: %w", err)
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("client.UpdateOrderStatus: %w: %s to %s",
			domain.ErrInvalidTransition, current.Status, next)
	}

	req := orderStatusRequest{Status: status}
	var o domain.Order
	if err := c.doRequest(ctx, http.MethodPatch, "/v1/orders/"+url.PathEscape(id)+"/status", req, &o); err != nil {
		return nil, fmt.Errorf("client.UpdateOrderStatus: %w", err)
	}
	return &o, nil
}

// --- Service requests ---

// ListServiceRequests fetches a page of garage service requests.
func (c *Client) ListServiceRequests(ctx context.Context, opts ListOptions) (*Page[domain.ServiceRequest], error) {
	var page Page[domain.ServiceRequest]
	if err := c.get(ctx, "/v1/service-requests"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("client.ListServiceRequests: %w", err)
	}
	return &page, nil
}

// GetServiceRequest fetches one service request.
func (c *Client) GetServiceRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	var sr domain.ServiceRequest
	if err := c.get(ctx, "/v1/service-requests/"+url.PathEscape(id), &sr); err != nil {
		return nil, fmt.Errorf("client.GetServiceRequest: %w", err)
	}
	return &sr, nil
}

// UpdateServiceRequestStatus moves a service request to a new status with
// optional free-text notes. Like UpdateOrderStatus, the transition is
// checked locally before the request is issued.
func (c *Client) UpdateServiceRequestStatus(ctx context.Context, id, status, notes string) (*domain.ServiceRequest, error) {
	next := domain.ServiceRequestStatus(status)
	if !domain.ValidServiceRequestStatus(string(next)) {
		return nil, fmt.Errorf("client.UpdateServiceRequestStatus: unknown status %q", status)
	}
	current, err := c.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateServiceRequestStatus: %w", err)
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("client.UpdateServiceRequestStatus: %w: %s to %s",
			domain.ErrInvalidTransition, current.Status, next)
	}

	req := requestStatusRequest{Status: status, Notes: notes}
	var sr domain.ServiceRequest
	if err := c.doRequest(ctx, http.MethodPatch, "/v1/service-requests/"+url.PathEscape(id)+"/status", req, &sr); err != nil {
		return nil, fmt.Errorf("client.UpdateServiceRequestStatus: %w", err)
	}
	return &sr, nil
}

// --- Plumbing ---

func (o ListOptions) query() string {
	params := url.Values{}
	if o.Status != "" {
		params.Set("status", o.Status)
	}
	if o.Search != "" {
		params.Set("search", o.Search)
	}
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The token is read at call time, not construction time: a login or
	// logout between two calls is always reflected in the next request.
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
