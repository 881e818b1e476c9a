// Package fixtures holds the canned in-memory dataset served by the
// development stub API. It is deliberately not a database: the production
// backend stays an external service, and the stub exists only so the
// console can be exercised end-to-end on a laptop.
package fixtures

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/movaro/console/internal/core/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Query carries the filter/search/pagination parameters of a list call.
type Query struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// Normalize returns the effective page and limit after defaulting and
// capping, matching what filterPage applies.
func (q Query) Normalize() (page, limit int) {
	page = q.Page
	if page < 1 {
		page = 1
	}
	limit = q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Store is the mutable fixture set, safe for concurrent handlers.
type Store struct {
	mu       sync.Mutex
	users    []domain.User
	drivers  []domain.Driver
	vehicles []domain.Vehicle
	bookings []domain.Booking
	products []domain.Product
	orders   []domain.Order
	requests []domain.ServiceRequest
	seq      int
}

// Seed builds a Store populated with demo data. Demo credentials:
// admin@movaro.test/admin123 (admin) and ops@movaro.test/ops123 (user).
func Seed() (*Store, error) {
	s := &Store{seq: 100}

	for _, u := range []struct {
		id, name, email, password, role string
	}{
		{"u-admin", "Asha Verma", "admin@movaro.test", "admin123", domain.RoleAdmin},
		{"u-ops", "Luis Ortega", "ops@movaro.test", "ops123", domain.RoleUser},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		s.users = append(s.users, domain.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			CreatedAt:    seedTime(0),
		})
	}

	s.drivers = []domain.Driver{
		{ID: "d-1", Name: "Ravi Kumar", Phone: "+91-98100-11111", LicenseNumber: "DL-0420110012345", Status: domain.DriverAvailable, CreatedAt: seedTime(1)},
		{ID: "d-2", Name: "Sunil Yadav", Phone: "+91-98100-22222", LicenseNumber: "DL-0420110067890", Status: domain.DriverOnTrip, CreatedAt: seedTime(2)},
		{ID: "d-3", Name: "Meena Joshi", Phone: "+91-98100-33333", LicenseNumber: "DL-0420110024680", Status: domain.DriverOffDuty, CreatedAt: seedTime(3)},
	}

	s.vehicles = []domain.Vehicle{
		{ID: "v-1", PlateNumber: "MH12AB1234", Model: "Tata Ace", Capacity: 4, Status: domain.VehicleActive, CreatedAt: seedTime(1)},
		{ID: "v-2", PlateNumber: "MH12CD5678", Model: "Eicher Pro 2049", Capacity: 12, Status: domain.VehicleActive, CreatedAt: seedTime(2)},
		{ID: "v-3", PlateNumber: "MH14EF9012", Model: "Mahindra Bolero Pickup", Capacity: 6, Status: domain.VehicleMaintenance, CreatedAt: seedTime(3)},
	}

	s.bookings = []domain.Booking{
		{ID: "b-1", CustomerName: "Prakash Traders", Phone: "+91-98200-10001", Pickup: "Pune depot", Drop: "Hinjewadi site", Date: seedTime(40), VehicleID: "v-1", DriverID: "d-2", Status: domain.BookingConfirmed, CreatedAt: seedTime(10)},
		{ID: "b-2", CustomerName: "Sharma Constructions", Phone: "+91-98200-10002", Pickup: "Kothrud warehouse", Drop: "Baner site", Date: seedTime(41), Status: domain.BookingPending, CreatedAt: seedTime(11)},
		{ID: "b-3", CustomerName: "Desai Infra", Phone: "+91-98200-10003", Pickup: "Chakan plant", Drop: "Wakad site", Date: seedTime(20), VehicleID: "v-2", DriverID: "d-1", Status: domain.BookingCompleted, CreatedAt: seedTime(5)},
	}

	s.products = []domain.Product{
		{ID: "p-1", Name: "OPC 53 Cement 50kg", Category: "cement", Price: 415, Unit: "bag", Stock: 820, CreatedAt: seedTime(1), UpdatedAt: seedTime(1)},
		{ID: "p-2", Name: "TMT Rebar 12mm", Category: "steel", Price: 62, Unit: "kg", Stock: 14000, CreatedAt: seedTime(2), UpdatedAt: seedTime(2)},
		{ID: "p-3", Name: "River Sand", Category: "aggregate", Price: 2600, Unit: "tonne", Stock: 55, CreatedAt: seedTime(3), UpdatedAt: seedTime(3)},
		{ID: "p-4", Name: "Concrete Block 8in", Category: "masonry", Price: 38, Unit: "piece", Stock: 4200, CreatedAt: seedTime(4), UpdatedAt: seedTime(4)},
	}

	s.orders = []domain.Order{
		{
			ID: "o-1", CustomerName: "Sharma Constructions", CustomerEmail: "purchase@sharmaconstructions.test",
			Items: []domain.OrderItem{{ProductID: "p-1", Name: "OPC 53 Cement 50kg", Quantity: 200, UnitPrice: 415}},
			Total: 83000, Status: domain.OrderPending, CreatedAt: seedTime(12), UpdatedAt: seedTime(12),
		},
		{
			ID: "o-2", CustomerName: "Desai Infra", CustomerEmail: "stores@desaiinfra.test",
			Items: []domain.OrderItem{{ProductID: "p-2", Name: "TMT Rebar 12mm", Quantity: 3000, UnitPrice: 62}},
			Total: 186000, Status: domain.OrderProcessing, CreatedAt: seedTime(8), UpdatedAt: seedTime(9),
		},
		{
			ID: "o-3", CustomerName: "Prakash Traders", CustomerEmail: "orders@prakashtraders.test",
			Items: []domain.OrderItem{{ProductID: "p-4", Name: "Concrete Block 8in", Quantity: 500, UnitPrice: 38}},
			Total: 19000, Status: domain.OrderDelivered, CreatedAt: seedTime(2), UpdatedAt: seedTime(6),
		},
	}

	s.requests = []domain.ServiceRequest{
		{ID: "r-1", CustomerName: "Anil Patil", Phone: "+91-98300-20001", VehicleMake: "Maruti", VehicleModel: "Swift", PlateNumber: "MH12GH3456", Issue: "Brake pads worn, grinding noise", Status: domain.RequestReceived, CreatedAt: seedTime(13), UpdatedAt: seedTime(13)},
		{ID: "r-2", CustomerName: "Farida Shaikh", Phone: "+91-98300-20002", VehicleMake: "Hyundai", VehicleModel: "i20", PlateNumber: "MH14JK7890", Issue: "AC not cooling", Status: domain.RequestInProgress, Notes: "Compressor ordered", CreatedAt: seedTime(9), UpdatedAt: seedTime(10)},
		{ID: "r-3", CustomerName: "Joseph D'Souza", Phone: "+91-98300-20003", VehicleMake: "Tata", VehicleModel: "Nexon", PlateNumber: "MH12LM2468", Issue: "Routine 20k service", Status: domain.RequestCompleted, Notes: "Delivered to customer", CreatedAt: seedTime(3), UpdatedAt: seedTime(7)},
	}

	return s, nil
}

// seedTime spaces fixture timestamps out deterministically around now.
func seedTime(offsetHours int) time.Time {
	return time.Now().UTC().Add(time.Duration(offsetHours-48) * time.Hour).Truncate(time.Second)
}

// FindUserByEmail returns the user with the given email, or
// domain.ErrInvalidCredentials. Unknown accounts and wrong passwords are
// indistinguishable to callers.
func (s *Store) FindUserByEmail(email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrInvalidCredentials
}

// Dashboard computes the aggregate stats over the current fixture set.
func (s *Store) Dashboard() domain.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum domain.DashboardSummary
	sum.TotalBookings = len(s.bookings)
	for _, b := range s.bookings {
		if b.Status == domain.BookingPending {
			sum.PendingBookings++
		}
	}
	sum.TotalOrders = len(s.orders)
	for _, o := range s.orders {
		if o.Status == domain.OrderPending {
			sum.PendingOrders++
		}
		if o.Status != domain.OrderCancelled {
			sum.RevenueMonth += o.Total
		}
	}
	sum.TotalProducts = len(s.products)
	for _, r := range s.requests {
		if r.Status == domain.RequestReceived || r.Status == domain.RequestInProgress {
			sum.OpenServiceRequests++
		}
	}
	return sum
}

// Drivers lists drivers matching q.
func (s *Store) Drivers(q Query) ([]domain.Driver, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.drivers, q, func(d domain.Driver) bool {
		return matchStatus(q.Status, string(d.Status)) && matchSearch(q.Search, d.Name, d.LicenseNumber)
	})
}

// Driver fetches one driver by ID.
func (s *Store) Driver(id string) (domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Driver{}, domain.ErrNotFound
}

// Vehicles lists fleet vehicles matching q.
func (s *Store) Vehicles(q Query) ([]domain.Vehicle, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.vehicles, q, func(v domain.Vehicle) bool {
		return matchStatus(q.Status, string(v.Status)) && matchSearch(q.Search, v.Model, v.PlateNumber)
	})
}

// Vehicle fetches one vehicle by ID.
func (s *Store) Vehicle(id string) (domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, domain.ErrNotFound
}

// Bookings lists transport bookings matching q.
func (s *Store) Bookings(q Query) ([]domain.Booking, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.bookings, q, func(b domain.Booking) bool {
		return matchStatus(q.Status, string(b.Status)) && matchSearch(q.Search, b.CustomerName, b.Pickup, b.Drop)
	})
}

// Booking fetches one booking by ID.
func (s *Store) Booking(id string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

// Products lists catalog products matching q.
func (s *Store) Products(q Query) ([]domain.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.products, q, func(p domain.Product) bool {
		return matchStatus(q.Status, p.Category) && matchSearch(q.Search, p.Name, p.Category)
	})
}

// Product fetches one product by ID.
func (s *Store) Product(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// CreateProduct appends a product, assigning ID and timestamps.
func (s *Store) CreateProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p.ID = fmt.Sprintf("p-%d", s.seq)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	return p
}

// UpdateProduct replaces the details of an existing product.
func (s *Store) UpdateProduct(id string, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			p.CreatedAt = s.products[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			s.products[i] = p
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// DeleteProduct removes a product by ID.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Orders lists orders matching q.
func (s *Store) Orders(q Query) ([]domain.Order, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.orders, q, func(o domain.Order) bool {
		return matchStatus(q.Status, string(o.Status)) && matchSearch(q.Search, o.CustomerName, o.CustomerEmail)
	})
}

// Order fetches one order by ID.
func (s *Store) Order(id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

// UpdateOrderStatus applies a status transition, enforcing the order state
// machine.
func (s *Store) UpdateOrderStatus(id string, next domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(next) {
			return domain.Order{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, s.orders[i].Status, next)
		}
		s.orders[i].Status = next
		s.orders[i].UpdatedAt = time.Now().UTC()
		return s.orders[i], nil
	}
	return domain.Order{}, domain.ErrNotFound
}

// Requests lists service requests matching q.
func (s *Store) Requests(q Query) ([]domain.ServiceRequest, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPage(s.requests, q, func(r domain.ServiceRequest) bool {
		return matchStatus(q.Status, string(r.Status)) && matchSearch(q.Search, r.CustomerName, r.PlateNumber, r.Issue)
	})
}

// Request fetches one service request by ID.
func (s *Store) Request(id string) (domain.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.ServiceRequest{}, domain.ErrNotFound
}

// UpdateRequestStatus applies a status transition with optional notes,
// enforcing the service request state machine.
func (s *Store) UpdateRequestStatus(id string, next domain.ServiceRequestStatus, notes string) (domain.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if !s.requests[i].Status.CanTransitionTo(next) {
			return domain.ServiceRequest{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, s.requests[i].Status, next)
		}
		s.requests[i].Status = next
		if notes != "" {
			s.requests[i].Notes = notes
		}
		s.requests[i].UpdatedAt = time.Now().UTC()
		return s.requests[i], nil
	}
	return domain.ServiceRequest{}, domain.ErrNotFound
}

// filterPage applies match, then slices out the requested page. It returns
// the page items and the total match count.
func filterPage[T any](items []T, q Query, match func(T) bool) ([]T, int) {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			matched = append(matched, it)
		}
	}

	page, limit := q.Normalize()
	start := (page - 1) * limit
	if start >= len(matched) {
		return []T{}, len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched)
}

func matchStatus(want, have string) bool {
	return want == "" || want == have
}

func matchSearch(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
