package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/movaro/console/internal/core/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/login" {
			http.NotFound(w, r)
			return
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req["email"] != "ops@movaro.test" || req["password"] != "pass" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), time.Second)
	tok, err := c.Login(context.Background(), "ops@movaro.test", "pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "issued-token" {
		t.Fatalf("got token %q", tok)
	}

	_, err = c.Login(context.Background(), "ops@movaro.test", "wrong")
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBearerHeaderAttachment(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.DashboardSummary{})
	}))
	defer srv.Close()

	// With a token present, every call carries it.
	c := New(srv.URL, staticToken("tok-123"), time.Second)
	if _, err := c.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization header = %q", gotAuth)
	}

	// Without one, the request still goes out, unauthenticated.
	c = New(srv.URL, staticToken(""), time.Second)
	if _, err := c.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard without token: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestListProducts_QueryAndPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "cement" || q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(Page[domain.Product]{
			Items: []domain.Product{{ID: "p1", Name: "Cement 50kg"}},
			Total: 11,
			Page:  2,
			Limit: 10,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"), time.Second)
	page, err := c.ListProducts(context.Background(), ListOptions{Search: "cement", Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Cement 50kg" || page.Total != 11 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestHTTPErrorEnvelope(t *testing.T) {
	// The transition is locally valid; the backend still refuses it, as it
	// would when the order moved on under our feet.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderPending})
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid status transition"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"), time.Second)
	_, err := c.UpdateOrderStatus(context.Background(), "o1", "processing")
	if !IsStatus(err, http.StatusUnprocessableEntity) {
		t.Fatalf("expected 422, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid status transition") {
		t.Fatalf("envelope message lost: %v", err)
	}
}

func TestUpdateStatus_TransitionCheckedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/orders/o1":
			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderDelivered})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/service-requests/r1":
			json.NewEncoder(w).Encode(domain.ServiceRequest{ID: "r1", Status: domain.RequestCompleted})
		case r.Method == http.MethodPatch:
			t.Error("invalid transition must be rejected before any update is issued")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"), time.Second)

	_, err := c.UpdateOrderStatus(context.Background(), "o1", "pending")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if !strings.Contains(err.Error(), "delivered to pending") {
		t.Fatalf("transition detail lost: %v", err)
	}

	_, err = c.UpdateServiceRequestStatus(context.Background(), "r1", "received", "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatus_ValidTransitionIssued(t *testing.T) {
	var patched bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderPending})
		case r.Method == http.MethodPatch && r.URL.Path == "/v1/orders/o1/status":
			patched = true
			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderProcessing})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"), time.Second)
	o, err := c.UpdateOrderStatus(context.Background(), "o1", "processing")
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if !patched || o.Status != domain.OrderProcessing {
		t.Fatalf("update not applied: patched=%v status=%s", patched, o.Status)
	}
}

func TestNoAutoLogoutOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token revoked"})
	}))
	defer srv.Close()

	// The 401 surfaces as an error; the token source is untouched and the
	// next call still carries the token.
	var calls int
	probe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token revoked"})
	}))
	defer probe.Close()

	c := New(probe.URL, staticToken("still-here"), time.Second)
	for i := 0; i < 2; i++ {
		if _, err := c.Dashboard(context.Background()); !IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("expected 401, got %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected both calls issued, got %d", calls)
	}
}

func TestLocalPayloadValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server must not be reached for invalid payloads")
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"), time.Second)

	if _, err := c.CreateProduct(context.Background(), ProductInput{Name: "Rebar"}); err == nil {
		t.Fatalf("expected validation error for incomplete product")
	}
	if _, err := c.UpdateOrderStatus(context.Background(), "o1", "teleported"); err == nil {
		t.Fatalf("expected validation error for unknown order status")
	}
	if _, err := c.UpdateServiceRequestStatus(context.Background(), "r1", "lost", ""); err == nil {
		t.Fatalf("expected validation error for unknown request status")
	}
	if _, err := c.Login(context.Background(), "not-an-email", "p"); err == nil {
		t.Fatalf("expected validation error for bad email")
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := New(srv.URL, staticToken("t"), 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Dashboard(ctx); err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
