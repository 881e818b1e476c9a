package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderDelivered, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestServiceRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ServiceRequestStatus
		want     bool
	}{
		{RequestReceived, RequestInProgress, true},
		{RequestReceived, RequestRejected, true},
		{RequestReceived, RequestCompleted, false},
		{RequestInProgress, RequestCompleted, true},
		{RequestInProgress, RequestRejected, true},
		{RequestCompleted, RequestInProgress, false},
		{RequestRejected, RequestReceived, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("known roles must be valid")
	}
	if ValidRole("superuser") || ValidRole("") {
		t.Fatalf("unknown roles must be rejected")
	}
}
