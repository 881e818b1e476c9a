package domain

// DashboardSummary is the read-only aggregate served by the dashboard endpoint.
type DashboardSummary struct {
	TotalBookings       int     `json:"total_bookings"`
	PendingBookings     int     `json:"pending_bookings"`
	TotalOrders         int     `json:"total_orders"`
	PendingOrders       int     `json:"pending_orders"`
	TotalProducts       int     `json:"total_products"`
	OpenServiceRequests int     `json:"open_service_requests"`
	RevenueMonth        float64 `json:"revenue_month"`
}
