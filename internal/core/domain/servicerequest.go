package domain

import "time"

// ServiceRequestStatus represents the lifecycle state of a garage service request.
type ServiceRequestStatus string

const (
	RequestReceived   ServiceRequestStatus = "received"
	RequestInProgress ServiceRequestStatus = "in_progress"
	RequestCompleted  ServiceRequestStatus = "completed"
	RequestRejected   ServiceRequestStatus = "rejected"
)

var requestTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	RequestReceived:   {RequestInProgress, RequestRejected},
	RequestInProgress: {RequestCompleted, RequestRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ServiceRequestStatus) CanTransitionTo(next ServiceRequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidServiceRequestStatus reports whether v names a known service request status.
func ValidServiceRequestStatus(v string) bool {
	switch ServiceRequestStatus(v) {
	case RequestReceived, RequestInProgress, RequestCompleted, RequestRejected:
		return true
	}
	return false
}

// ServiceRequest is a workshop job submitted by a customer for their vehicle.
type ServiceRequest struct {
	ID           string               `json:"id"`
	CustomerName string               `json:"customer_name"`
	Phone        string               `json:"phone"`
	VehicleMake  string               `json:"vehicle_make"`
	VehicleModel string               `json:"vehicle_model"`
	PlateNumber  string               `json:"plate_number"`
	Issue        string               `json:"issue"`
	Status       ServiceRequestStatus `json:"status"`
	// Notes carries the latest operator annotation attached to a status change.
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
