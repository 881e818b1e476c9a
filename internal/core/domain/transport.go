package domain

import "time"

// DriverStatus is the availability state of a driver.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnTrip    DriverStatus = "on_trip"
	DriverOffDuty   DriverStatus = "off_duty"
)

// Driver is a transport operator employed by the business.
type Driver struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Phone         string       `json:"phone"`
	LicenseNumber string       `json:"license_number"`
	Status        DriverStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

// Vehicle is a fleet vehicle usable for transport bookings.
type Vehicle struct {
	ID          string        `json:"id"`
	PlateNumber string        `json:"plate_number"`
	Model       string        `json:"model"`
	Capacity    int           `json:"capacity"`
	Status      VehicleStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// BookingStatus is the lifecycle state of a transport booking. Bookings are
// read-only in the console; status changes happen on the backend.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a customer transport reservation.
type Booking struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customer_name"`
	Phone        string        `json:"phone"`
	Pickup       string        `json:"pickup"`
	Drop         string        `json:"drop"`
	Date         time.Time     `json:"date"`
	VehicleID    string        `json:"vehicle_id,omitempty"`
	DriverID     string        `json:"driver_id,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
