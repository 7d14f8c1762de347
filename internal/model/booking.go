package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a pickup request
type Booking struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	BookingDate string    `json:"bookingDate"`
	BookingTime string    `json:"bookingTime"`
	Address     string    `json:"address"`
	Landmark    *string   `json:"landmark"` // Pointer for optional field
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateBookingRequest is used for creating a new booking. Any status or
// timestamp sent by the client is ignored.
type CreateBookingRequest struct {
	BookingDate string  `json:"bookingDate" binding:"required"`
	BookingTime string  `json:"bookingTime" binding:"required"`
	Address     string  `json:"address" binding:"required,min=8"`
	Landmark    *string `json:"landmark"`
	City        string  `json:"city" binding:"required,min=2"`
}
