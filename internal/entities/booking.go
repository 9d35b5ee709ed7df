package entities

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingRequest is what the booking form submits. Times are wall-clock
// instants; the pricing engine works on them directly.
type BookingRequest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CNIC            string    `json:"cnic"`
	CarSlug         string    `json:"car_slug"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupTime      time.Time `json:"pickup_time"`
	ReturnTime      time.Time `json:"return_time"`
}

// BookingResponse reports the stored booking plus whether the operator
// notification went out. A failed notification never undoes the booking.
type BookingResponse struct {
	Code       string      `json:"code"`
	CarName    string      `json:"car_name"`
	Quote      RentalQuote `json:"quote"`
	Status     string      `json:"status"`
	EmailSent  bool        `json:"email_sent"`
	Message    string      `json:"message"`
}

// BookingItem is one entry of a customer's booking history.
type BookingItem struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	CarName         string    `json:"car_name"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupTime      time.Time `json:"pickup_time"`
	ReturnTime      time.Time `json:"return_time"`
	TotalDays       int       `json:"total_days"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingsByStatus groups a customer's bookings the way the my-bookings page
// shows them: current, upcoming, and everything finished or cancelled.
type BookingsByStatus struct {
	Active    []BookingItem `json:"active"`
	Scheduled []BookingItem `json:"scheduled"`
	History   []BookingItem `json:"history"`
}
