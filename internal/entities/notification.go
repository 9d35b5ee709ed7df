package entities

import "encoding/json"

const (
	NotificationBooking   = "booking"
	NotificationContact   = "contact"
	NotificationCorporate = "corporate"
)

// NotificationRequest is the body of POST /api/send-booking-email. Data is
// decoded according to Type.
type NotificationRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// BookingEmailData is the operator notification for a booking request. All
// fields are strings; TotalPrice is formatted to two decimals by the caller.
type BookingEmailData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CNIC            string `json:"cnic"`
	CarName         string `json:"carName"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	ReturnDate      string `json:"returnDate"`
	ReturnTime      string `json:"returnTime"`
	TotalDays       string `json:"totalDays"`
	TotalPrice      string `json:"totalPrice"`
}

type ContactEmailData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type CorporateEmailData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	NumCars  string `json:"numCars"`
	NumDays  string `json:"numDays"`
	Purpose  string `json:"purpose"`
	Details  string `json:"details"`
}
