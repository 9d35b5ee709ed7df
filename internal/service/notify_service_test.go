package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar/internal/entities"
)

func TestDispatchRejectsUnknownType(t *testing.T) {
	svc := NewNotifyService()
	err := svc.Dispatch(entities.NotificationRequest{Type: "newsletter", Data: json.RawMessage(`{}`)})
	assert.ErrorContains(t, err, "unknown notification type")
}

func TestDispatchRejectsMalformedPayloads(t *testing.T) {
	svc := NewNotifyService()
	for _, typ := range []string{
		entities.NotificationBooking,
		entities.NotificationContact,
		entities.NotificationCorporate,
	} {
		err := svc.Dispatch(entities.NotificationRequest{Type: typ, Data: json.RawMessage(`"not an object"`)})
		assert.ErrorContains(t, err, "invalid", "type %s", typ)
	}
}

func TestBookingEmailContents(t *testing.T) {
	subject, body := bookingEmail(entities.BookingEmailData{
		Name:            "John Doe",
		Email:           "john@example.com",
		Phone:           "+92 300 1234567",
		CNIC:            "42101-1234567-8",
		CarName:         "Toyota Corolla",
		PickupLocation:  "Karachi Airport",
		DropoffLocation: "Lahore Office",
		PickupDate:      "2026-09-01",
		PickupTime:      "10:00",
		ReturnDate:      "2026-09-06",
		ReturnTime:      "10:00",
		TotalDays:       "5",
		TotalPrice:      "36000.00",
	})

	assert.Equal(t, "New booking request: Toyota Corolla", subject)
	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "42101-1234567-8")
	assert.Contains(t, body, "2026-09-01 at 10:00, Karachi Airport")
	assert.Contains(t, body, "2026-09-06 at 10:00, Lahore Office")
	assert.Contains(t, body, "Rs 36000.00")
}

func TestContactEmailDefaultsSubject(t *testing.T) {
	subject, body := contactEmail(entities.ContactEmailData{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Do you deliver to Clifton?",
	})
	assert.Equal(t, "Contact form: General Inquiry", subject)
	assert.Contains(t, body, "Do you deliver to Clifton?")

	subject, _ = contactEmail(entities.ContactEmailData{Subject: "Airport pickup"})
	assert.Equal(t, "Contact form: Airport pickup", subject)
}

func TestCorporateEmailContents(t *testing.T) {
	subject, body := corporateEmail(entities.CorporateEmailData{
		Name:     "Acme Ltd",
		Email:    "fleet@acme.example.com",
		Phone:    "+92 21 1234567",
		Location: "Karachi",
		NumCars:  "12",
		NumDays:  "30",
		Purpose:  "Staff transport",
		Details:  "Monthly contract preferred.",
	})
	assert.Equal(t, "Corporate enquiry from Acme Ltd", subject)
	assert.Contains(t, body, "Cars needed: 12")
	assert.Contains(t, body, "Duration: 30 days")
	assert.Contains(t, body, "Monthly contract preferred.")
}
