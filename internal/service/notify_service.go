package service

import (
	"encoding/json"
	"fmt"
	"os"

	"rentacar/internal/entities"
)

const defaultOperatorEmail = "bookings@rentacar.pk"

// NotifyService turns notification requests into operator emails. It backs
// the /api/send-booking-email endpoint for the three form types the site
// submits: booking requests, contact messages and corporate enquiries.
type NotifyService struct {
	operatorEmail string
	operatorName  string
}

func NewNotifyService() *NotifyService {
	to := os.Getenv("BOOKINGS_TO_EMAIL")
	if to == "" {
		to = defaultOperatorEmail
	}
	name := os.Getenv("BOOKINGS_TO_NAME")
	if name == "" {
		name = "Bookings"
	}
	return &NotifyService{operatorEmail: to, operatorName: name}
}

// Dispatch decodes the payload according to its type and sends the
// corresponding operator email. Unknown types are an input error.
func (s *NotifyService) Dispatch(req entities.NotificationRequest) error {
	var subject, body string

	switch req.Type {
	case entities.NotificationBooking:
		var data entities.BookingEmailData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return fmt.Errorf("invalid booking payload: %w", err)
		}
		subject, body = bookingEmail(data)
	case entities.NotificationContact:
		var data entities.ContactEmailData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return fmt.Errorf("invalid contact payload: %w", err)
		}
		subject, body = contactEmail(data)
	case entities.NotificationCorporate:
		var data entities.CorporateEmailData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return fmt.Errorf("invalid corporate payload: %w", err)
		}
		subject, body = corporateEmail(data)
	default:
		return fmt.Errorf("unknown notification type %q", req.Type)
	}

	return SendEmailWithSendGrid(s.operatorEmail, s.operatorName, subject, body, "")
}

// SendTestEmail backs /api/test-email.
func (s *NotifyService) SendTestEmail() error {
	return SendEmailWithSendGrid(s.operatorEmail, s.operatorName,
		"Car Rental test email", "The email pipeline is working.", "")
}

func bookingEmail(d entities.BookingEmailData) (string, string) {
	subject := fmt.Sprintf("New booking request: %s", d.CarName)
	body := fmt.Sprintf(
		"A new booking request has been submitted.\n\n"+
			"Customer: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"CNIC: %s\n\n"+
			"Vehicle: %s\n"+
			"Pick-up: %s at %s, %s\n"+
			"Drop-off: %s at %s, %s\n"+
			"Rental period: %s days\n"+
			"Total: Rs %s\n",
		d.Name, d.Email, d.Phone, d.CNIC,
		d.CarName,
		d.PickupDate, d.PickupTime, d.PickupLocation,
		d.ReturnDate, d.ReturnTime, d.DropoffLocation,
		d.TotalDays, d.TotalPrice,
	)
	return subject, body
}

func contactEmail(d entities.ContactEmailData) (string, string) {
	subject := d.Subject
	if subject == "" {
		subject = "General Inquiry"
	}
	subject = fmt.Sprintf("Contact form: %s", subject)
	body := fmt.Sprintf(
		"New contact message.\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\n\n%s\n",
		d.Name, d.Email, d.Phone, d.Message,
	)
	return subject, body
}

func corporateEmail(d entities.CorporateEmailData) (string, string) {
	subject := fmt.Sprintf("Corporate enquiry from %s", d.Name)
	body := fmt.Sprintf(
		"New corporate enquiry.\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nLocation: %s\n"+
			"Cars needed: %s\nDuration: %s days\nPurpose: %s\n\n%s\n",
		d.Name, d.Email, d.Phone, d.Location,
		d.NumCars, d.NumDays, d.Purpose, d.Details,
	)
	return subject, body
}
