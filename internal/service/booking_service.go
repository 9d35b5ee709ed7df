package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentacar/internal/db"
	"rentacar/internal/entities"
)

// BookingStore is the slice of the booking repository the service needs.
type BookingStore interface {
	CreateBooking(b *db.Booking) error
	ListBookingsByUser(userID int) ([]entities.BookingItem, error)
	CancelBooking(code string, userID int) error
}

// BookingNotifier dispatches the operator notification for a booking.
type BookingNotifier interface {
	SendBookingEmail(ctx context.Context, notificationType string, data interface{}) error
}

type BookingService struct {
	Catalog  *CatalogService
	Repo     BookingStore
	Notifier BookingNotifier
}

func NewBookingService(catalog *CatalogService, repo BookingStore, notifier BookingNotifier) *BookingService {
	return &BookingService{Catalog: catalog, Repo: repo, Notifier: notifier}
}

// CreateBooking runs the full submission flow: resolve the vehicle, price
// the rental, persist the booking, then notify the operator. The payload is
// only built once every validation has passed; a notification failure is
// reported but never undoes the stored booking.
func (s *BookingService) CreateBooking(ctx context.Context, req entities.BookingRequest, userID *int) (*entities.BookingResponse, error) {
	vehicle, ok := s.Catalog.VehicleBySlug(req.CarSlug)
	if !ok {
		return nil, fmt.Errorf("vehicle %q not found", req.CarSlug)
	}

	quote, err := ComputeQuote(vehicle.PricePerDay, vehicle.Discounts, req.PickupTime, req.ReturnTime)
	if err != nil {
		return nil, err
	}

	dropoff := req.DropoffLocation
	if dropoff == "" {
		dropoff = req.PickupLocation
	}

	// random so concurrent bookings never collide on the unique code column
	code := strings.ToUpper(uuid.NewString()[:8])
	now := time.Now().UTC()

	booking := &db.Booking{
		Code:            code,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CNIC:            req.CNIC,
		CarSlug:         vehicle.Slug,
		CarName:         vehicle.Name,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: dropoff,
		PickupTime:      req.PickupTime,
		ReturnTime:      req.ReturnTime,
		TotalDays:       quote.Days,
		PricePerDay:     vehicle.PricePerDay,
		TotalPrice:      quote.Total,
		Savings:         quote.Savings,
		Status:          entities.BookingStatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if userID != nil {
		booking.UserID.Int64 = int64(*userID)
		booking.UserID.Valid = true
	}

	if err := s.Repo.CreateBooking(booking); err != nil {
		log.Printf("Error storing booking %s: %v", code, err)
		return nil, fmt.Errorf("could not store booking: %w", err)
	}

	emailData := entities.BookingEmailData{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CNIC:            req.CNIC,
		CarName:         vehicle.Name,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: dropoff,
		PickupDate:      req.PickupTime.Format("2006-01-02"),
		PickupTime:      req.PickupTime.Format("15:04"),
		ReturnDate:      req.ReturnTime.Format("2006-01-02"),
		ReturnTime:      req.ReturnTime.Format("15:04"),
		TotalDays:       fmt.Sprintf("%d", quote.Days),
		TotalPrice:      fmt.Sprintf("%.2f", quote.Total),
	}

	emailSent := true
	message := fmt.Sprintf("Booking request submitted! We'll contact you at %s", req.Email)
	if err := s.Notifier.SendBookingEmail(ctx, entities.NotificationBooking, emailData); err != nil {
		log.Printf("Booking %s stored but operator notification failed: %v", code, err)
		emailSent = false
		message = "Booking submitted but email notification failed"
	}

	go func(phone, carName, pickup string) {
		sms := fmt.Sprintf("Car Rental: your booking request for %s (pick-up %s) has been received. We'll be in touch shortly.", carName, pickup)
		if err := SendSMS(phone, sms); err != nil {
			log.Printf("Booking %s stored but confirmation SMS to %s failed: %v", code, phone, err)
		}
	}(req.Phone, vehicle.Name, emailData.PickupDate)

	return &entities.BookingResponse{
		Code:      code,
		CarName:   vehicle.Name,
		Quote:     quote,
		Status:    booking.Status,
		EmailSent: emailSent,
		Message:   message,
	}, nil
}

// ListMyBookings groups a customer's bookings the way the my-bookings page
// renders them.
func (s *BookingService) ListMyBookings(userID int) (*entities.BookingsByStatus, error) {
	items, err := s.Repo.ListBookingsByUser(userID)
	if err != nil {
		return nil, err
	}

	grouped := &entities.BookingsByStatus{
		Active:    []entities.BookingItem{},
		Scheduled: []entities.BookingItem{},
		History:   []entities.BookingItem{},
	}
	for _, b := range items {
		switch b.Status {
		case entities.BookingStatusActive:
			grouped.Active = append(grouped.Active, b)
		case entities.BookingStatusScheduled:
			grouped.Scheduled = append(grouped.Scheduled, b)
		default:
			grouped.History = append(grouped.History, b)
		}
	}
	return grouped, nil
}

func (s *BookingService) CancelBooking(code string, userID int) error {
	return s.Repo.CancelBooking(code, userID)
}
