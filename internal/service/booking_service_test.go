package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/db"
	"rentacar/internal/entities"
)

type fakeBookingStore struct {
	created  []*db.Booking
	failNext bool
	items    []entities.BookingItem
}

func (f *fakeBookingStore) CreateBooking(b *db.Booking) error {
	if f.failNext {
		return errors.New("db down")
	}
	b.ID = len(f.created) + 1
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingStore) ListBookingsByUser(userID int) ([]entities.BookingItem, error) {
	return f.items, nil
}

func (f *fakeBookingStore) CancelBooking(code string, userID int) error { return nil }

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendBookingEmail(ctx context.Context, notificationType string, data interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notificationType)
	return nil
}

func bookingFixture() entities.BookingRequest {
	return entities.BookingRequest{
		Name:           "John Doe",
		Email:          "john@example.com",
		Phone:          "+92 300 1234567",
		CNIC:           "42101-1234567-8",
		CarSlug:        "toyota-corolla",
		PickupLocation: "Karachi Airport",
		PickupTime:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		ReturnTime:     time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC),
	}
}

func newBookingService(t *testing.T, store *fakeBookingStore, notifier *fakeNotifier) *BookingService {
	t.Helper()
	fleet := testFleet()
	fleet[1].Discounts = []entities.DiscountTier{{MinDays: 3, Percentage: 10}}
	catalog, err := NewCatalogService(fleet)
	require.NoError(t, err)
	return NewBookingService(catalog, store, notifier)
}

func TestCreateBookingHappyPath(t *testing.T) {
	store := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	svc := newBookingService(t, store, notifier)

	resp, err := svc.CreateBooking(context.Background(), bookingFixture(), nil)
	require.NoError(t, err)

	assert.True(t, resp.EmailSent)
	assert.Equal(t, entities.BookingStatusScheduled, resp.Status)
	assert.Equal(t, 5, resp.Quote.Days)
	// 5 days * 8000 with 10% off
	assert.InDelta(t, 36000, resp.Quote.Total, 1e-9)
	assert.InDelta(t, 4000, resp.Quote.Savings, 1e-9)

	require.Len(t, store.created, 1)
	stored := store.created[0]
	assert.Equal(t, "Toyota Corolla", stored.CarName)
	// no separate drop-off requested, falls back to pick-up
	assert.Equal(t, "Karachi Airport", stored.DropoffLocation)
	assert.False(t, stored.UserID.Valid)

	assert.Equal(t, []string{entities.NotificationBooking}, notifier.sent)
}

func TestCreateBookingInvalidDateRangeNeverReachesStoreOrNotifier(t *testing.T) {
	store := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	svc := newBookingService(t, store, notifier)

	req := bookingFixture()
	req.ReturnTime = req.PickupTime
	_, err := svc.CreateBooking(context.Background(), req, nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, store.created)
	assert.Empty(t, notifier.sent)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	svc := newBookingService(t, &fakeBookingStore{}, &fakeNotifier{})
	req := bookingFixture()
	req.CarSlug = "no-such-car"
	_, err := svc.CreateBooking(context.Background(), req, nil)
	assert.Error(t, err)
}

func TestCreateBookingNotifyFailureKeepsBooking(t *testing.T) {
	store := &fakeBookingStore{}
	notifier := &fakeNotifier{err: ErrNotifyFailed}
	svc := newBookingService(t, store, notifier)

	resp, err := svc.CreateBooking(context.Background(), bookingFixture(), nil)
	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Contains(t, resp.Message, "email notification failed")
	assert.Len(t, store.created, 1)
}

func TestCreateBookingCodesDoNotCollide(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newBookingService(t, store, &fakeNotifier{})

	first, err := svc.CreateBooking(context.Background(), bookingFixture(), nil)
	require.NoError(t, err)
	second, err := svc.CreateBooking(context.Background(), bookingFixture(), nil)
	require.NoError(t, err)

	assert.Regexp(t, "^[0-9A-F]{8}$", first.Code)
	assert.Regexp(t, "^[0-9A-F]{8}$", second.Code)
	// codes feed a unique column, back-to-back requests must differ
	assert.NotEqual(t, first.Code, second.Code)
}

func TestCreateBookingAttachesUser(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newBookingService(t, store, &fakeNotifier{})

	userID := 42
	_, err := svc.CreateBooking(context.Background(), bookingFixture(), &userID)
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.True(t, store.created[0].UserID.Valid)
	assert.EqualValues(t, 42, store.created[0].UserID.Int64)
}

func TestListMyBookingsGroupsByStatus(t *testing.T) {
	store := &fakeBookingStore{items: []entities.BookingItem{
		{Code: "A", Status: entities.BookingStatusActive},
		{Code: "B", Status: entities.BookingStatusScheduled},
		{Code: "C", Status: entities.BookingStatusCompleted},
		{Code: "D", Status: entities.BookingStatusCancelled},
	}}
	svc := newBookingService(t, store, &fakeNotifier{})

	grouped, err := svc.ListMyBookings(1)
	require.NoError(t, err)
	assert.Len(t, grouped.Active, 1)
	assert.Len(t, grouped.Scheduled, 1)
	assert.Len(t, grouped.History, 2)
}
