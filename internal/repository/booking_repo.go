package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"rentacar/internal/db"
	"rentacar/internal/entities"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(code, user_id, name, email, phone, cnic, car_slug, car_name,
		 pickup_location, dropoff_location, pickup_time, return_time,
		 total_days, price_per_day, total_price, savings, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	return r.DB.QueryRow(query,
		b.Code, b.UserID, b.Name, b.Email, b.Phone, b.CNIC, b.CarSlug, b.CarName,
		b.PickupLocation, b.DropoffLocation, b.PickupTime, b.ReturnTime,
		b.TotalDays, b.PricePerDay, b.TotalPrice, b.Savings, b.Status, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *BookingRepository) ListBookingsByUser(userID int) ([]entities.BookingItem, error) {
	query := `
		SELECT id, code, car_name, pickup_location, dropoff_location,
		       pickup_time, return_time, total_days, total_price, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY pickup_time DESC`

	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var items []entities.BookingItem
	for rows.Next() {
		var b entities.BookingItem
		err := rows.Scan(&b.ID, &b.Code, &b.CarName, &b.PickupLocation, &b.DropoffLocation,
			&b.PickupTime, &b.ReturnTime, &b.TotalDays, &b.TotalPrice, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		items = append(items, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return items, nil
}

// CancelBooking cancels a scheduled booking owned by the user. Active or
// finished bookings stay as they are.
func (r *BookingRepository) CancelBooking(code string, userID int) error {
	query := `
		UPDATE bookings SET status = 'cancelled', updated_at = NOW()
		WHERE code = $1 AND user_id = $2 AND status = 'scheduled'`
	result, err := r.DB.Exec(query, code, userID)
	if err != nil {
		return fmt.Errorf("error cancelling booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("booking not found or not cancellable")
	}
	return nil
}

func (r *BookingRepository) GetScheduledBookingIDsPastPickup() ([]int, error) {
	return r.bookingIDs(`SELECT id FROM bookings WHERE status = 'scheduled' AND pickup_time < NOW()`)
}

func (r *BookingRepository) GetActiveBookingIDsPastReturn() ([]int, error) {
	return r.bookingIDs(`SELECT id FROM bookings WHERE status = 'active' AND return_time < NOW()`)
}

func (r *BookingRepository) bookingIDs(query string) ([]int, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying booking ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *BookingRepository) UpdateBookingStatuses(ids []int, status string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	if _, err := r.DB.Exec(query, status, pq.Array(ids)); err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}
	return nil
}
