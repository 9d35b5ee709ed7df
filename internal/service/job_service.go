package service

import (
	"fmt"
	"log"

	"rentacar/internal/entities"
)

// BookingStatusStore is the slice of the booking repository the cron job
// needs.
type BookingStatusStore interface {
	GetScheduledBookingIDsPastPickup() ([]int, error)
	GetActiveBookingIDsPastReturn() ([]int, error)
	UpdateBookingStatuses(ids []int, status string) error
}

type JobService struct {
	Repo BookingStatusStore
}

func NewJobService(repo BookingStatusStore) *JobService {
	return &JobService{Repo: repo}
}

// ActivateStartedBookings flips scheduled bookings whose pick-up time has
// passed to active.
func (s *JobService) ActivateStartedBookings() error {
	ids, err := s.Repo.GetScheduledBookingIDsPastPickup()
	if err != nil {
		return fmt.Errorf("cron job: failed to get scheduled bookings past pickup: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	log.Printf("Cron Job: marking %d bookings as 'active'. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateBookingStatuses(ids, entities.BookingStatusActive); err != nil {
		return fmt.Errorf("cron job: failed to activate bookings: %w", err)
	}
	return nil
}

// CompleteFinishedBookings flips active bookings whose return time has
// passed to completed. Cancelled bookings are never touched.
func (s *JobService) CompleteFinishedBookings() error {
	ids, err := s.Repo.GetActiveBookingIDsPastReturn()
	if err != nil {
		return fmt.Errorf("cron job: failed to get active bookings past return: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	log.Printf("Cron Job: marking %d bookings as 'completed'. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateBookingStatuses(ids, entities.BookingStatusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to complete bookings: %w", err)
	}
	return nil
}

// Run executes both transitions; errors are logged, not fatal, so one bad
// tick never stops the scheduler.
func (s *JobService) Run() {
	if err := s.ActivateStartedBookings(); err != nil {
		log.Printf("Cron Job: %v", err)
	}
	if err := s.CompleteFinishedBookings(); err != nil {
		log.Printf("Cron Job: %v", err)
	}
}
