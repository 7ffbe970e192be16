// services/booking_service.go
package services

import (
	"context"
	"time"

	"barberbook-backend/models"

	"github.com/google/uuid"
)

// Clock abstracts the current time so past/future checks are testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// BookingStore is the persistence capability the booking flow needs. The
// store, not this service, is the final arbiter of slot uniqueness:
// InsertConfirmed must reject a second confirmed booking for the same
// (barbershop, instant) with models.ErrSlotConflict.
type BookingStore interface {
	ListConfirmedForDay(ctx context.Context, barbershopID uuid.UUID, day time.Time) ([]models.Booking, error)
	InsertConfirmed(ctx context.Context, booking *models.Booking) error
	ByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

type BookingService struct {
	store BookingStore
	clock Clock
}

func NewBookingService(store BookingStore, clock Clock) *BookingService {
	if clock == nil {
		clock = RealClock{}
	}
	return &BookingService{store: store, clock: clock}
}

// AvailableSlots returns the day's free "HH:MM" labels for a barbershop:
// the full grid minus slots already holding a confirmed booking.
func (s *BookingService) AvailableSlots(ctx context.Context, barbershopID uuid.UUID, day time.Time, cfg HoursConfig) ([]string, error) {
	candidates := DayTimeList(day, cfg)
	if len(candidates) == 0 {
		return nil, nil
	}

	bookings, err := s.store.ListConfirmedForDay(ctx, barbershopID, day)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(candidates, bookings), nil
}

// Submit validates the selection and persists a confirmed booking.
// Checks run in order and short-circuit: selection completeness, then the
// past-instant guard, then the slot collision re-check. The collision check
// here is a best-effort early rejection; a concurrent submission that slips
// past it is caught by the store and surfaces models.ErrSlotConflict.
func (s *BookingService) Submit(ctx context.Context, barbershopID, serviceID, customerID uuid.UUID, day time.Time, hour string) (*models.Booking, error) {
	if day.IsZero() || hour == "" {
		return nil, models.ErrIncompleteSelection
	}

	instant, err := SlotInstant(day, hour)
	if err != nil {
		return nil, models.ErrIncompleteSelection
	}

	if !instant.After(s.clock.Now()) {
		return nil, models.ErrPastSlot
	}

	existing, err := s.store.ListConfirmedForDay(ctx, barbershopID, day)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		if b.Date.Hour() == instant.Hour() && b.Date.Minute() == instant.Minute() {
			return nil, models.ErrSlotTaken
		}
	}

	booking := &models.Booking{
		BarbershopID: barbershopID,
		ServiceID:    serviceID,
		CustomerID:   customerID,
		Date:         instant,
		Status:       models.BookingStatusConfirmed,
	}
	if err := s.store.InsertConfirmed(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel transitions a confirmed booking to cancelled. Finished bookings are
// frozen. Cancelling an already-cancelled booking is a no-op so retried
// cancel requests stay safe.
func (s *BookingService) Cancel(ctx context.Context, bookingID, customerID uuid.UUID) error {
	booking, err := s.store.ByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.CustomerID != customerID {
		return models.ErrNotOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}
	if booking.IsFinished(s.clock.Now()) {
		return models.ErrAlreadyFinished
	}
	return s.store.SetStatus(ctx, bookingID, models.BookingStatusCancelled)
}
