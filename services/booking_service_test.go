// services/booking_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type storeMock struct {
	listFn      func(ctx context.Context, barbershopID uuid.UUID, day time.Time) ([]models.Booking, error)
	insertFn    func(ctx context.Context, b *models.Booking) error
	byIDFn      func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	setStatusFn func(ctx context.Context, id uuid.UUID, status string) error
}

var _ services.BookingStore = (*storeMock)(nil)

func (m *storeMock) ListConfirmedForDay(ctx context.Context, barbershopID uuid.UUID, day time.Time) ([]models.Booking, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, barbershopID, day)
}

func (m *storeMock) InsertConfirmed(ctx context.Context, b *models.Booking) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, b)
}

func (m *storeMock) ByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if m.byIDFn == nil {
		return nil, models.ErrBookingNotFound
	}
	return m.byIDFn(ctx, id)
}

func (m *storeMock) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if m.setStatusFn == nil {
		return nil
	}
	return m.setStatusFn(ctx, id, status)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var (
	shopID     = uuid.New()
	serviceID  = uuid.New()
	customerID = uuid.New()

	// The day under test is 2024-05-10; "now" defaults to the evening before.
	eveBefore = fixedClock{time.Date(2024, 5, 9, 18, 0, 0, 0, time.UTC)}
)

func TestSubmit_Success(t *testing.T) {
	var inserted *models.Booking
	m := &storeMock{
		insertFn: func(ctx context.Context, b *models.Booking) error {
			inserted = b
			return nil
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	booking, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.NoError(t, err)
	require.NotNil(t, booking)
	require.Same(t, booking, inserted)

	require.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.Equal(t, time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC), booking.Date)
	require.Equal(t, shopID, booking.BarbershopID)
	require.Equal(t, serviceID, booking.ServiceID)
	require.Equal(t, customerID, booking.CustomerID)
}

func TestSubmit_IncompleteSelection(t *testing.T) {
	svc := services.NewBookingService(&storeMock{}, eveBefore)

	_, err := svc.Submit(context.Background(), shopID, serviceID, customerID, time.Time{}, "10:00")
	require.ErrorIs(t, err, models.ErrIncompleteSelection)

	_, err = svc.Submit(context.Background(), shopID, serviceID, customerID, day, "")
	require.ErrorIs(t, err, models.ErrIncompleteSelection)

	_, err = svc.Submit(context.Background(), shopID, serviceID, customerID, day, "not-a-time")
	require.ErrorIs(t, err, models.ErrIncompleteSelection)
}

func TestSubmit_PastSlot(t *testing.T) {
	inserts := 0
	m := &storeMock{
		insertFn: func(ctx context.Context, b *models.Booking) error {
			inserts++
			return nil
		},
	}
	dayAfter := fixedClock{time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)}
	svc := services.NewBookingService(m, dayAfter)

	_, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.ErrorIs(t, err, models.ErrPastSlot)
	require.Zero(t, inserts)

	// An instant equal to now is also rejected
	atSlot := fixedClock{time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)}
	svc = services.NewBookingService(m, atSlot)
	_, err = svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.ErrorIs(t, err, models.ErrPastSlot)
	require.Zero(t, inserts)
}

func TestSubmit_SlotTaken(t *testing.T) {
	inserts := 0
	m := &storeMock{
		listFn: func(ctx context.Context, barbershopID uuid.UUID, d time.Time) ([]models.Booking, error) {
			return []models.Booking{confirmedAt(10, 0)}, nil
		},
		insertFn: func(ctx context.Context, b *models.Booking) error {
			inserts++
			return nil
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	_, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.ErrorIs(t, err, models.ErrSlotTaken)
	require.Zero(t, inserts)

	// Adjacent slots stay bookable
	b, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:30")
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestSubmit_StoreConflictSurfaces(t *testing.T) {
	m := &storeMock{
		insertFn: func(ctx context.Context, b *models.Booking) error {
			return models.ErrSlotConflict
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	_, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.ErrorIs(t, err, models.ErrSlotConflict)
}

func TestSubmit_StoreListError(t *testing.T) {
	dbErr := errors.New("connection reset")
	m := &storeMock{
		listFn: func(ctx context.Context, barbershopID uuid.UUID, d time.Time) ([]models.Booking, error) {
			return nil, dbErr
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	_, err := svc.Submit(context.Background(), shopID, serviceID, customerID, day, "10:00")
	require.ErrorIs(t, err, dbErr)
}

func TestAvailableSlots(t *testing.T) {
	cfg := services.HoursConfig{OpenHour: 9, CloseHour: 19, SlotMinutes: 30}
	m := &storeMock{
		listFn: func(ctx context.Context, barbershopID uuid.UUID, d time.Time) ([]models.Booking, error) {
			return []models.Booking{confirmedAt(10, 0)}, nil
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	slots, err := svc.AvailableSlots(context.Background(), shopID, day, cfg)
	require.NoError(t, err)
	require.Len(t, slots, 19)
	require.NotContains(t, slots, "10:00")
	require.Contains(t, slots, "09:30")
	require.Contains(t, slots, "10:30")
}

func TestAvailableSlots_InvalidConfigSkipsStore(t *testing.T) {
	calls := 0
	m := &storeMock{
		listFn: func(ctx context.Context, barbershopID uuid.UUID, d time.Time) ([]models.Booking, error) {
			calls++
			return nil, nil
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	slots, err := svc.AvailableSlots(context.Background(), shopID, day, services.HoursConfig{})
	require.NoError(t, err)
	require.Empty(t, slots)
	require.Zero(t, calls)
}

func cancelFixture(status string, date time.Time) (*storeMock, *int) {
	updates := 0
	b := &models.Booking{
		ID:           uuid.New(),
		BarbershopID: shopID,
		ServiceID:    serviceID,
		CustomerID:   customerID,
		Date:         date,
		Status:       status,
	}
	m := &storeMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return b, nil
		},
		setStatusFn: func(ctx context.Context, id uuid.UUID, s string) error {
			updates++
			b.Status = s
			return nil
		},
	}
	return m, &updates
}

func TestCancel_Success(t *testing.T) {
	future := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	m, updates := cancelFixture(models.BookingStatusConfirmed, future)
	svc := services.NewBookingService(m, eveBefore)

	require.NoError(t, svc.Cancel(context.Background(), uuid.New(), customerID))
	require.Equal(t, 1, *updates)
}

func TestCancel_NotFound(t *testing.T) {
	m := &storeMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return nil, models.ErrBookingNotFound
		},
	}
	svc := services.NewBookingService(m, eveBefore)

	err := svc.Cancel(context.Background(), uuid.New(), customerID)
	require.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestCancel_Forbidden(t *testing.T) {
	future := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	m, updates := cancelFixture(models.BookingStatusConfirmed, future)
	svc := services.NewBookingService(m, eveBefore)

	err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, models.ErrNotOwner)
	require.Zero(t, *updates)
}

func TestCancel_AlreadyFinished(t *testing.T) {
	instant := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	m, updates := cancelFixture(models.BookingStatusConfirmed, instant)

	dayAfter := fixedClock{time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)}
	svc := services.NewBookingService(m, dayAfter)

	err := svc.Cancel(context.Background(), uuid.New(), customerID)
	require.ErrorIs(t, err, models.ErrAlreadyFinished)
	require.Zero(t, *updates)
}

func TestCancel_IdempotentNoOp(t *testing.T) {
	future := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	m, updates := cancelFixture(models.BookingStatusCancelled, future)
	svc := services.NewBookingService(m, eveBefore)

	require.NoError(t, svc.Cancel(context.Background(), uuid.New(), customerID))
	require.Zero(t, *updates, "cancelling a cancelled booking must not write")

	// Still a no-op after the instant passes
	dayAfter := fixedClock{time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)}
	svc = services.NewBookingService(m, dayAfter)
	require.NoError(t, svc.Cancel(context.Background(), uuid.New(), customerID))
	require.Zero(t, *updates)
}
