// repository/booking_store.go
package repository

import (
	"context"
	"errors"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingStore is the gorm-backed persistence layer for bookings. It owns the
// slot-uniqueness invariant: InsertConfirmed runs in a transaction that locks
// any confirmed row at the same instant before inserting, and the partial
// unique index on (barbershop_id, date) for confirmed rows backstops races
// the probe cannot see.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) ListConfirmedForDay(ctx context.Context, barbershopID uuid.UUID, day time.Time) ([]models.Booking, error) {
	from := utils.BeginningOfDay(day)
	to := from.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("barbershop_id = ? AND status = ?", barbershopID, models.BookingStatusConfirmed).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingStore) InsertConfirmed(ctx context.Context, booking *models.Booking) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock any confirmed row at the same instant to serialize racing submissions
		var existing models.Booking
		probe := tx.Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barbershop_id = ? AND date = ? AND status = ?",
				booking.BarbershopID, booking.Date, models.BookingStatusConfirmed).
			Take(&existing).Error

		if probe == nil {
			return models.ErrSlotConflict
		}
		if !errors.Is(probe, gorm.ErrRecordNotFound) {
			return probe
		}

		booking.Status = models.BookingStatusConfirmed
		return tx.Create(booking).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrSlotConflict
	}
	return err
}

func (s *BookingStore) ByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

// ListForCustomer returns all of a customer's bookings, newest first, with
// the barbershop and service rows preloaded for display.
func (s *BookingStore) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Barbershop").
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}
