package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking errors shared by the service and repository layers.
var (
	ErrIncompleteSelection = errors.New("date and hour must both be selected")
	ErrPastSlot            = errors.New("selected slot is in the past")
	ErrSlotTaken           = errors.New("slot already booked")
	ErrSlotConflict        = errors.New("concurrent booking won the slot")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrNotOwner            = errors.New("booking belongs to another customer")
	ErrAlreadyFinished     = errors.New("finished bookings cannot be cancelled")
)

type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`

	// Date carries the full instant: the selected day with the selected
	// hour and minute, seconds zeroed.
	Date   time.Time `gorm:"index;not null"`
	Status string    `gorm:"type:varchar(20);index;not null;default:'confirmed'"`

	Barbershop Barbershop `gorm:"foreignKey:BarbershopID"`
	Service    Service    `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsFinished reports the derived read-only status: a confirmed booking whose
// instant has already passed. Never persisted, always recomputed.
func (b *Booking) IsFinished(now time.Time) bool {
	return b.Status == BookingStatusConfirmed && b.Date.Before(now)
}
