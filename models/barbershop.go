package models

import (
	"github.com/google/uuid"
)

type Barbershop struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string `gorm:"not null"`
	Address  string
	ImageURL string

	// Operating hours driving the bookable time grid.
	OpenHour    int `gorm:"default:9"`
	CloseHour   int `gorm:"default:19"`
	SlotMinutes int `gorm:"default:30"`

	Services []Service `gorm:"foreignKey:BarbershopID"`
	Bookings []Booking `gorm:"foreignKey:BarbershopID"`
}
