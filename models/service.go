package models

import (
	"github.com/google/uuid"
)

type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"not null"`
	Description  string
	Price        float64 `gorm:"type:decimal(10,2);not null"`
	ImageURL     string
	IsActive     bool `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:ServiceID"`
}
