// services/schedule.go
package services

import (
	"fmt"
	"time"

	"barberbook-backend/models"
)

// HoursConfig describes a barbershop's bookable window. The grid runs from
// OpenHour:00 up to but not including CloseHour:00 in SlotMinutes steps.
type HoursConfig struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

func (c HoursConfig) valid() bool {
	return c.SlotMinutes > 0 && c.OpenHour >= 0 && c.CloseHour <= 24 && c.OpenHour < c.CloseHour
}

// HoursFor reads the grid configuration off a barbershop row.
func HoursFor(shop *models.Barbershop) HoursConfig {
	return HoursConfig{
		OpenHour:    shop.OpenHour,
		CloseHour:   shop.CloseHour,
		SlotMinutes: shop.SlotMinutes,
	}
}

// DayTimeList generates every bookable "HH:MM" label for the given day.
// The result depends only on the config; existing bookings never change it.
func DayTimeList(day time.Time, cfg HoursConfig) []string {
	if !cfg.valid() {
		return nil
	}

	openMin := cfg.OpenHour * 60
	closeMin := cfg.CloseHour * 60

	var list []string
	for m := openMin; m < closeMin; m += cfg.SlotMinutes {
		list = append(list, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return list
}

// FilterAvailable removes candidate slots whose hour and minute coincide with
// a confirmed booking. Cancelled rows never occupy a slot, so they are skipped
// even if the caller forgot to exclude them. Input order is preserved.
func FilterAvailable(candidates []string, bookings []models.Booking) []string {
	available := make([]string, 0, len(candidates))

	for _, slot := range candidates {
		h, m, err := parseSlot(slot)
		if err != nil {
			continue
		}

		taken := false
		for _, b := range bookings {
			if b.Status != models.BookingStatusConfirmed {
				continue
			}
			if b.Date.Hour() == h && b.Date.Minute() == m {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, slot)
		}
	}
	return available
}

// SlotInstant combines the selected day with an "HH:MM" label, zeroing
// seconds, to form the instant used for conflict detection.
func SlotInstant(day time.Time, slot string) (time.Time, error) {
	h, m, err := parseSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

func parseSlot(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
