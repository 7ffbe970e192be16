// services/schedule_test.go
package services_test

import (
	"testing"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/services"

	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func confirmedAt(hour, minute int) models.Booking {
	return models.Booking{
		Date:   time.Date(2024, 5, 10, hour, minute, 0, 0, time.UTC),
		Status: models.BookingStatusConfirmed,
	}
}

func TestDayTimeList_FullGrid(t *testing.T) {
	cfg := services.HoursConfig{OpenHour: 9, CloseHour: 19, SlotMinutes: 30}

	list := services.DayTimeList(day, cfg)

	require.Len(t, list, 20)
	require.Equal(t, "09:00", list[0])
	require.Equal(t, "09:30", list[1])
	require.Equal(t, "18:30", list[19])
}

func TestDayTimeList_RespectsConfig(t *testing.T) {
	configs := []services.HoursConfig{
		{OpenHour: 9, CloseHour: 19, SlotMinutes: 30},
		{OpenHour: 8, CloseHour: 12, SlotMinutes: 15},
		{OpenHour: 10, CloseHour: 22, SlotMinutes: 45},
		{OpenHour: 0, CloseHour: 24, SlotMinutes: 60},
	}

	for _, cfg := range configs {
		list := services.DayTimeList(day, cfg)
		require.NotEmpty(t, list)

		prev := -1
		for _, label := range list {
			tm, err := time.Parse("15:04", label)
			require.NoError(t, err)

			minutes := tm.Hour()*60 + tm.Minute()
			if prev >= 0 {
				require.Equal(t, cfg.SlotMinutes, minutes-prev, "slots must advance by step")
			}
			require.GreaterOrEqual(t, minutes, cfg.OpenHour*60)
			require.Less(t, minutes, cfg.CloseHour*60)
			prev = minutes
		}

		first, _ := time.Parse("15:04", list[0])
		require.Equal(t, cfg.OpenHour, first.Hour())
		require.Equal(t, 0, first.Minute())
	}
}

func TestDayTimeList_InvalidConfig(t *testing.T) {
	require.Nil(t, services.DayTimeList(day, services.HoursConfig{OpenHour: 9, CloseHour: 19, SlotMinutes: 0}))
	require.Nil(t, services.DayTimeList(day, services.HoursConfig{OpenHour: 19, CloseHour: 9, SlotMinutes: 30}))
	require.Nil(t, services.DayTimeList(day, services.HoursConfig{OpenHour: 12, CloseHour: 12, SlotMinutes: 30}))
}

func TestDayTimeList_Deterministic(t *testing.T) {
	cfg := services.HoursConfig{OpenHour: 9, CloseHour: 19, SlotMinutes: 30}
	require.Equal(t, services.DayTimeList(day, cfg), services.DayTimeList(day, cfg))
}

func TestFilterAvailable_ExcludesExactMatches(t *testing.T) {
	cfg := services.HoursConfig{OpenHour: 9, CloseHour: 19, SlotMinutes: 30}
	grid := services.DayTimeList(day, cfg)

	out := services.FilterAvailable(grid, []models.Booking{confirmedAt(10, 0)})

	require.Len(t, out, 19)
	require.NotContains(t, out, "10:00")
	require.Contains(t, out, "09:30")
	require.Contains(t, out, "10:30")
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	grid := []string{"09:00", "09:30", "10:00", "10:30"}
	out := services.FilterAvailable(grid, []models.Booking{confirmedAt(9, 30)})
	require.Equal(t, []string{"09:00", "10:00", "10:30"}, out)
}

func TestFilterAvailable_SkipsCancelled(t *testing.T) {
	cancelled := confirmedAt(10, 0)
	cancelled.Status = models.BookingStatusCancelled

	out := services.FilterAvailable([]string{"10:00"}, []models.Booking{cancelled})
	require.Equal(t, []string{"10:00"}, out)
}

func TestFilterAvailable_EmptyWhenFullyBooked(t *testing.T) {
	grid := []string{"09:00", "09:30"}
	bookings := []models.Booking{confirmedAt(9, 0), confirmedAt(9, 30)}

	require.Empty(t, services.FilterAvailable(grid, bookings))
}

func TestSlotInstant(t *testing.T) {
	instant, err := services.SlotInstant(day, "10:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 10, 10, 30, 0, 0, time.UTC), instant)
	require.Zero(t, instant.Second())

	_, err = services.SlotInstant(day, "not-a-time")
	require.Error(t, err)
}
