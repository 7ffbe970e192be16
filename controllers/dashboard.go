package controllers

import (
	"fmt"
	"net/http"
	"time"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpcomingBooking struct {
	Customer string `json:"customer"`
	Service  string `json:"service"`
	Hour     string `json:"hour"`
	Date     string `json:"date"` // e.g. "Today", "Tomorrow", "3 days"
}

// GetDashboardOverview summarizes a barbershop's booking activity for its owner
func GetDashboardOverview(c *gin.Context) {
	shop, ok := ownedBarbershop(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := today.Add(24 * time.Hour)

	// Today's confirmed bookings
	var todayCount int64
	config.DB.Model(&models.Booking{}).
		Where("barbershop_id = ? AND status = ? AND date >= ? AND date < ?",
			shop.ID, models.BookingStatusConfirmed, today, tomorrow).
		Count(&todayCount)

	// Confirmed bookings in the next 7 days
	var weekCount int64
	config.DB.Model(&models.Booking{}).
		Where("barbershop_id = ? AND status = ? AND date >= ? AND date < ?",
			shop.ID, models.BookingStatusConfirmed, today, today.AddDate(0, 0, 7)).
		Count(&weekCount)

	// Cancellations this month
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var cancelledCount int64
	config.DB.Model(&models.Booking{}).
		Where("barbershop_id = ? AND status = ? AND updated_at >= ?",
			shop.ID, models.BookingStatusCancelled, firstOfMonth).
		Count(&cancelledCount)

	// Next bookings, for display
	var next []models.Booking
	config.DB.Preload("Service").
		Where("barbershop_id = ? AND status = ? AND date >= ?",
			shop.ID, models.BookingStatusConfirmed, now).
		Order("date ASC").
		Limit(7).
		Find(&next)

	var upcoming []UpcomingBooking
	for i := range next {
		b := &next[i]

		var customer models.User
		config.DB.Select("name").First(&customer, "id = ?", b.CustomerID)

		var label string
		switch days := utils.DaysBetween(now, b.Date); days {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", days)
		}

		upcoming = append(upcoming, UpcomingBooking{
			Customer: customer.Name,
			Service:  b.Service.Name,
			Hour:     b.Date.Format("15:04"),
			Date:     label,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"todayBookings":      todayCount,
		"weekBookings":       weekCount,
		"cancelledThisMonth": cancelledCount,
		"upcomingBookings":   upcoming,
	})
}
