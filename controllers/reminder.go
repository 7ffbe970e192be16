// controllers/reminder.go
package controllers

import (
	"net/http"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetReminderLogs lists the reminder delivery log for a barbershop's bookings
func GetReminderLogs(c *gin.Context) {
	shop, ok := ownedBarbershop(c)
	if !ok {
		return
	}

	var logs []models.ReminderLog
	err := config.DB.
		Joins("JOIN bookings ON bookings.id = reminder_logs.booking_id").
		Where("bookings.barbershop_id = ?", shop.ID).
		Order("reminder_logs.sent_at DESC").
		Limit(100).
		Find(&logs).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
