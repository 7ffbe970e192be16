// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/repository"
	"barberbook-backend/services"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingController struct {
	Svc   *services.BookingService
	Store *repository.BookingStore
	Clock services.Clock
}

// CreateBookingInput defines the expected JSON structure for submitting a booking
type CreateBookingInput struct {
	BarbershopID string `json:"barbershopId" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	Date         string `json:"date"` // "2006-01-02"
	Hour         string `json:"hour"` // "HH:MM"
}

// GetAvailableSlots returns the free time labels for a barbershop on a day
func (bc *BookingController) GetAvailableSlots(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barbershop ID format")
		return
	}

	// No day selected upstream means no grid to filter
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusOK, gin.H{"slots": []string{}})
		return
	}

	day, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	var shop models.Barbershop
	if err := config.DB.First(&shop, "id = ?", shopUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barbershop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slots, err := bc.Svc.AvailableSlots(c.Request.Context(), shop.ID, day, services.HoursFor(&shop))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute availability")
		return
	}
	if slots == nil {
		slots = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"date": dateParam, "slots": slots})
}

// CreateBooking submits a booking for the acting customer
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	customerUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	shopUUID, err := uuid.Parse(input.BarbershopID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barbershop ID format")
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	// The service must belong to the target barbershop
	var service models.Service
	if err := config.DB.Where("barbershop_id = ? AND id = ? AND is_active = ?",
		shopUUID, serviceUUID, true).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found for this barbershop")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var day time.Time
	if input.Date != "" {
		day, err = time.Parse("2006-01-02", input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
	}

	booking, err := bc.Svc.Submit(c.Request.Context(), shopUUID, serviceUUID, customerUUID, day, input.Hour)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the acting customer's bookings with the derived
// finished flag computed at read time
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	customerUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	bookings, err := bc.Store.ListForCustomer(c.Request.Context(), customerUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	now := bc.Clock.Now()
	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, gin.H{
			"id":         b.ID,
			"barbershop": b.Barbershop,
			"service":    b.Service,
			"date":       b.Date,
			"status":     b.Status,
			"finished":   b.IsFinished(now),
		})
	}

	c.JSON(http.StatusOK, out)
}

// CancelBooking cancels one of the acting customer's bookings
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	customerUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := bc.Svc.Cancel(c.Request.Context(), bookingUUID, customerUUID); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// respondBookingError maps booking domain errors onto HTTP statuses
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrIncompleteSelection):
		utils.RespondWithError(c, http.StatusBadRequest, "Select a date and an hour")
	case errors.Is(err, models.ErrPastSlot):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Selected slot is in the past")
	case errors.Is(err, models.ErrSlotTaken), errors.Is(err, models.ErrSlotConflict):
		utils.RespondWithError(c, http.StatusConflict, "Slot no longer available, refresh and pick another")
	case errors.Is(err, models.ErrBookingNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, models.ErrNotOwner):
		utils.RespondWithError(c, http.StatusForbidden, "Booking belongs to another customer")
	case errors.Is(err, models.ErrAlreadyFinished):
		utils.RespondWithError(c, http.StatusConflict, "Finished bookings cannot be cancelled")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
