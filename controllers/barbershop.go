// controllers/barbershop.go
package controllers

import (
	"errors"
	"net/http"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBarbershopInput defines the expected JSON structure for creating a barbershop
type CreateBarbershopInput struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	ImageURL    string `json:"imageUrl"`
	OpenHour    *int   `json:"openHour"`
	CloseHour   *int   `json:"closeHour"`
	SlotMinutes *int   `json:"slotMinutes"`
}

// UpdateHoursInput defines the expected JSON structure for updating operating hours
type UpdateHoursInput struct {
	OpenHour    int `json:"openHour" binding:"min=0,max=23"`
	CloseHour   int `json:"closeHour" binding:"min=1,max=24"`
	SlotMinutes int `json:"slotMinutes" binding:"required,min=1"`
}

// CreateBarbershop registers a new barbershop owned by the acting user
func CreateBarbershop(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateBarbershopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	shop := models.Barbershop{
		ID:          uuid.New(),
		OwnerUserID: userUUID,
		Name:        input.Name,
		Address:     input.Address,
		ImageURL:    input.ImageURL,
		OpenHour:    9,
		CloseHour:   19,
		SlotMinutes: 30,
	}
	if input.OpenHour != nil {
		shop.OpenHour = *input.OpenHour
	}
	if input.CloseHour != nil {
		shop.CloseHour = *input.CloseHour
	}
	if input.SlotMinutes != nil {
		shop.SlotMinutes = *input.SlotMinutes
	}

	if shop.OpenHour >= shop.CloseHour || shop.SlotMinutes <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid operating hours")
		return
	}

	if err := config.DB.Create(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barbershop")
		return
	}

	// Owners keep their customer role until first shop creation
	config.DB.Model(&models.User{}).Where("id = ?", userUUID).Update("role", "owner")

	c.JSON(http.StatusCreated, shop)
}

// GetBarbershops lists all barbershops
func GetBarbershops(c *gin.Context) {
	var shops []models.Barbershop
	if err := config.DB.Find(&shops).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbershops")
		return
	}

	c.JSON(http.StatusOK, shops)
}

// GetBarbershop retrieves one barbershop with its active services
func GetBarbershop(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barbershop ID format")
		return
	}

	var shop models.Barbershop
	if err := config.DB.Preload("Services", "is_active = ?", true).
		First(&shop, "id = ?", shopUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barbershop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateWorkingHours changes a barbershop's operating-hours configuration
func UpdateWorkingHours(c *gin.Context) {
	shop, ok := ownedBarbershop(c)
	if !ok {
		return
	}

	var input UpdateHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.OpenHour >= input.CloseHour {
		utils.RespondWithError(c, http.StatusBadRequest, "Open hour must be before close hour")
		return
	}

	updates := map[string]interface{}{
		"open_hour":    input.OpenHour,
		"close_hour":   input.CloseHour,
		"slot_minutes": input.SlotMinutes,
	}
	if err := config.DB.Model(shop).Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, shop)
}
