// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every customer with a confirmed booking tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.Preload("Barbershop").Preload("Service").
		Where("status = ? AND date >= ? AND date < ?",
			models.BookingStatusConfirmed, tomorrow, dayAfter).
		Order("date ASC").
		Find(&bookings).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for i := range bookings {
		s.sendBookingReminder(&bookings[i])
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendBookingReminder(booking *models.Booking) {
	var customer models.User
	if err := s.db.First(&customer, "id = ?", booking.CustomerID).Error; err != nil {
		log.Printf("Booking %s: failed to load customer: %v", booking.ID, err)
		return
	}
	if customer.Phone == "" {
		return
	}

	message := fmt.Sprintf("Hi %s, a reminder of your %s appointment at %s tomorrow at %s. See you there!",
		customer.Name, booking.Service.Name, booking.Barbershop.Name, booking.Date.Format("15:04"))

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	} else {
		to = customer.Phone
	}

	// Send message via Twilio
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	// Use WhatsApp sender if available
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	// Log the reminder
	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		CustomerID:   customer.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %s: %v", booking.ID, err)
	}
}
