package main

import (
	"fmt"
	"log"
	"os"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/routes"
	"barberbook-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Barbershop{},
		&models.Service{},
		&models.Booking{},
		&models.ReminderLog{},
	)

	// One confirmed booking per (barbershop, instant); cancelled rows do not occupy
	config.DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_confirmed_slot
		ON bookings (barbershop_id, date)
		WHERE status = 'confirmed'`)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
