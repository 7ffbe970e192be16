package routes

import (
	"barberbook-backend/config"
	"barberbook-backend/controllers"
	"barberbook-backend/repository"
	"barberbook-backend/services"
	"barberbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	store := repository.NewBookingStore(config.DB)
	clock := services.RealClock{}
	bookingC := &controllers.BookingController{
		Svc:   services.NewBookingService(store, clock),
		Store: store,
		Clock: clock,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Barbershop routes
		barbershops := api.Group("/barbershops")
		{
			barbershops.POST("", controllers.CreateBarbershop)
			barbershops.GET("", controllers.GetBarbershops)
			barbershops.GET("/:id", controllers.GetBarbershop)
			barbershops.PUT("/:id/hours", controllers.UpdateWorkingHours)

			// Service catalog
			barbershops.GET("/:id/services", controllers.GetServices)
			barbershops.POST("/:id/services", controllers.CreateService)
			barbershops.PUT("/:id/services/:serviceId", controllers.UpdateService)
			barbershops.DELETE("/:id/services/:serviceId", controllers.DeleteService)

			// Availability
			barbershops.GET("/:id/slots", bookingC.GetAvailableSlots)

			// Owner views
			barbershops.GET("/:id/dashboard", controllers.GetDashboardOverview)
			barbershops.GET("/:id/reminders", controllers.GetReminderLogs)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingC.CreateBooking)
			bookings.GET("", bookingC.GetMyBookings)
			bookings.DELETE("/:id", bookingC.CancelBooking)
		}
	}

	return r
}
