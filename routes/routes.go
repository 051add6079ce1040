package routes

import (
	"time"

	"glambook/handlers"
	"glambook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.SessionMiddleware())
		booking.GET("/availability/:professionalID", hb.GetDayAvailability)
		booking.POST("/confirm", hb.ConfirmBooking)
		booking.PUT("/draft", hb.SaveDraft)
		booking.POST("/resume", hb.ResumeDraft)
	}
}

// RegisterAppointmentRoutes registers appointment listing and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	appts := r.Group("/api/appointments")
	{
		appts.GET("/professional/:id", hb.ListProfessionalAppointments)
		appts.GET("/client/:id", hb.ListClientAppointments)
		appts.PATCH("/:id/status", hb.UpdateAppointmentStatus)
	}
}

// RegisterProviderRoutes registers provider and professional management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	providers := r.Group("/api/providers")
	{
		providers.POST("/register", hb.RegisterProvider)
		providers.GET("/:id", hb.GetProvider)
		providers.GET("/:id/professionals", hb.ListProfessionals)
		providers.POST("/:id/professionals", hb.RegisterProfessional)
	}
}

// RegisterScheduleRoutes registers weekly schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	profs := r.Group("/api/professionals")
	{
		profs.GET("/:id/schedule", hb.GetSchedule)
		profs.PUT("/:id/schedule", hb.UpdateSchedule)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
