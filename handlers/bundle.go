package handlers

import (
	"net/http"

	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Booking flow.
	GetDayAvailability gin.HandlerFunc
	ConfirmBooking     gin.HandlerFunc
	SaveDraft          gin.HandlerFunc
	ResumeDraft        gin.HandlerFunc

	// Appointments.
	ListProfessionalAppointments gin.HandlerFunc
	ListClientAppointments       gin.HandlerFunc
	UpdateAppointmentStatus      gin.HandlerFunc

	// Providers & professionals.
	GetProvider          gin.HandlerFunc
	ListProfessionals    gin.HandlerFunc
	RegisterProvider     gin.HandlerFunc
	RegisterProfessional gin.HandlerFunc

	// Schedule management.
	GetSchedule    gin.HandlerFunc
	UpdateSchedule gin.HandlerFunc
}

// HealthHandler reports the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
