package handlers

import (
	"net/http"

	appointmentRepo "glambook/database/repository/appointment"
	"glambook/services/booking"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes appointment listings and lifecycle
// transitions. Deletion is never exposed; cancelled records remain as an
// audit trail.
type AppointmentHandler struct {
	Repo appointmentRepo.AppointmentRepository
	Svc  booking.BookingService
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Svc: svc}
}

// ListForProfessional handles GET /api/appointments/professional/:id?date=...
func (h *AppointmentHandler) ListForProfessional(c *gin.Context) {
	professionalID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date query parameter is required")
		return
	}

	appts, err := h.Repo.ListNonCancelled(professionalID, date)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListForClient handles GET /api/appointments/client/:id
func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	appts, err := h.Repo.ListByClient(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateStatus handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateAppointmentStatus(c.Param("id"), input.Status); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
