package handlers

import (
	"net/http"
	"strings"

	"glambook/middleware"
	"glambook/models"
	"glambook/services/booking"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the client booking flow: availability queries,
// confirmation, and pending-draft save/resume.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetDayAvailability handles GET /api/booking/availability/:professionalID?date=...&serviceIds=a,b
func (h *BookingHandler) GetDayAvailability(c *gin.Context) {
	professionalID := c.Param("professionalID")
	date := c.Query("date")
	serviceIDs := splitCSV(c.Query("serviceIds"))

	result, err := h.Svc.GetDayAvailability(professionalID, date, serviceIDs)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmBooking handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	appt, err := h.Svc.ConfirmBooking(req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// SaveDraft handles PUT /api/booking/draft. It parks an unauthenticated
// client's selection so it survives the login redirect.
func (h *BookingHandler) SaveDraft(c *gin.Context) {
	var draft models.PendingBooking
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sessionID := c.GetString(middleware.SessionIDKey)
	if err := h.Svc.SaveDraft(sessionID, draft); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// ResumeDraft handles POST /api/booking/resume, invoked right after the
// client authenticates. No content means there was nothing usable to
// resume; the client continues normally.
func (h *BookingHandler) ResumeDraft(c *gin.Context) {
	var input struct {
		ClientID   string `json:"clientId"`
		ProviderID string `json:"providerId"` // current page context
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.ClientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "clientId is required")
		return
	}

	sessionID := c.GetString(middleware.SessionIDKey)
	appt, err := h.Svc.ResumeDraft(sessionID, input.ClientID, input.ProviderID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if appt == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// respondBookingError maps the booking error taxonomy onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidRequest:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", booking.MessageOf(err))
	case booking.CodeSlotConflict:
		utils.JSONError(c, http.StatusConflict, "Slot no longer available", booking.MessageOf(err))
	case booking.CodeUpstreamUnavailable:
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "An unexpected error occurred.")
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
