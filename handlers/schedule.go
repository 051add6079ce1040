package handlers

import (
	"net/http"

	professionalRepo "glambook/database/repository/professional"
	"glambook/models"
	"glambook/services/schedule"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the provider-side weekly schedule management
// endpoints.
type ScheduleHandler struct {
	Svc schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// GetSchedule handles GET /api/professionals/:id/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	sched, err := h.Svc.GetWeeklySchedule(c.Param("id"))
	if err != nil {
		if err == professionalRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Professional not found", "")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": sched})
}

// UpdateSchedule handles PUT /api/professionals/:id/schedule
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var input struct {
		Schedule models.WeeklySchedule `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateWeeklySchedule(c.Param("id"), input.Schedule); err != nil {
		if err == professionalRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Professional not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
