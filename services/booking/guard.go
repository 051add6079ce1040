package booking

import (
	"context"
	"time"

	appointmentRepo "glambook/database/repository/appointment"
	"glambook/models"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// commitAttempts bounds how many times a validate-and-commit cycle is
// re-run after a transient transaction conflict. A definite overlap is
// never retried: the same slot is doomed and the client must re-select.
const commitAttempts = 3

// ConfirmBooking is the sole correctness boundary against double-booking.
// The slot list the client saw is advisory; the booked-interval set is
// re-derived from the store immediately before commit, inside the store's
// transaction.
func (svc *DefaultBookingService) ConfirmBooking(req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	now := svc.now()

	prof, provider, services, err := svc.resolveRequest(req.ProfessionalID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if req.ProviderID != "" && req.ProviderID != prof.ProviderID {
		return nil, NewInvalidRequest("professional does not belong to the selected provider")
	}
	if req.ClientID == "" {
		return nil, NewInvalidRequest("missing client")
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
	if err != nil {
		return nil, NewInvalidRequest("invalid date, expected YYYY-MM-DD")
	}
	start, err := models.ParseClock(req.Time)
	if err != nil {
		return nil, NewInvalidRequest("invalid start time, expected HH:MM")
	}

	duration := models.TotalDuration(services)
	proposed := models.TimeInterval{Start: start, End: start + duration}

	if err := svc.checkSchedule(prof.Schedule.ForDate(day), proposed, req.Date, now); err != nil {
		return nil, err
	}

	status := models.StatusConfirmed
	if provider.RequiresConfirmation {
		status = models.StatusPending
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ProviderID:      prof.ProviderID,
		ProfessionalID:  prof.ID,
		ClientID:        req.ClientID,
		ServiceIDs:      req.ServiceIDs,
		Date:            req.Date,
		Start:           proposed.Start,
		End:             proposed.End,
		DurationMins:    duration,
		TotalPriceCents: models.TotalPrice(services),
		Status:          status,
		CreatedAt:       now,
	}

	if err := svc.commit(appt); err != nil {
		return nil, err
	}

	svc.invalidateAvailability(prof.ID, req.Date)
	logger.Info("appointment committed",
		zap.String("appointmentID", appt.ID),
		zap.String("professionalID", prof.ID),
		zap.String("date", appt.Date),
		zap.String("start", req.Time),
		zap.String("status", appt.Status))
	return appt, nil
}

// checkSchedule rejects proposals the schedule itself forbids: outside any
// work interval, overlapping a break, or already in the past. These are
// user-correctable, so they surface as InvalidRequest rather than conflict.
func (svc *DefaultBookingService) checkSchedule(day models.DailyAvailability, proposed models.TimeInterval, date string, now time.Time) error {
	if day.IsDayOff {
		return NewInvalidRequest("professional is off on the selected day")
	}
	fits := false
	for _, work := range day.WorkIntervals {
		if work.Contains(proposed.Start, proposed.End-proposed.Start) {
			fits = true
			break
		}
	}
	if !fits {
		return NewInvalidRequest("selected time is outside working hours")
	}
	for _, br := range day.BreakIntervals {
		if proposed.Overlaps(br) {
			return NewInvalidRequest("selected time falls in a break")
		}
	}
	if now.Format("2006-01-02") == date && proposed.Start < now.Hour()*60+now.Minute() {
		return NewInvalidRequest("selected time is already past")
	}
	return nil
}

// commit drives the repository's atomic create, retrying the full cycle on
// transient transaction conflicts.
func (svc *DefaultBookingService) commit(appt *models.Appointment) error {
	logger := utils.GetLogger()

	for attempt := 1; attempt <= commitAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := svc.Appointments.CreateIfFree(ctx, appt)
		cancel()

		if err == nil {
			return nil
		}
		if err == appointmentRepo.ErrSlotTaken {
			return NewSlotConflict("the selected slot was just booked, pick another time")
		}
		if appointmentRepo.IsTransient(err) && attempt < commitAttempts {
			logger.Warn("transient booking conflict, retrying",
				zap.String("appointmentID", appt.ID), zap.Int("attempt", attempt))
			time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
			continue
		}
		return NewUpstreamUnavailable("appointment store unreachable", err)
	}
	return NewUpstreamUnavailable("appointment store kept conflicting", nil)
}

// UpdateAppointmentStatus transitions an appointment through its lifecycle.
// Appointments are never deleted.
func (svc *DefaultBookingService) UpdateAppointmentStatus(id, newStatus string) error {
	appt, err := svc.Appointments.GetByID(id)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return NewInvalidRequest("appointment not found")
		}
		return NewUpstreamUnavailable("appointment store unreachable", err)
	}

	if !models.ValidStatusTransition(appt.Status, newStatus) {
		return NewInvalidRequest("invalid status transition " + appt.Status + " -> " + newStatus)
	}

	if newStatus == models.StatusCompleted {
		now := svc.now()
		day, derr := time.ParseInLocation("2006-01-02", appt.Date, now.Location())
		if derr != nil {
			return NewInvalidRequest("appointment has a malformed date")
		}
		endAt := day.Add(time.Duration(appt.End) * time.Minute)
		if now.Before(endAt) {
			return NewInvalidRequest("appointment cannot be completed before it ends")
		}
	}

	if err := svc.Appointments.UpdateStatus(id, newStatus); err != nil {
		return NewUpstreamUnavailable("failed to update appointment status", err)
	}

	// A cancellation frees the slot; drop stale snapshots.
	if newStatus == models.StatusCancelled {
		svc.invalidateAvailability(appt.ProfessionalID, appt.Date)
	}
	return nil
}
