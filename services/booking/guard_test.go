package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "glambook/database/repository/appointment"
	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func validRequest() BookingRequest {
	return BookingRequest{
		ProviderID:     "prov1",
		ProfessionalID: "pro1",
		ClientID:       "client1",
		ServiceIDs:     []string{"cut"},
		Date:           "2026-09-07",
		Time:           "10:00",
	}
}

func TestConfirmBookingCommits(t *testing.T) {
	var stored *models.Appointment
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			stored = appt
			return nil
		},
	}
	svc := testService(appts)

	appt, err := svc.ConfirmBooking(validRequest())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "prov1", appt.ProviderID)
	assert.Equal(t, "pro1", appt.ProfessionalID)
	assert.Equal(t, "client1", appt.ClientID)
	assert.Equal(t, "2026-09-07", appt.Date)
	assert.Equal(t, 600, appt.Start)
	assert.Equal(t, 630, appt.End)
	assert.Equal(t, 30, appt.DurationMins)
	assert.Equal(t, int64(2500), appt.TotalPriceCents)
	assert.Equal(t, models.StatusConfirmed, appt.Status)
	assert.Equal(t, testNow, appt.CreatedAt)
}

func TestConfirmBookingPendingWhenProviderVets(t *testing.T) {
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			return nil
		},
	}
	svc := testService(appts)
	vetting := testProvider()
	vetting.RequiresConfirmation = true
	svc.Providers = &fakeProviders{
		getByID: func(id string) (*models.Provider, error) { return vetting, nil },
	}

	appt, err := svc.ConfirmBooking(validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appt.Status)
}

func TestConfirmBookingValidation(t *testing.T) {
	appts := &fakeAppointments{}
	svc := testService(appts)

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"no services", func(r *BookingRequest) { r.ServiceIDs = nil }},
		{"zero duration", func(r *BookingRequest) { r.ServiceIDs = []string{"consult"} }},
		{"unknown service", func(r *BookingRequest) { r.ServiceIDs = []string{"massage"} }},
		{"missing client", func(r *BookingRequest) { r.ClientID = "" }},
		{"wrong provider", func(r *BookingRequest) { r.ProviderID = "prov2" }},
		{"bad date", func(r *BookingRequest) { r.Date = "next monday" }},
		{"bad time", func(r *BookingRequest) { r.Time = "10am" }},
		{"day off", func(r *BookingRequest) { r.Date = "2026-09-13" }},
		{"outside hours", func(r *BookingRequest) { r.Time = "08:00" }},
		{"past close", func(r *BookingRequest) { r.Time = "16:45" }},
		{"in break", func(r *BookingRequest) { r.Time = "12:15" }},
		{"straddles break", func(r *BookingRequest) { r.Time = "11:45" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.ConfirmBooking(req)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidRequest, CodeOf(err))
		})
	}
}

func TestConfirmBookingRejectsPastTimeToday(t *testing.T) {
	appts := &fakeAppointments{}
	svc := testService(appts)
	svc.Clock = fixedClock{t: time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.Time = "10:00"
	_, err := svc.ConfirmBooking(req)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidRequest, CodeOf(err))
}

// A definite overlap surfaces as a conflict and is never retried.
func TestConfirmBookingSlotConflict(t *testing.T) {
	calls := 0
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			calls++
			return appointmentRepo.ErrSlotTaken
		},
	}
	svc := testService(appts)

	_, err := svc.ConfirmBooking(validRequest())
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, CodeOf(err))
	assert.Equal(t, 1, calls)
}

// A write conflict between two racing commits is transient; the full
// validate-and-commit cycle runs again and can succeed.
func TestConfirmBookingRetriesTransientConflict(t *testing.T) {
	transient := mongo.CommandError{
		Code:   112,
		Name:   "WriteConflict",
		Labels: []string{"TransientTransactionError"},
	}
	calls := 0
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			calls++
			if calls == 1 {
				return transient
			}
			return nil
		},
	}
	svc := testService(appts)

	appt, err := svc.ConfirmBooking(validRequest())
	require.NoError(t, err)
	assert.NotNil(t, appt)
	assert.Equal(t, 2, calls)
}

func TestConfirmBookingGivesUpAfterBoundedRetries(t *testing.T) {
	transient := mongo.CommandError{
		Code:   112,
		Name:   "WriteConflict",
		Labels: []string{"TransientTransactionError"},
	}
	calls := 0
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			calls++
			return transient
		},
	}
	svc := testService(appts)

	_, err := svc.ConfirmBooking(validRequest())
	require.Error(t, err)
	assert.Equal(t, CodeUpstreamUnavailable, CodeOf(err))
	assert.Equal(t, commitAttempts, calls)
}

func TestConfirmBookingUpstreamFailure(t *testing.T) {
	appts := &fakeAppointments{
		createIfFree: func(ctx context.Context, appt *models.Appointment) error {
			return errors.New("server selection timeout")
		},
	}
	svc := testService(appts)

	_, err := svc.ConfirmBooking(validRequest())
	require.Error(t, err)
	assert.Equal(t, CodeUpstreamUnavailable, CodeOf(err))
}

func TestUpdateAppointmentStatusTransitions(t *testing.T) {
	current := &models.Appointment{
		ID:             "a1",
		ProfessionalID: "pro1",
		Date:           "2026-09-07",
		Start:          600,
		End:            630,
		Status:         models.StatusConfirmed,
	}
	var updatedTo string
	appts := &fakeAppointments{
		getByID: func(id string) (*models.Appointment, error) {
			cp := *current
			return &cp, nil
		},
		updateStatus: func(id, newStatus string) error {
			updatedTo = newStatus
			return nil
		},
	}
	svc := testService(appts)

	// Cancel a confirmed appointment.
	require.NoError(t, svc.UpdateAppointmentStatus("a1", models.StatusCancelled))
	assert.Equal(t, models.StatusCancelled, updatedTo)

	// Completing before the end time is rejected.
	err := svc.UpdateAppointmentStatus("a1", models.StatusCompleted)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidRequest, CodeOf(err))

	// After the end time it goes through.
	svc.Clock = fixedClock{t: time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.UpdateAppointmentStatus("a1", models.StatusCompleted))
	assert.Equal(t, models.StatusCompleted, updatedTo)

	// Terminal states never transition.
	current.Status = models.StatusCancelled
	err = svc.UpdateAppointmentStatus("a1", models.StatusConfirmed)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidRequest, CodeOf(err))
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	appts := &fakeAppointments{
		getByID: func(id string) (*models.Appointment, error) {
			return nil, appointmentRepo.ErrNotFound
		},
	}
	svc := testService(appts)

	err := svc.UpdateAppointmentStatus("ghost", models.StatusCancelled)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidRequest, CodeOf(err))
}
