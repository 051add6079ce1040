package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glambook/models"
	"glambook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	getDayAvailability func(professionalID, date string, serviceIDs []string) (*models.DayAvailability, error)
	confirmBooking     func(req booking.BookingRequest) (*models.Appointment, error)
	updateStatus       func(id, newStatus string) error
	saveDraft          func(sessionID string, draft models.PendingBooking) error
	resumeDraft        func(sessionID, clientID, pageProviderID string) (*models.Appointment, error)
}

func (f *fakeBookingService) GetDayAvailability(professionalID, date string, serviceIDs []string) (*models.DayAvailability, error) {
	return f.getDayAvailability(professionalID, date, serviceIDs)
}

func (f *fakeBookingService) ConfirmBooking(req booking.BookingRequest) (*models.Appointment, error) {
	return f.confirmBooking(req)
}

func (f *fakeBookingService) UpdateAppointmentStatus(id, newStatus string) error {
	return f.updateStatus(id, newStatus)
}

func (f *fakeBookingService) SaveDraft(sessionID string, draft models.PendingBooking) error {
	return f.saveDraft(sessionID, draft)
}

func (f *fakeBookingService) ResumeDraft(sessionID, clientID, pageProviderID string) (*models.Appointment, error) {
	return f.resumeDraft(sessionID, clientID, pageProviderID)
}

func bookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, nil)
	r := gin.New()
	r.GET("/availability/:professionalID", h.GetDayAvailability)
	r.POST("/confirm", h.ConfirmBooking)
	r.POST("/resume", h.ResumeDraft)
	return r
}

func TestGetDayAvailabilityHandler(t *testing.T) {
	svc := &fakeBookingService{
		getDayAvailability: func(professionalID, date string, serviceIDs []string) (*models.DayAvailability, error) {
			assert.Equal(t, "pro1", professionalID)
			assert.Equal(t, "2026-09-07", date)
			assert.Equal(t, []string{"cut", "color"}, serviceIDs)
			return &models.DayAvailability{
				ProfessionalID: professionalID,
				Date:           date,
				DurationMins:   75,
				Slots:          []models.Slot{{Time: "09:00", Start: 540, Status: models.SlotAvailable}},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability/pro1?date=2026-09-07&serviceIds=cut,color", nil)
	bookingRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.DayAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Slots, 1)
	assert.Equal(t, 75, body.DurationMins)
}

func TestConfirmBookingHandlerStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid", booking.NewInvalidRequest("select at least one service"), http.StatusBadRequest},
		{"conflict", booking.NewSlotConflict("slot just booked"), http.StatusConflict},
		{"upstream", booking.NewUpstreamUnavailable("store down", nil), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeBookingService{
				confirmBooking: func(req booking.BookingRequest) (*models.Appointment, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &models.Appointment{ID: "a1", Status: models.StatusConfirmed}, nil
				},
			}

			payload, _ := json.Marshal(booking.BookingRequest{
				ProfessionalID: "pro1",
				ClientID:       "client1",
				ServiceIDs:     []string{"cut"},
				Date:           "2026-09-07",
				Time:           "10:00",
			})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/confirm", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			bookingRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestResumeDraftHandlerNoContent(t *testing.T) {
	svc := &fakeBookingService{
		resumeDraft: func(sessionID, clientID, pageProviderID string) (*models.Appointment, error) {
			return nil, nil
		},
	}

	payload := []byte(`{"clientId":"client1","providerId":"prov1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resume", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	bookingRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestResumeDraftHandlerRequiresClient(t *testing.T) {
	svc := &fakeBookingService{}

	payload := []byte(`{"providerId":"prov1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resume", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	bookingRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
