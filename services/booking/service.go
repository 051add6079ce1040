package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glambook/config"
	appointmentRepo "glambook/database/repository/appointment"
	professionalRepo "glambook/database/repository/professional"
	providerRepo "glambook/database/repository/provider"
	"glambook/models"
	"glambook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const upstreamAttempts = 3

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Appointments  appointmentRepo.AppointmentRepository
	Professionals professionalRepo.ProfessionalRepository
	Providers     providerRepo.ProviderRepository
	Drafts        DraftStore
	Cache         *redis.Client // nil disables availability snapshot caching
	Clock         Clock
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Clock != nil {
		return svc.Clock.Now()
	}
	return time.Now()
}

// resolveRequest loads the professional and provider, checks the service
// selection, and returns the resolved services. All user-correctable
// problems come back as InvalidRequest.
func (svc *DefaultBookingService) resolveRequest(professionalID string, serviceIDs []string) (*models.Professional, *models.Provider, []models.Service, error) {
	if len(serviceIDs) == 0 {
		return nil, nil, nil, NewInvalidRequest("select at least one service")
	}

	prof, err := svc.loadProfessional(professionalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !prof.OffersAll(serviceIDs) {
		return nil, nil, nil, NewInvalidRequest("professional does not offer all selected services")
	}

	var provider *models.Provider
	if err := withRetry(func() error {
		var perr error
		provider, perr = svc.Providers.GetByID(prof.ProviderID)
		return perr
	}, func(err error) bool { return err == providerRepo.ErrNotFound }); err != nil {
		if err == providerRepo.ErrNotFound {
			return nil, nil, nil, NewInvalidRequest("provider not found")
		}
		return nil, nil, nil, NewUpstreamUnavailable("provider store unreachable", err)
	}

	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s, ok := provider.ServiceByID(id)
		if !ok {
			return nil, nil, nil, NewInvalidRequest(fmt.Sprintf("unknown service %s", id))
		}
		services = append(services, s)
	}
	if models.TotalDuration(services) <= 0 {
		return nil, nil, nil, NewInvalidRequest("selected services resolve to zero duration")
	}

	return prof, provider, services, nil
}

func (svc *DefaultBookingService) loadProfessional(id string) (*models.Professional, error) {
	var prof *models.Professional
	if err := withRetry(func() error {
		var perr error
		prof, perr = svc.Professionals.GetByID(id)
		return perr
	}, func(err error) bool { return err == professionalRepo.ErrNotFound }); err != nil {
		if err == professionalRepo.ErrNotFound {
			return nil, NewInvalidRequest("professional not found")
		}
		return nil, NewUpstreamUnavailable("schedule store unreachable", err)
	}
	return prof, nil
}

// GetDayAvailability computes the classified slots for a professional on a
// date given the client's service selection.
func (svc *DefaultBookingService) GetDayAvailability(professionalID, date string, serviceIDs []string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()
	now := svc.now()

	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return nil, NewInvalidRequest("invalid date, expected YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, NewInvalidRequest("requested date is in the past")
	}

	prof, _, services, err := svc.resolveRequest(professionalID, serviceIDs)
	if err != nil {
		return nil, err
	}
	duration := models.TotalDuration(services)

	if cached := svc.cachedAvailability(professionalID, date, duration); cached != nil {
		return cached, nil
	}

	daySchedule := prof.Schedule.ForDate(day)

	result := &models.DayAvailability{
		ProfessionalID: professionalID,
		Date:           date,
		DurationMins:   duration,
	}

	if daySchedule.IsDayOff {
		result.Reason = "day off"
		svc.cacheAvailability(result)
		return result, nil
	}

	var appts []models.Appointment
	if err := withRetry(func() error {
		var lerr error
		appts, lerr = svc.Appointments.ListNonCancelled(professionalID, date)
		return lerr
	}, nil); err != nil {
		return nil, NewUpstreamUnavailable("appointment store unreachable", err)
	}

	result.Slots = GenerateSlots(daySchedule, bookedIntervals(appts), duration, date, now)
	if !hasAvailable(result.Slots) {
		result.Reason = "no available slots"
	}

	svc.cacheAvailability(result)
	logger.Debug("computed day availability",
		zap.String("professionalID", professionalID),
		zap.String("date", date),
		zap.Int("slots", len(result.Slots)))
	return result, nil
}

func hasAvailable(slots []models.Slot) bool {
	for _, s := range slots {
		if s.Status == models.SlotAvailable {
			return true
		}
	}
	return false
}

// withRetry runs fn up to upstreamAttempts times with incremental backoff.
// Errors matched by permanent are returned immediately.
func withRetry(fn func() error, permanent func(error) bool) error {
	var err error
	for attempt := 1; attempt <= upstreamAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if permanent != nil && permanent(err) {
			return err
		}
		if attempt < upstreamAttempts {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
	}
	return err
}

func availabilityKey(professionalID, date string, duration int) string {
	return fmt.Sprintf("%s%s:%s:%d", utils.AvailabilityKeyPrefix, professionalID, date, duration)
}

func (svc *DefaultBookingService) cachedAvailability(professionalID, date string, duration int) *models.DayAvailability {
	if svc.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := svc.Cache.Get(ctx, availabilityKey(professionalID, date, duration)).Result()
	if err != nil {
		return nil
	}
	var result models.DayAvailability
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (svc *DefaultBookingService) cacheAvailability(result *models.DayAvailability) {
	if svc.Cache == nil {
		return
	}
	ttl := time.Duration(config.AppConfig.AvailabilityCacheSecs) * time.Second
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := svc.Cache.Set(ctx, availabilityKey(result.ProfessionalID, result.Date, result.DurationMins), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
	}
}

// invalidateAvailability drops every cached snapshot for a professional and
// date after a successful commit. Durations vary per service selection, so
// the keys are matched by prefix scan.
func (svc *DefaultBookingService) invalidateAvailability(professionalID, date string) {
	if svc.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pattern := fmt.Sprintf("%s%s:%s:*", utils.AvailabilityKeyPrefix, professionalID, date)
	keys, err := svc.Cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := svc.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.Error(err))
	}
}
