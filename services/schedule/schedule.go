package schedule

import (
	"fmt"

	professionalRepo "glambook/database/repository/professional"
	"glambook/models"
	"glambook/utils"

	"go.uber.org/zap"
)

// ScheduleService is the provider-side surface for managing a
// professional's weekly availability. The booking flow never writes
// schedules; it only reads them through the professional repository.
type ScheduleService interface {
	GetWeeklySchedule(professionalID string) (models.WeeklySchedule, error)
	UpdateWeeklySchedule(professionalID string, schedule models.WeeklySchedule) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Professionals professionalRepo.ProfessionalRepository
}

func (svc *DefaultScheduleService) GetWeeklySchedule(professionalID string) (models.WeeklySchedule, error) {
	prof, err := svc.Professionals.GetByID(professionalID)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	return prof.Schedule, nil
}

// UpdateWeeklySchedule validates and persists a professional's schedule.
// Breaks must sit inside a working range: a break outside every work
// interval would silently never apply, which is always a data-entry error.
func (svc *DefaultScheduleService) UpdateWeeklySchedule(professionalID string, schedule models.WeeklySchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	for dayIdx, day := range schedule {
		if day.IsDayOff {
			continue
		}
		if len(day.WorkIntervals) == 0 {
			return fmt.Errorf("day %d is not a day off but has no working hours", dayIdx)
		}
		for _, br := range day.BreakIntervals {
			covered := false
			for _, work := range day.WorkIntervals {
				if br.Start >= work.Start && br.End <= work.End {
					covered = true
					break
				}
			}
			if !covered {
				return fmt.Errorf("break %s-%s on day %d is outside working hours",
					models.FormatClock(br.Start), models.FormatClock(br.End), dayIdx)
			}
		}
	}

	if err := svc.Professionals.UpdateSchedule(professionalID, schedule); err != nil {
		return err
	}
	utils.GetLogger().Info("weekly schedule updated", zap.String("professionalID", professionalID))
	return nil
}
