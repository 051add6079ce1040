package schedule

import (
	"testing"

	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfessionals struct {
	getByID        func(id string) (*models.Professional, error)
	updateSchedule func(id string, schedule models.WeeklySchedule) error
}

func (f *fakeProfessionals) GetByID(id string) (*models.Professional, error) {
	if f.getByID == nil {
		panic("GetByID not configured")
	}
	return f.getByID(id)
}

func (f *fakeProfessionals) ListByProvider(providerID string) ([]models.Professional, error) {
	panic("ListByProvider not configured")
}

func (f *fakeProfessionals) Create(prof *models.Professional) error {
	panic("Create not configured")
}

func (f *fakeProfessionals) UpdateSchedule(id string, schedule models.WeeklySchedule) error {
	if f.updateSchedule == nil {
		panic("UpdateSchedule not configured")
	}
	return f.updateSchedule(id, schedule)
}

func workWeek() models.WeeklySchedule {
	var w models.WeeklySchedule
	for i := range w {
		w[i] = models.DailyAvailability{
			WorkIntervals:  []models.TimeInterval{{Start: 540, End: 1020}},
			BreakIntervals: []models.TimeInterval{{Start: 720, End: 780}},
		}
	}
	w[0] = models.DailyAvailability{IsDayOff: true}
	return w
}

func TestUpdateWeeklySchedulePersistsValidSchedule(t *testing.T) {
	var saved models.WeeklySchedule
	svc := &DefaultScheduleService{
		Professionals: &fakeProfessionals{
			updateSchedule: func(id string, schedule models.WeeklySchedule) error {
				assert.Equal(t, "pro1", id)
				saved = schedule
				return nil
			},
		},
	}

	sched := workWeek()
	require.NoError(t, svc.UpdateWeeklySchedule("pro1", sched))
	assert.Equal(t, sched, saved)
}

func TestUpdateWeeklyScheduleRejectsMalformedInterval(t *testing.T) {
	svc := &DefaultScheduleService{Professionals: &fakeProfessionals{}}

	sched := workWeek()
	sched[2].WorkIntervals = []models.TimeInterval{{Start: 1020, End: 540}}
	assert.Error(t, svc.UpdateWeeklySchedule("pro1", sched))
}

func TestUpdateWeeklyScheduleRequiresHoursOnWorkingDays(t *testing.T) {
	svc := &DefaultScheduleService{Professionals: &fakeProfessionals{}}

	sched := workWeek()
	sched[3] = models.DailyAvailability{} // not off, no hours
	assert.Error(t, svc.UpdateWeeklySchedule("pro1", sched))
}

func TestUpdateWeeklyScheduleRejectsUncoveredBreak(t *testing.T) {
	svc := &DefaultScheduleService{Professionals: &fakeProfessionals{}}

	sched := workWeek()
	sched[4].BreakIntervals = []models.TimeInterval{{Start: 1050, End: 1080}} // after close
	assert.Error(t, svc.UpdateWeeklySchedule("pro1", sched))

	// A break spanning the gap between split shifts is equally invalid.
	sched = workWeek()
	sched[5].WorkIntervals = []models.TimeInterval{{Start: 540, End: 720}, {Start: 780, End: 1020}}
	sched[5].BreakIntervals = []models.TimeInterval{{Start: 700, End: 800}}
	assert.Error(t, svc.UpdateWeeklySchedule("pro1", sched))
}

func TestGetWeeklySchedulePassesThrough(t *testing.T) {
	sched := workWeek()
	svc := &DefaultScheduleService{
		Professionals: &fakeProfessionals{
			getByID: func(id string) (*models.Professional, error) {
				return &models.Professional{ID: id, Schedule: sched}, nil
			},
		},
	}

	got, err := svc.GetWeeklySchedule("pro1")
	require.NoError(t, err)
	assert.Equal(t, sched, got)
}
