package professionalRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glambook/models"
	"glambook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// legacyDayIndex maps the weekday names the old documents used to the
// WeeklySchedule array position.
var legacyDayIndex = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

// migrateLegacyHours upgrades a professional document still carrying the
// retired per-day {active, startTime, endTime} shape to the multi-interval
// schedule and rewrites it. One-time concern: once rewritten the legacy
// field is gone and this path is never taken again for that document.
func (repo *MongoProfessionalRepo) migrateLegacyHours(ctx context.Context, doc *professionalDoc) error {
	var schedule models.WeeklySchedule
	for i := range schedule {
		schedule[i] = models.DailyAvailability{IsDayOff: true}
	}

	for dayName, legacy := range doc.LegacyHours {
		idx, ok := legacyDayIndex[strings.ToLower(dayName)]
		if !ok {
			utils.GetLogger().Warn("legacy schedule has unknown day, skipping",
				zap.String("professionalID", doc.ID), zap.String("day", dayName))
			continue
		}
		day, err := legacy.Upgrade()
		if err != nil {
			// Unparseable legacy days become days off rather than
			// blocking every read of this professional.
			utils.GetLogger().Warn("legacy schedule day unparseable, marking day off",
				zap.String("professionalID", doc.ID), zap.String("day", dayName), zap.Error(err))
			day = models.DailyAvailability{IsDayOff: true}
		}
		schedule[idx] = day
	}

	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": doc.ID},
		bson.M{
			"$set":   bson.M{"schedule": schedule, "updatedAt": time.Now()},
			"$unset": bson.M{"weeklyHours": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate legacy schedule for %s: %w", doc.ID, err)
	}

	doc.Schedule = schedule
	doc.LegacyHours = nil
	return nil
}
