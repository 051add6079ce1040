package tasks

import (
	"context"
	"time"

	"glambook/config"
	appointmentRepo "glambook/database/repository/appointment"
	"glambook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypePendingExpiry is the task type for the periodic sweep that cancels
// pending appointments the provider never confirmed, so their slots free up
// for other clients.
const TypePendingExpiry = "appointment:expire_pending"

// NewPendingExpiryTask builds the periodic sweep task.
func NewPendingExpiryTask() *asynq.Task {
	return asynq.NewTask(TypePendingExpiry, nil)
}

// HandlePendingExpiry cancels pending appointments older than the
// configured confirmation deadline.
func HandlePendingExpiry(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		mins := config.AppConfig.PendingExpiryMinutes
		if mins <= 0 {
			mins = 120
		}
		cutoff := time.Now().Add(-time.Duration(mins) * time.Minute)

		n, err := repo.CancelStalePending(cutoff)
		if err != nil {
			logger.Error("pending expiry sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			logger.Info("cancelled stale pending appointments",
				zap.Int64("count", n),
				zap.Time("cutoff", cutoff))
		}
		return nil
	}
}
