package cron

import (
	"log"
	"time"

	"glambook/config"
	appointmentRepo "glambook/database/repository/appointment"
	"glambook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker and its periodic scheduler in the
// background. The worker owns the pending-appointment expiry sweep.
func InitExpiryWorker(repo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePendingExpiry, tasks.HandlePendingExpiry(repo))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 5m", tasks.NewPendingExpiryTask()); err != nil {
		log.Fatalf("[ExpiryWorker] failed to register expiry schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ExpiryWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}
