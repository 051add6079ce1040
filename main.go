package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glambook/config"
	"glambook/cron"
	"glambook/database"
	appointmentRepo "glambook/database/repository/appointment"
	professionalRepo "glambook/database/repository/professional"
	providerRepo "glambook/database/repository/provider"
	"glambook/handlers"
	"glambook/middleware"
	"glambook/routes"
	"glambook/services/booking"
	"glambook/services/schedule"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	profRepo := professionalRepo.NewMongoProfessionalRepo()
	provRepo := providerRepo.NewMongoProviderRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Appointments:  apptRepo,
		Professionals: profRepo,
		Providers:     provRepo,
		Drafts:        &booking.RedisDraftStore{Client: utils.GetSessionCacheClient()},
		Cache:         utils.GetCacheClient(),
		Clock:         booking.SystemClock(),
	}
	scheduleService := &schedule.DefaultScheduleService{
		Professionals: profRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(apptRepo, bookingService)
	providerHandler := handlers.NewProviderHandler(provRepo, profRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetDayAvailability: bookingHandler.GetDayAvailability,
		ConfirmBooking:     bookingHandler.ConfirmBooking,
		SaveDraft:          bookingHandler.SaveDraft,
		ResumeDraft:        bookingHandler.ResumeDraft,

		ListProfessionalAppointments: appointmentHandler.ListForProfessional,
		ListClientAppointments:       appointmentHandler.ListForClient,
		UpdateAppointmentStatus:      appointmentHandler.UpdateStatus,

		GetProvider:          providerHandler.GetProvider,
		ListProfessionals:    providerHandler.ListProfessionals,
		RegisterProvider:     providerHandler.RegisterProvider,
		RegisterProfessional: providerHandler.RegisterProfessional,

		GetSchedule:    scheduleHandler.GetSchedule,
		UpdateSchedule: scheduleHandler.UpdateSchedule,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for expiring stale pending appointments.
	cron.InitExpiryWorker(apptRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
