// File: palmera/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"palmera/config"
	"palmera/cron"
	"palmera/database"
	accommodationRepo "palmera/database/repository/accommodation"
	amenityRepo "palmera/database/repository/amenity"
	blockedRepo "palmera/database/repository/blocked"
	ratesRepo "palmera/database/repository/rates"
	reservationRepo "palmera/database/repository/reservation"
	"palmera/handlers"
	"palmera/middleware"
	"palmera/routes"
	"palmera/services/auth"
	"palmera/services/blocked"
	"palmera/services/booking"
	"palmera/services/catalog"
	"palmera/services/rates"
	"palmera/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	accRepo := accommodationRepo.NewMongoAccommodationRepo()
	amRepo := amenityRepo.NewMongoAmenityRepo()
	rtRepo := ratesRepo.NewMongoRatesRepo()
	blkRepo := blockedRepo.NewMongoBlockedRepo()
	resRepo := reservationRepo.NewMongoReservationRepo()

	// background task queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer asynqClient.Close()
	cron.InitBlockSyncWorker(blkRepo)

	// services.
	paymentHandler := booking.NewPaymentHandler(logger, config.AppConfig.Currency)
	bookingService := &booking.DefaultBookingService{
		AccommodationRepo: accRepo,
		AmenityRepo:       amRepo,
		RatesRepo:         rtRepo,
		BlockedRepo:       blkRepo,
		ReservationRepo:   resRepo,
		Drafts: &booking.RedisDraftRepository{
			Client: utils.GetDraftCacheClient(),
			TTL:    time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute,
		},
		Payments: paymentHandler,
		Tasks:    &booking.AsynqEnqueuer{Client: asynqClient},
	}
	catalogService := &catalog.DefaultCatalogService{
		AccommodationRepo: accRepo,
		AmenityRepo:       amRepo,
	}
	ratesService := &rates.DefaultRatesService{Repo: rtRepo}
	blockedService := &blocked.DefaultBlockedService{Repo: blkRepo}
	authService := &auth.DefaultAuthService{
		AdminKey:   config.AppConfig.AdminAPIKey,
		Sessions:   &auth.RedisSessionStore{Client: utils.GetCacheClient()},
		SessionTTL: time.Duration(config.AppConfig.AdminSessionTTLHours) * time.Hour,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authService),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Rates:        handlers.NewRatesHandler(ratesService),
		Blocked:      handlers.NewBlockedHandler(blockedService),
		Reservations: handlers.NewReservationHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, authService)

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
