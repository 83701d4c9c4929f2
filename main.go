// File: coursely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursely/backend"
	"coursely/config"
	"coursely/cron"
	"coursely/handlers"
	"coursely/middleware"
	"coursely/routes"
	"coursely/services/admin"
	"coursely/services/booking"
	"coursely/services/cart"
	"coursely/services/catalog"
	"coursely/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	api := backend.New(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSeconds)*time.Second,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	availabilityService := &booking.DefaultAvailabilityService{
		Backend: api,
		Cache:   utils.GetCacheClient(),
	}
	submitter := &booking.ReservationSubmitter{
		Intents:      api,
		Gateway:      &booking.StripeGateway{},
		Availability: availabilityService,
	}
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	sessionKV := &utils.RedisKV{Client: utils.GetSessionCacheClient()}
	sessionService := &booking.DefaultBookingSessionService{
		Backend:      api,
		Availability: availabilityService,
		Submitter:    submitter,
		Cache:        sessionKV,
		Reminders:    reminderClient,
	}
	catalogService := &catalog.DefaultCatalogService{Backend: api}
	adminService := &admin.DefaultAdminService{Backend: api}
	cartStore := &cart.Store{Cache: sessionKV}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(sessionService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Cart:    handlers.NewCartHandler(cartStore, catalogService, logger),
		Admin:   handlers.NewAdminHandler(adminService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(api)

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
