// File: trabby/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trabby/config"
	"trabby/cron"
	"trabby/database"
	bookingRepo "trabby/database/repository/booking"
	"trabby/handlers"
	"trabby/middleware"
	"trabby/routes"
	"trabby/services/catalog"
	"trabby/services/contact"
	"trabby/services/notification"
	"trabby/services/tasks"
	"trabby/services/wizard"
	"trabby/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitWizardCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingsRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	catalogClient := catalog.NewHTTPClient(config.AppConfig.CatalogBaseURL)
	wizardService := &wizard.DefaultSessionService{
		Catalog: catalogClient,
	}
	contactService := &contact.DefaultContactService{}
	notificationService := &notification.DefaultNotificationService{}
	confirmationScheduler := tasks.NewConfirmationScheduler()

	// handlers.
	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	thankYouHandler := handlers.NewThankYouHandler(contactService, bookingsRepo, confirmationScheduler, logger)
	bookingHandler := handlers.NewBookingHandler(bookingsRepo)
	ferryHandler := handlers.NewFerryHandler(catalogClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Wizard endpoints.
		InitiateWizard: wizardHandler.InitiateWizard,
		GetWizard:      wizardHandler.GetWizard,
		SelectCategory: wizardHandler.SelectCategory,
		AdvanceWizard:  wizardHandler.AdvanceWizard,
		RetreatWizard:  wizardHandler.RetreatWizard,
		ConfirmWizard:  wizardHandler.ConfirmWizard,
		CancelWizard:   wizardHandler.CancelWizard,

		// Contact / thank-you endpoints.
		ShowContactDetails:  contactHandler.ShowContactDetails,
		StoreContactDetails: contactHandler.StoreContactDetails,
		StoreThankYou:       thankYouHandler.StoreThankYou,

		// Booking lookup endpoints.
		GetBookingByReference: bookingHandler.GetBookingByReference,
		ListBookingsByEmail:   bookingHandler.ListBookingsByEmail,

		// Catalog endpoints.
		ListFerries: ferryHandler.ListFerries,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background confirmation worker and health monitor.
	cron.InitConfirmationWorker(notificationService)
	utils.StartHealthMonitor(map[string]*redis.Client{
		"wizardCache": utils.GetWizardCacheClient(),
	}, database.MongoClient)

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
