// File: pillpal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pillpal/config"
	"pillpal/database"
	friendReminderRepo "pillpal/database/repository/friendreminder"
	friendshipRepo "pillpal/database/repository/friendship"
	medicationRepo "pillpal/database/repository/medication"
	reminderRepo "pillpal/database/repository/reminder"
	userRepoPkg "pillpal/database/repository/user"
	"pillpal/handlers"
	"pillpal/middleware"
	"pillpal/routes"
	"pillpal/services/friendremind"
	"pillpal/services/notification"
	"pillpal/services/reminder"
	"pillpal/services/storage"
	"pillpal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	meds := medicationRepo.NewMongoMedicationRepo()
	rems := reminderRepo.NewMongoReminderRepo()
	friendships := friendshipRepo.NewMongoFriendshipRepo()
	users := userRepoPkg.NewMongoUserRepo()
	friendReminders := friendReminderRepo.NewMongoFriendReminderRepo()

	// services.
	reminderService := reminder.NewReminderService(meds, rems, logger)

	pushService := notification.NewRestPushService(
		config.AppConfig.PushAppID,
		config.AppConfig.PushAPIKey,
		config.AppConfig.PushAPIURL,
		logger,
	)
	if !config.PushEnabled() {
		logger.Sugar().Warn("main: push provider credentials absent; friend reminders will persist without push delivery")
	}

	friendReminderService := &friendremind.DefaultFriendReminderService{
		Friendships: friendships,
		Reminders:   friendReminders,
		Users:       users,
		Push:        pushService,
		Logger:      logger,
	}

	// Absent storage credentials degrade the evidence endpoints instead of
	// failing the boot; present-but-broken credentials are still fatal.
	var storageService storage.StorageService
	if config.StorageEnabled() {
		cloud, err := storage.NewCloudinaryStorage(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize evidence photo storage: %v", err)
		}
		storageService = cloud
	} else {
		logger.Sugar().Warn("main: cloudinary credentials absent; evidence photo endpoints disabled")
		storageService = storage.NewDisabledStorage()
	}

	// handlers.
	friendReminderHandler := handlers.NewFriendReminderHandler(friendReminderService)
	medicationHandler := handlers.NewMedicationHandler(meds, reminderService)
	reminderActionHandler := handlers.NewReminderActionHandler(reminderService)
	historyHandler := handlers.NewHistoryHandler(rems, friendReminders)
	userHandler := handlers.NewUserHandler(users, friendships)
	storageHandler := handlers.NewStorageHandler(storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: users,

		SendFriendReminderHandler:  friendReminderHandler.SendFriendReminder,
		ListFriendRemindersHandler: historyHandler.ListFriendReminders,

		CreateMedicationHandler: medicationHandler.CreateMedication,
		ListMedicationsHandler:  medicationHandler.ListMedications,
		UpdateMedicationHandler: medicationHandler.UpdateMedication,
		DeleteMedicationHandler: medicationHandler.DeleteMedication,

		TakeReminderHandler:   reminderActionHandler.TakeReminder,
		SkipReminderHandler:   reminderActionHandler.SkipReminder,
		SnoozeReminderHandler: reminderActionHandler.SnoozeReminder,

		ListHistoryHandler:     historyHandler.ListHistory,
		ListFriendsHandler:     userHandler.ListFriends,
		UpdatePushTokenHandler: userHandler.UpdatePushToken,

		UploadEvidenceHandler: storageHandler.UploadEvidenceHandler,
		GetEvidenceURLHandler: storageHandler.GetEvidenceURL,
		DeleteEvidenceHandler: storageHandler.DeleteEvidence,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder clock.
	interval := time.Duration(config.AppConfig.ReminderIntervalSeconds) * time.Second
	clock := reminder.NewClock(reminderService, interval, logger)
	if err := clock.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder clock: %v", err)
	}

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

	if err := clock.Stop(); err != nil {
		logger.Sugar().Warnf("main: reminder clock shutdown error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
