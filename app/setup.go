package app

import (
	"fmt"
	"os"

	"github.com/oolongtea/coursehub-sync/api"
	"github.com/oolongtea/coursehub-sync/config"
	"github.com/oolongtea/coursehub-sync/database"
	"github.com/oolongtea/coursehub-sync/router"
	"github.com/oolongtea/coursehub-sync/services/cron"
	"github.com/oolongtea/coursehub-sync/services/onesystem"
	"github.com/oolongtea/coursehub-sync/services/sync"
	"github.com/oolongtea/coursehub-sync/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Upstream client and sync service
	oneClient := onesystem.NewClient(getEnv.ONESYSTEM_BASE_URL)
	syncService := sync.NewService(store.DB(), oneClient)

	// Initialize Cron Manager
	cronManager := cron.NewCronManager(store.DB(), syncService, getEnv)
	if err := cronManager.Start(); err != nil {
		print("Warning: Failed to start cron jobs\n")
		print("Error: ", err.Error(), "\n")
		// Don't fail the app, just log the warning
		cronManager = nil
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
	})

	// Setup Routes
	router.SetupRoutes(app, store, getEnv, syncService)

	// Get the PORT & Start the Server
	return server.Run()

}
