package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// Redis Configuration
	REDIS_URL string
	// Admin Configuration
	ADMIN_SECRET string
	// Upstream arrangement system
	ONESYSTEM_BASE_URL string
	ONESYSTEM_COOKIE   string
	// Sync Configuration
	SYNC_CALENDAR_ID  int
	SYNC_DEPTH        int
	SYNC_CRON_ENABLED bool
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	syncCalendarID, err := strconv.Atoi(os.Getenv("SYNC_CALENDAR_ID"))
	if err != nil {
		syncCalendarID = 0
	}

	syncDepth, err := strconv.Atoi(os.Getenv("SYNC_DEPTH"))
	if err != nil || syncDepth < 1 {
		syncDepth = 1
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Admin
		ADMIN_SECRET: os.Getenv("ADMIN_SECRET"),
		// Upstream
		ONESYSTEM_BASE_URL: os.Getenv("ONESYSTEM_BASE_URL"),
		ONESYSTEM_COOKIE:   os.Getenv("ONESYSTEM_COOKIE"),
		// Sync
		SYNC_CALENDAR_ID:  syncCalendarID,
		SYNC_DEPTH:        syncDepth,
		SYNC_CRON_ENABLED: os.Getenv("SYNC_CRON_ENABLED") == "true",
	}

	return envVariables, nil
}
