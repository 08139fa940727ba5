package cron

import (
	"log"
	"time"

	"github.com/oolongtea/coursehub-sync/config"
	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/services/sync"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron        *cron.Cron
	db          *gorm.DB
	syncService *sync.Service
	env         *config.EnviornmentVariable
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, syncService *sync.Service, env *config.EnviornmentVariable) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:        c,
		db:          db,
		syncService: syncService,
		env:         env,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Daily at 4:30 AM: full catalog refresh from the upstream system.
	//    Scheduled off-peak since the refresh deletes and reloads whole terms.
	if m.env.SYNC_CRON_ENABLED {
		_, err := m.cron.AddFunc("0 30 4 * * *", func() {
			m.logJobStart("scheduled_catalog_sync")
			m.RunScheduledSync()
		})
		if err != nil {
			return err
		}
	}

	// 2. Daily at 2 AM: Cleanup old log rows
	_, err := m.cron.AddFunc("0 0 2 * * *", func() {
		m.logJobStart("cleanup_old_logs")
		m.CleanupOldLogs()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	// Log to database
	cronLog := model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now(),
		Metadata:  datatypes.JSON("{}"),
	}
	m.db.Create(&cronLog)
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)

	// Update database log
	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":       "completed",
			"completed_at": time.Now(),
			"message":      message,
		})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)

	// Update database log
	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":       "failed",
			"completed_at": time.Now(),
			"error_msg":    err.Error(),
		})
}
