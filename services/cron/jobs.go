package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/oolongtea/coursehub-sync/model"
)

// RunScheduledSync refreshes the configured terms from the upstream system.
// Runs daily; skipped entirely when the term or session cookie is not
// configured since an unauthenticated run would only produce noise.
func (m *CronManager) RunScheduledSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	jobName := "scheduled_catalog_sync"

	if m.env.SYNC_CALENDAR_ID <= 0 {
		m.logJobComplete(jobName, "Skipped: no sync calendar configured")
		return
	}
	if m.env.ONESYSTEM_COOKIE == "" {
		m.logJobError(jobName, fmt.Errorf("no upstream session cookie configured"))
		return
	}

	result, err := m.syncService.Run(ctx, m.env.ONESYSTEM_COOKIE, m.env.SYNC_CALENDAR_ID, m.env.SYNC_DEPTH)
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Run %s: synced %d calendars, %d classes",
		result.RunID, len(result.CalendarIDs), result.ClassCount))
}

// CleanupOldLogs removes old log rows to keep the database small.
// Runs daily at 2 AM.
func (m *CronManager) CleanupOldLogs() {
	jobName := "cleanup_old_logs"

	totalCleaned := 0

	// 1. Clean up old cron job logs (keep only last 90 days)
	cutoffLogs := time.Now().Add(-90 * 24 * time.Hour)
	result := m.db.Where("created_at < ?", cutoffLogs).Delete(&model.CronJobLog{})
	if result.Error != nil {
		log.Printf("[CRON] Failed to clean cron logs: %v", result.Error)
	} else {
		log.Printf("[CRON] Cleaned %d old cron logs", result.RowsAffected)
		totalCleaned += int(result.RowsAffected)
	}

	// 2. Clean up old fetch logs (keep only last 180 days)
	cutoffFetch := time.Now().Add(-180 * 24 * time.Hour)
	result = m.db.Where("fetch_time < ?", cutoffFetch).Delete(&model.FetchLog{})
	if result.Error != nil {
		log.Printf("[CRON] Failed to clean fetch logs: %v", result.Error)
	} else {
		log.Printf("[CRON] Cleaned %d old fetch logs", result.RowsAffected)
		totalCleaned += int(result.RowsAffected)
	}

	m.logJobComplete(jobName, fmt.Sprintf("Cleaned up %d total records", totalCleaned))
}
