package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/services/onesystem"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Fetcher is the slice of the upstream client the orchestrator needs.
type Fetcher interface {
	FetchArrangePage(ctx context.Context, sessionCookie string, calendarID, pageNum, pageSize int) (*onesystem.Page, error)
}

// Service runs full-refresh synchronization of one or more terms from the
// upstream arrangement endpoint into the local catalog.
type Service struct {
	db      *gorm.DB
	fetcher Fetcher
}

// Result summarizes one sync run.
type Result struct {
	RunID       string   `json:"runId"`
	CalendarIDs []int    `json:"calendarIds"`
	ClassCount  int      `json:"classCount"`
	Errors      []string `json:"errors,omitempty"`
}

func NewService(db *gorm.DB, fetcher Fetcher) *Service {
	return &Service{db: db, fetcher: fetcher}
}

var (
	ErrInvalidCalendarID = errors.New("invalid calendar id")
	ErrMissingCookie     = errors.New("missing onesystem session cookie")
)

// calendarRange expands (calendarID, depth) into the list of terms to sync,
// oldest first: [calendarID-depth+1 .. calendarID]. Upstream term ids
// decrement by one per term.
func calendarRange(calendarID, depth int) []int {
	if depth < 1 {
		depth = 1
	}
	ids := make([]int, 0, depth)
	for id := calendarID - depth + 1; id <= calendarID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Run performs a full refresh of the requested terms, oldest first. A fetch
// log row is written after every imported term, and any fetch or store
// failure aborts the rest of the run. Already-imported terms stay imported.
func (s *Service) Run(ctx context.Context, sessionCookie string, calendarID, depth int) (*Result, error) {
	if calendarID <= 0 {
		return nil, ErrInvalidCalendarID
	}
	if strings.TrimSpace(sessionCookie) == "" {
		return nil, ErrMissingCookie
	}

	result := &Result{
		RunID:       uuid.NewString(),
		CalendarIDs: calendarRange(calendarID, depth),
	}

	for _, id := range result.CalendarIDs {
		started := time.Now()
		count, err := s.syncCalendar(ctx, sessionCookie, id)
		result.ClassCount += count
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("calendar %d: %v", id, err))
			log.Printf("sync: calendar %d failed: %v", id, err)
			return result, fmt.Errorf("sync calendar %d: %w", id, err)
		}
		log.Printf("sync: calendar %d done, %d classes", id, count)
		if err := s.writeFetchLog(ctx, result.RunID, id, count, started); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("calendar %d: fetch log: %v", id, err))
			return result, fmt.Errorf("record fetch log for calendar %d: %w", id, err)
		}
	}

	return result, nil
}

// syncCalendar refreshes a single term: wipe its rows first, then walk every
// page. The first page doubles as the probe for the total count.
func (s *Service) syncCalendar(ctx context.Context, sessionCookie string, calendarID int) (int, error) {
	if err := deleteCalendarData(ctx, s.db, calendarID); err != nil {
		return 0, fmt.Errorf("clear calendar: %w", err)
	}

	first, err := s.fetcher.FetchArrangePage(ctx, sessionCookie, calendarID, 1, onesystem.DefaultPageSize)
	if err != nil {
		return 0, fmt.Errorf("fetch page 1: %w", err)
	}

	total := 0
	count, err := upsertPage(ctx, s.db, first.List, calendarID)
	if err != nil {
		return total, fmt.Errorf("upsert page 1: %w", err)
	}
	total += count

	totalPages := first.Total/onesystem.DefaultPageSize + 1
	for page := 2; page <= totalPages; page++ {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		p, err := s.fetcher.FetchArrangePage(ctx, sessionCookie, calendarID, page, onesystem.DefaultPageSize)
		if err != nil {
			return total, fmt.Errorf("fetch page %d: %w", page, err)
		}
		count, err := upsertPage(ctx, s.db, p.List, calendarID)
		if err != nil {
			return total, fmt.Errorf("upsert page %d: %w", page, err)
		}
		total += count
	}

	return total, nil
}

// writeFetchLog records one imported term. The row drives the catalog's
// last-update display, so a write failure is surfaced to the caller.
func (s *Service) writeFetchLog(ctx context.Context, runID string, calendarID, classCount int, started time.Time) error {
	message := fmt.Sprintf("synced calendar %d, %d classes", calendarID, classCount)

	metadata, err := json.Marshal(map[string]any{
		"runId":      runID,
		"calendarId": calendarID,
		"classCount": classCount,
		"durationMs": time.Since(started).Milliseconds(),
	})
	if err != nil {
		metadata = []byte("{}")
	}

	row := model.FetchLog{
		FetchTime: time.Now(),
		Message:   message,
		Metadata:  datatypes.JSON(metadata),
	}
	return s.db.WithContext(ctx).Create(&row).Error
}
