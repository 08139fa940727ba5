package catalog

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/utils/cache"
	"gorm.io/gorm"
)

const latestUpdateCacheKey = "catalog:latest_update"

// Service is the read side of the course catalog. All queries are scoped to a
// term (calendar id); the cache is optional and only accelerates hot lookups.
type Service struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewService(db *gorm.DB, redisCache *cache.RedisCache) *Service {
	return &Service{db: db, cache: redisCache}
}

// Calendars lists the most recent synced terms, newest first. Older terms
// stay in the store but are not offered for browsing.
func (s *Service) Calendars(ctx context.Context) ([]model.Calendar, error) {
	var calendars []model.Calendar
	err := s.db.WithContext(ctx).
		Order("calendar_id DESC").
		Limit(8).
		Find(&calendars).Error
	return calendars, err
}

// Campuses lists the campuses seen in the given term.
func (s *Service) Campuses(ctx context.Context, calendarID int) ([]model.Campus, error) {
	var campuses []model.Campus
	err := s.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("code").
		Find(&campuses).Error
	return campuses, err
}

// Faculties lists the offering faculties seen in the given term.
func (s *Service) Faculties(ctx context.Context, calendarID int) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := s.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("code").
		Find(&faculties).Error
	return faculties, err
}

// TeachingLanguages lists the instruction languages seen in the given term.
func (s *Service) TeachingLanguages(ctx context.Context, calendarID int) ([]model.TeachingLanguage, error) {
	var languages []model.TeachingLanguage
	err := s.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("code").
		Find(&languages).Error
	return languages, err
}

// CourseNatures lists the course nature labels seen in the given term.
func (s *Service) CourseNatures(ctx context.Context, calendarID int) ([]model.CourseNature, error) {
	var natures []model.CourseNature
	err := s.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("label_id").
		Find(&natures).Error
	return natures, err
}

// Assessments lists the assessment modes seen in the given term.
func (s *Service) Assessments(ctx context.Context, calendarID int) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := s.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("mode").
		Find(&assessments).Error
	return assessments, err
}

// termMajorIDs selects the ids of every major linked to a class of the
// given term. Majors are shared across terms, so membership comes from the
// class links rather than the major row's own calendar id.
func (s *Service) termMajorIDs(calendarID int) *gorm.DB {
	classIDs := s.db.
		Model(&model.CourseDetail{}).
		Select("id").
		Where("calendar_id = ?", calendarID)
	return s.db.
		Model(&model.MajorCourse{}).
		Select("major_id").
		Where("course_detail_id IN (?)", classIDs)
}

// Grades lists the distinct enrollment years among the term's majors,
// newest first.
func (s *Service) Grades(ctx context.Context, calendarID int) ([]int, error) {
	var grades []int
	err := s.db.WithContext(ctx).
		Model(&model.Major{}).
		Distinct("grade").
		Where("id IN (?) AND grade IS NOT NULL", s.termMajorIDs(calendarID)).
		Order("grade DESC").
		Pluck("grade", &grades).Error
	return grades, err
}

// MajorsByGrade lists the term's majors for one enrollment year.
func (s *Service) MajorsByGrade(ctx context.Context, calendarID, grade int) ([]model.Major, error) {
	var majors []model.Major
	err := s.db.WithContext(ctx).
		Where("id IN (?) AND grade = ?", s.termMajorIDs(calendarID), grade).
		Order("name").
		Find(&majors).Error
	return majors, err
}

// LatestUpdateTime returns when the catalog was last refreshed, from the
// newest fetch log row. The value is cached for a minute since every catalog
// page asks for it.
func (s *Service) LatestUpdateTime(ctx context.Context) (*time.Time, error) {
	if s.cache != nil {
		var cached time.Time
		if err := s.cache.GetJSON(ctx, latestUpdateCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var row model.FetchLog
	err := s.db.WithContext(ctx).
		Order("fetch_time DESC").
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, latestUpdateCacheKey, row.FetchTime, time.Minute); err != nil {
			log.Println("catalog: latest-update cache write failed:", err)
		}
	}
	return &row.FetchTime, nil
}
