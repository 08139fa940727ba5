package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/services/arrangement"
	"gorm.io/gorm"
)

const searchLimit = 100

// TeacherView is one teacher on a class, with the shared arrangement text
// already dropped in favor of structured slots on the class.
type TeacherView struct {
	TeacherCode *string `json:"teacherCode"`
	TeacherName *string `json:"teacherName"`
}

// ClassView is a teaching class with its arrangement expanded into sorted
// slots. Slots are derived per request from the stored text, never persisted.
type ClassView struct {
	model.CourseDetail
	TeacherViews []TeacherView      `json:"teacherList"`
	Slots        []arrangement.Slot `json:"slots"`
}

// newClassView expands a class row into its view. Teacher rows of a class
// usually share one arrangement blob; merging across all of them deduplicates
// the shared lines.
func newClassView(detail model.CourseDetail) ClassView {
	view := ClassView{
		CourseDetail: detail,
		TeacherViews: make([]TeacherView, 0, len(detail.Teachers)),
	}
	blocks := make([]string, 0, len(detail.Teachers))
	for _, t := range detail.Teachers {
		view.TeacherViews = append(view.TeacherViews, TeacherView{
			TeacherCode: t.TeacherCode,
			TeacherName: t.TeacherName,
		})
		blocks = append(blocks, t.ArrangeText)
	}
	view.Slots = arrangement.Merge(blocks)
	view.Teachers = nil
	return view
}

func newClassViews(details []model.CourseDetail) []ClassView {
	views := make([]ClassView, 0, len(details))
	for _, detail := range details {
		views = append(views, newClassView(detail))
	}
	return views
}

// ClassesByCourseCode lists every teaching class of the given courses in the
// term, slots expanded. A code matches on the renamed code or the original.
func (s *Service) ClassesByCourseCode(ctx context.Context, calendarID int, courseCodes ...string) ([]ClassView, error) {
	codes := make([]string, 0, len(courseCodes))
	for _, code := range courseCodes {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return []ClassView{}, nil
	}

	var details []model.CourseDetail
	err := s.db.WithContext(ctx).
		Preload("Teachers").
		Where("calendar_id = ?", calendarID).
		Where("new_course_code IN ? OR course_code IN ?", codes, codes).
		Order("id").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return newClassViews(details), nil
}

// ClassesByNature lists the term's classes carrying one course nature label.
func (s *Service) ClassesByNature(ctx context.Context, calendarID, labelID int) ([]ClassView, error) {
	var details []model.CourseDetail
	err := s.db.WithContext(ctx).
		Preload("Teachers").
		Where("calendar_id = ? AND course_label_id = ?", calendarID, labelID).
		Order("id").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return newClassViews(details), nil
}

// ClassesByMajor lists the term's classes attached to one major.
func (s *Service) ClassesByMajor(ctx context.Context, calendarID int, majorID uint) ([]ClassView, error) {
	var details []model.CourseDetail
	err := s.db.WithContext(ctx).
		Preload("Teachers").
		Where("calendar_id = ?", calendarID).
		Where("id IN (?)", s.db.Model(&model.MajorCourse{}).
			Select("course_detail_id").
			Where("major_id = ?", majorID)).
		Order("id").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return newClassViews(details), nil
}

// SearchFilter narrows a catalog search. Query matches codes, names and
// teacher names; Campus and Faculty are exact-match narrowing filters.
type SearchFilter struct {
	Query   string
	Campus  string
	Faculty string
}

func (f SearchFilter) empty() bool {
	return strings.TrimSpace(f.Query) == "" &&
		strings.TrimSpace(f.Campus) == "" &&
		strings.TrimSpace(f.Faculty) == ""
}

// SearchCourses finds the term's classes matching the filter, capped at
// searchLimit rows.
func (s *Service) SearchCourses(ctx context.Context, calendarID int, filter SearchFilter) ([]ClassView, error) {
	if filter.empty() {
		return []ClassView{}, nil
	}

	q := s.db.WithContext(ctx).
		Preload("Teachers").
		Where("calendar_id = ?", calendarID)

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + query + "%"
		byTeacher := s.db.Model(&model.ClassTeacher{}).
			Select("course_detail_id").
			Where("teacher_name ILIKE ?", pattern)
		q = q.Where("course_code ILIKE ? OR course_name ILIKE ? OR name ILIKE ? OR new_course_code ILIKE ? OR id IN (?)",
			pattern, pattern, pattern, pattern, byTeacher)
	}
	if campus := strings.TrimSpace(filter.Campus); campus != "" {
		q = q.Where("campus = ?", campus)
	}
	if faculty := strings.TrimSpace(filter.Faculty); faculty != "" {
		q = q.Where("faculty = ?", faculty)
	}

	var details []model.CourseDetail
	err := q.Order("id").
		Limit(searchLimit).
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return newClassViews(details), nil
}

// CoursesByTime finds the term's classes that occupy the given weekday and
// section. Matching runs on the stored arrangement text with the section's
// period patterns, then is confirmed against the parsed slots to weed out
// pattern near-misses.
func (s *Service) CoursesByTime(ctx context.Context, calendarID, day, section int) ([]ClassView, error) {
	patterns := arrangement.SlotQueryPatterns(day, section)
	if patterns == nil {
		return []ClassView{}, nil
	}

	sub := s.db.Model(&model.ClassTeacher{}).
		Select("course_detail_id").
		Where("arrange_text LIKE ?", patterns[0])
	for _, p := range patterns[1:] {
		sub = sub.Or("arrange_text LIKE ?", p)
	}

	var details []model.CourseDetail
	err := s.db.WithContext(ctx).
		Preload("Teachers").
		Where("calendar_id = ?", calendarID).
		Where("id IN (?)", sub).
		Order("id").
		Find(&details).Error
	if err != nil {
		return nil, err
	}

	views := newClassViews(details)
	filtered := views[:0]
	for _, view := range views {
		if slotsCover(view.Slots, day, section) {
			filtered = append(filtered, view)
		}
	}
	return filtered, nil
}

// slotsCover reports whether any parsed slot lands on the weekday and
// section. Sections pair up class periods: section n covers periods 2n-1 and
// 2n, with the evening section 6 reaching period 12.
func slotsCover(slots []arrangement.Slot, day, section int) bool {
	lo := section*2 - 1
	hi := section * 2
	if section == 6 {
		hi = 12
	}
	for _, slot := range slots {
		if slot.Day == nil || *slot.Day != day {
			continue
		}
		for _, p := range slot.Periods {
			if p >= lo && p <= hi {
				return true
			}
		}
	}
	return false
}

// ResolveCourseByAlias maps an external course code to the internal course
// via the alias table. Unknown aliases resolve to nil without error.
func (s *Service) ResolveCourseByAlias(ctx context.Context, system, alias string) (*model.Course, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, nil
	}

	var row model.CourseAlias
	err := s.db.WithContext(ctx).
		Where("system = ? AND alias = ?", system, alias).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var course model.Course
	err = s.db.WithContext(ctx).
		Where("id = ?", row.CourseID).
		Take(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}
