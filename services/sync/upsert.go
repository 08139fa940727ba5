package sync

import (
	"context"
	"log"

	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/services/onesystem"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// writeBatchSize is how many buffered fact rows are flushed per INSERT.
// Batching is a round-trip optimization only; results are identical to
// row-at-a-time writes because every statement is an idempotent upsert.
const writeBatchSize = 60

// pageState carries the per-page dedup caches. Seen-sets stop the engine
// from re-issuing a dimension upsert for a code it already wrote during this
// page; later pages may re-upsert the same code, which is harmless.
type pageState struct {
	seenLanguage   map[string]bool
	seenNature     map[int]bool
	seenAssessment map[string]bool
	seenCampus     map[string]bool
	seenFaculty    map[string]bool
	majorIDCache   map[string]uint // name -> id, 0 when unresolvable
}

func newPageState() *pageState {
	return &pageState{
		seenLanguage:   map[string]bool{},
		seenNature:     map[int]bool{},
		seenAssessment: map[string]bool{},
		seenCampus:     map[string]bool{},
		seenFaculty:    map[string]bool{},
		majorIDCache:   map[string]uint{},
	}
}

// upsertPage normalizes one page of upstream records and writes all dimension
// and fact rows for the calendar. Returns the number of teaching classes
// written. Records without a usable upstream id are skipped, not fatal.
func upsertPage(ctx context.Context, db *gorm.DB, records []onesystem.ClassRecord, calendarID int) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	state := newPageState()
	inserted := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The calendar row only needs writing once per page.
		calendar := model.Calendar{
			CalendarID:   calendarID,
			CalendarName: deref(strOrNil(records[0].CalendarIDI18n)),
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&calendar).Error; err != nil {
			return err
		}

		var (
			details      []model.CourseDetail
			teachers     []model.ClassTeacher
			majorCourses []model.MajorCourse
		)

		for _, record := range records {
			if err := upsertDimensions(tx, state, &record, calendarID); err != nil {
				return err
			}
			if err := resolveMajors(tx, state, record.MajorList, calendarID); err != nil {
				return err
			}

			if !record.ID.Valid {
				// No teaching-class id; nothing downstream can reference it.
				continue
			}
			classID := record.ID.Int

			newCourseCode, newCode := computeNewCode(record.Code, record.CourseCode, record.NewCourseCode)

			details = append(details, model.CourseDetail{
				ID:               classID,
				Code:             strOrNil(record.Code),
				Name:             strOrNil(record.Name),
				CourseLabelID:    record.CourseLabelID.Ptr(),
				AssessmentMode:   strOrNil(record.AssessmentMode),
				Period:           record.Period.Ptr(),
				WeekHour:         record.WeekHour.Ptr(),
				Campus:           strOrNil(record.Campus),
				Number:           record.Number.Ptr(),
				ElcNumber:        record.ElcNumber.Ptr(),
				StartWeek:        record.StartWeek.Ptr(),
				EndWeek:          record.EndWeek.Ptr(),
				CourseCode:       strOrNil(record.CourseCode),
				CourseName:       strOrNil(record.CourseName),
				Credit:           record.Credits.Ptr(),
				TeachingLanguage: strOrNil(record.TeachingLanguage),
				Faculty:          strOrNil(record.Faculty),
				CalendarID:       calendarID,
				NewCourseCode:    newCourseCode,
				NewCode:          newCode,
			})

			// Every teacher row keeps the full shared arrangement text;
			// per-teacher splitting is a read-time concern.
			arrangeText := deref(strOrNil(record.ArrangeInfo))
			for _, t := range record.TeacherList {
				if !t.ID.Valid {
					continue
				}
				teachers = append(teachers, model.ClassTeacher{
					ID:             t.ID.Int,
					CourseDetailID: classID,
					TeacherCode:    strOrNil(t.TeacherCode),
					TeacherName:    strOrNil(t.TeacherName),
					ArrangeText:    arrangeText,
				})
			}

			for _, major := range record.MajorList {
				name := deref(strOrNil(major))
				if name == "" {
					continue
				}
				majorID := state.majorIDCache[name]
				if majorID == 0 {
					continue
				}
				majorCourses = append(majorCourses, model.MajorCourse{
					MajorID:        majorID,
					CourseDetailID: classID,
				})
			}

			inserted++
		}

		if len(details) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(&details, writeBatchSize).Error; err != nil {
				return err
			}
		}
		if len(teachers) > 0 {
			// A teacher can appear on several classes in one page. The row
			// is keyed by teacher id and Postgres rejects a multi-row upsert
			// that touches the same key twice, so keep the last occurrence.
			teachers = dedupeTeachers(teachers)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(&teachers, writeBatchSize).Error; err != nil {
				return err
			}
		}
		if len(majorCourses) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&majorCourses, writeBatchSize).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	// Alias reconciliation is best-effort and deliberately outside the page
	// transaction: a failure here must not roll back catalog rows.
	for _, record := range records {
		if !record.ID.Valid {
			continue
		}
		newCourseCode, _ := computeNewCode(record.Code, record.CourseCode, record.NewCourseCode)
		if err := reconcileAliases(ctx, db, []string{deref(newCourseCode), record.CourseCode}); err != nil {
			log.Println("alias reconciliation failed:", err)
		}
	}

	return inserted, nil
}

// dedupeTeachers drops earlier occurrences of a teacher id, keeping order
// otherwise.
func dedupeTeachers(teachers []model.ClassTeacher) []model.ClassTeacher {
	index := make(map[int64]int, len(teachers))
	out := teachers[:0]
	for _, t := range teachers {
		if i, ok := index[t.ID]; ok {
			out[i] = t
			continue
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	return out
}

// upsertDimensions writes the record's dimension rows unless the page already
// produced them.
func upsertDimensions(tx *gorm.DB, state *pageState, record *onesystem.ClassRecord, calendarID int) error {
	conflictUpdateName := clause.OnConflict{
		Columns:   []clause.Column{{Name: "calendar_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}

	if lang := strOrNil(record.TeachingLanguage); lang != nil && !state.seenLanguage[*lang] {
		state.seenLanguage[*lang] = true
		row := model.TeachingLanguage{
			CalendarID: calendarID,
			Code:       *lang,
			Name:       deref(strOrNil(record.TeachingLanguageI18n)),
		}
		if err := tx.Clauses(conflictUpdateName).Create(&row).Error; err != nil {
			return err
		}
	}

	if labelID := record.CourseLabelID.Ptr(); labelID != nil && !state.seenNature[*labelID] {
		state.seenNature[*labelID] = true
		row := model.CourseNature{
			CalendarID: calendarID,
			LabelID:    *labelID,
			LabelName:  deref(strOrNil(record.CourseLabelName)),
		}
		conflict := clause.OnConflict{
			Columns:   []clause.Column{{Name: "calendar_id"}, {Name: "label_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"label_name"}),
		}
		if err := tx.Clauses(conflict).Create(&row).Error; err != nil {
			return err
		}
	}

	if mode := strOrNil(record.AssessmentMode); mode != nil && !state.seenAssessment[*mode] {
		state.seenAssessment[*mode] = true
		row := model.Assessment{
			CalendarID: calendarID,
			Mode:       *mode,
			Name:       deref(strOrNil(record.AssessmentModeI18n)),
		}
		conflict := clause.OnConflict{
			Columns:   []clause.Column{{Name: "calendar_id"}, {Name: "mode"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}
		if err := tx.Clauses(conflict).Create(&row).Error; err != nil {
			return err
		}
	}

	if campus := strOrNil(record.Campus); campus != nil && !state.seenCampus[*campus] {
		state.seenCampus[*campus] = true
		row := model.Campus{
			CalendarID: calendarID,
			Code:       *campus,
			Name:       deref(strOrNil(record.CampusI18n)),
		}
		if err := tx.Clauses(conflictUpdateName).Create(&row).Error; err != nil {
			return err
		}
	}

	if faculty := strOrNil(record.Faculty); faculty != nil && !state.seenFaculty[*faculty] {
		state.seenFaculty[*faculty] = true
		row := model.Faculty{
			CalendarID: calendarID,
			Code:       *faculty,
			Name:       deref(strOrNil(record.FacultyI18n)),
		}
		if err := tx.Clauses(conflictUpdateName).Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// resolveMajors upserts each major named on the record and caches its id for
// the join rows. The full descriptor string is the natural key; a conflict
// refreshes code and grade.
func resolveMajors(tx *gorm.DB, state *pageState, majorList []string, calendarID int) error {
	for _, major := range majorList {
		name := deref(strOrNil(major))
		if name == "" {
			continue
		}
		if _, ok := state.majorIDCache[name]; ok {
			continue
		}

		parsed := ParseMajorString(name)
		row := model.Major{
			Code:       parsed.Code,
			Grade:      parsed.Grade,
			Name:       parsed.Name,
			CalendarID: calendarID,
		}
		conflict := clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "grade", "calendar_id"}),
		}
		if err := tx.Clauses(conflict).Create(&row).Error; err != nil {
			return err
		}

		var ids []uint
		if err := tx.Model(&model.Major{}).
			Where("name = ?", name).
			Limit(1).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		// Cache a zero id on a miss too, so the page never retries it.
		state.majorIDCache[name] = 0
		if len(ids) > 0 {
			state.majorIDCache[name] = ids[0]
		}
	}
	return nil
}
