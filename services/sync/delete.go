package sync

import (
	"context"

	"github.com/oolongtea/coursehub-sync/model"
	"gorm.io/gorm"
)

// deleteChunkSize caps how many ids go into one IN (...) list. The store
// limits bind parameters per statement; 80 is a conservative ceiling.
const deleteChunkSize = 80

// chunkIDs splits ids into groups of at most size elements.
func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	var out [][]int64
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// deleteCalendarData removes every row scoped to one calendar before a
// re-import: teacher assignments and major links (via the teaching-class
// ids), the teaching classes themselves, the calendar row and the per-term
// dimension rows. Other calendars are untouched; majors are keyed globally
// by name and survive.
func deleteCalendarData(ctx context.Context, db *gorm.DB, calendarID int) error {
	var classIDs []int64
	if err := db.WithContext(ctx).
		Model(&model.CourseDetail{}).
		Where("calendar_id = ?", calendarID).
		Pluck("id", &classIDs).Error; err != nil {
		return err
	}

	for _, chunk := range chunkIDs(classIDs, deleteChunkSize) {
		if err := db.WithContext(ctx).
			Where("course_detail_id IN ?", chunk).
			Delete(&model.ClassTeacher{}).Error; err != nil {
			return err
		}
		if err := db.WithContext(ctx).
			Where("course_detail_id IN ?", chunk).
			Delete(&model.MajorCourse{}).Error; err != nil {
			return err
		}
	}

	if err := db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Delete(&model.CourseDetail{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Delete(&model.Calendar{}).Error; err != nil {
		return err
	}

	for _, dim := range []interface{}{
		&model.TeachingLanguage{},
		&model.CourseNature{},
		&model.Assessment{},
		&model.Campus{},
		&model.Faculty{},
	} {
		if err := db.WithContext(ctx).
			Where("calendar_id = ?", calendarID).
			Delete(dim).Error; err != nil {
			return err
		}
	}

	return nil
}
