package sync

import (
	"context"
	"errors"
	"time"

	"github.com/oolongtea/coursehub-sync/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AliasSystem identifies this upstream catalog in the course_aliases table.
const AliasSystem = "onesystem"

// reconcileAliases binds a record's course codes to an existing review-system
// course. Candidates are the renamed code first, then the original; the first
// course whose code matches any candidate wins, and alias rows are upserted
// for every candidate. Most upstream records have no review-system entry yet,
// so no match is a silent no-op.
func reconcileAliases(ctx context.Context, db *gorm.DB, candidates []string) error {
	var codes []string
	for _, c := range candidates {
		if p := strOrNil(c); p != nil {
			codes = append(codes, *p)
		}
	}
	if len(codes) == 0 {
		return nil
	}

	var course model.Course
	err := db.WithContext(ctx).
		Where("code IN ?", codes).
		Limit(1).
		Take(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	aliases := make([]model.CourseAlias, 0, len(codes))
	for _, code := range codes {
		aliases = append(aliases, model.CourseAlias{
			System:    AliasSystem,
			Alias:     code,
			CourseID:  course.ID,
			CreatedAt: time.Now(),
		})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "system"}, {Name: "alias"}},
			DoUpdates: clause.AssignmentColumns([]string{"course_id"}),
		}).
		Create(&aliases).Error
}
