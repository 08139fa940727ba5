package model

import "time"

// Course mirrors the review backend's courses table. That service owns the
// schema; the sync core only reads it during alias reconciliation and must
// not migrate it.
type Course struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	Code       string  `gorm:"type:varchar(50);index" json:"code"`
	Name       string  `gorm:"type:varchar(255)" json:"name"`
	Credit     float64 `json:"credit"`
	Department string  `gorm:"type:varchar(255)" json:"department"`
}

// TableName specifies the table name for Course
func (Course) TableName() string {
	return "courses"
}

// CourseAlias binds an externally-sourced course code to a review-system
// course id, letting reviews be found by either the historical or the renamed
// code. Created lazily the first time a code is observed to match.
type CourseAlias struct {
	System    string    `gorm:"primaryKey;type:varchar(50)" json:"system"`
	Alias     string    `gorm:"primaryKey;type:varchar(100)" json:"alias"`
	CourseID  int64     `gorm:"not null;index" json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for CourseAlias
func (CourseAlias) TableName() string {
	return "course_aliases"
}
