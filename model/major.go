package model

// Major represents one (grade, major) cohort parsed from the upstream major
// descriptor string. The full descriptor is the natural key; code and grade
// are best-effort extractions and may be null.
type Major struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Code       *string `gorm:"type:varchar(50);index" json:"code"`
	Grade      *int    `json:"grade"`
	Name       string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CalendarID int     `gorm:"index" json:"calendarId"`
}

// TableName specifies the table name for Major
func (Major) TableName() string {
	return "majors"
}

// MajorCourse links a major to a teaching class it can elect.
type MajorCourse struct {
	MajorID        uint  `gorm:"primaryKey;autoIncrement:false" json:"majorId"`
	CourseDetailID int64 `gorm:"primaryKey;autoIncrement:false" json:"courseDetailId"`
}

// TableName specifies the table name for MajorCourse
func (MajorCourse) TableName() string {
	return "major_courses"
}
