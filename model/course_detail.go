package model

// CourseDetail represents one teaching class: a specific offering of a course
// within a term. The primary key is the upstream numeric id. A full term
// re-sync deletes and reinserts every row scoped to that term, so no
// created/updated bookkeeping columns are kept here.
type CourseDetail struct {
	ID               int64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Code             *string  `gorm:"type:varchar(50);index" json:"code"`
	Name             *string  `gorm:"type:varchar(255)" json:"name"`
	CourseLabelID    *int     `json:"courseLabelId"`
	AssessmentMode   *string  `gorm:"type:varchar(50)" json:"assessmentMode"`
	Period           *float64 `json:"period"`
	WeekHour         *float64 `json:"weekHour"`
	Campus           *string  `gorm:"type:varchar(50)" json:"campus"`
	Number           *int     `json:"number"`
	ElcNumber        *int     `json:"elcNumber"`
	StartWeek        *int     `json:"startWeek"`
	EndWeek          *int     `json:"endWeek"`
	CourseCode       *string  `gorm:"type:varchar(50);index" json:"courseCode"`
	CourseName       *string  `gorm:"type:varchar(255)" json:"courseName"`
	Credit           *float64 `json:"credit"`
	TeachingLanguage *string  `gorm:"type:varchar(50)" json:"teachingLanguage"`
	Faculty          *string  `gorm:"type:varchar(50)" json:"faculty"`
	CalendarID       int      `gorm:"index;not null" json:"calendarId"`
	NewCourseCode    *string  `gorm:"type:varchar(50)" json:"newCourseCode"`
	NewCode          *string  `gorm:"type:varchar(50);index" json:"newCode"`

	// Relationships
	Teachers []ClassTeacher `gorm:"foreignKey:CourseDetailID" json:"teachers,omitempty"`
}

// TableName specifies the table name for CourseDetail
func (CourseDetail) TableName() string {
	return "course_details"
}

// ClassTeacher represents one teacher assigned to a teaching class. The raw
// shared arrangement text is stored verbatim; structured slots are derived at
// query time, never persisted.
type ClassTeacher struct {
	ID             int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CourseDetailID int64   `gorm:"index;not null" json:"courseDetailId"`
	TeacherCode    *string `gorm:"type:varchar(50)" json:"teacherCode"`
	TeacherName    *string `gorm:"type:varchar(100)" json:"teacherName"`
	ArrangeText    string  `gorm:"type:text" json:"arrangeText"`
}

// TableName specifies the table name for ClassTeacher
func (ClassTeacher) TableName() string {
	return "class_teachers"
}
