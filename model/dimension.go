package model

// Dimension rows carry the localized display name for each code the upstream
// system uses. All of them are scoped per calendar: the same code can render
// differently across terms, so the composite primary key includes the
// calendar id.

// TeachingLanguage maps a teaching-language code to its display name.
type TeachingLanguage struct {
	CalendarID int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	Code       string `gorm:"primaryKey;type:varchar(50)" json:"code"`
	Name       string `gorm:"type:varchar(100)" json:"name"`
}

// TableName specifies the table name for TeachingLanguage
func (TeachingLanguage) TableName() string {
	return "teaching_languages"
}

// CourseNature maps a course-label id to its display name.
type CourseNature struct {
	CalendarID int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	LabelID    int    `gorm:"primaryKey;autoIncrement:false" json:"labelId"`
	LabelName  string `gorm:"type:varchar(100)" json:"labelName"`
}

// TableName specifies the table name for CourseNature
func (CourseNature) TableName() string {
	return "course_natures"
}

// Assessment maps an assessment-mode code to its display name.
type Assessment struct {
	CalendarID int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	Mode       string `gorm:"primaryKey;type:varchar(50)" json:"mode"`
	Name       string `gorm:"type:varchar(100)" json:"name"`
}

// TableName specifies the table name for Assessment
func (Assessment) TableName() string {
	return "assessments"
}

// Campus maps a campus code to its display name.
type Campus struct {
	CalendarID int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	Code       string `gorm:"primaryKey;type:varchar(50)" json:"code"`
	Name       string `gorm:"type:varchar(100)" json:"name"`
}

// TableName specifies the table name for Campus
func (Campus) TableName() string {
	return "campuses"
}

// Faculty maps a faculty (teaching unit) code to its display name.
type Faculty struct {
	CalendarID int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	Code       string `gorm:"primaryKey;type:varchar(50)" json:"code"`
	Name       string `gorm:"type:varchar(150)" json:"name"`
}

// TableName specifies the table name for Faculty
func (Faculty) TableName() string {
	return "faculties"
}
