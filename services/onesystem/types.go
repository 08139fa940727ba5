package onesystem

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream JSON is loosely typed: numeric fields arrive as numbers,
// quoted numbers or null depending on the record. FlexInt and FlexFloat
// accept all three shapes so that one malformed record cannot fail a whole
// page decode.

// FlexInt is an integer that decodes from a JSON number, string or null.
type FlexInt struct {
	Int   int64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.Int, f.Valid = 0, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.Int, f.Valid = n, true
		return nil
	}
	// Quoted or unquoted floats like "123.0" still carry a usable id.
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int64(v)) {
		f.Int, f.Valid = int64(v), true
	}
	return nil
}

// Ptr returns the value as *int, nil when absent.
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	n := int(f.Int)
	return &n
}

// FlexFloat is a float that decodes from a JSON number, string or null.
type FlexFloat struct {
	Float float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Float, f.Valid = 0, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		f.Float, f.Valid = v, true
	}
	return nil
}

// Ptr returns the value as *float64, nil when absent.
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float
	return &v
}

// TeacherRecord is one teacher entry on an upstream teaching-class record.
type TeacherRecord struct {
	ID          FlexInt `json:"id"`
	TeacherCode string  `json:"teacherCode"`
	TeacherName string  `json:"teacherName"`
}

// ClassRecord is one teaching-class record as returned by the manual-arrange
// page endpoint. String fields are kept raw here; trimming and
// empty-to-null coalescing happen in the sync layer.
type ClassRecord struct {
	ID                   FlexInt         `json:"id"`
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	CourseLabelID        FlexInt         `json:"courseLabelId"`
	CourseLabelName      string          `json:"courseLabelName"`
	AssessmentMode       string          `json:"assessmentMode"`
	AssessmentModeI18n   string          `json:"assessmentModeI18n"`
	Period               FlexFloat       `json:"period"`
	WeekHour             FlexFloat       `json:"weekHour"`
	Campus               string          `json:"campus"`
	CampusI18n           string          `json:"campusI18n"`
	Number               FlexInt         `json:"number"`
	ElcNumber            FlexInt         `json:"elcNumber"`
	StartWeek            FlexInt         `json:"startWeek"`
	EndWeek              FlexInt         `json:"endWeek"`
	CourseCode           string          `json:"courseCode"`
	CourseName           string          `json:"courseName"`
	Credits              FlexFloat       `json:"credits"`
	TeachingLanguage     string          `json:"teachingLanguage"`
	TeachingLanguageI18n string          `json:"teachingLanguageI18n"`
	Faculty              string          `json:"faculty"`
	FacultyI18n          string          `json:"facultyI18n"`
	CalendarIDI18n       string          `json:"calendarIdI18n"`
	NewCourseCode        string          `json:"newCourseCode"`
	ArrangeInfo          string          `json:"arrangeInfo"`
	TeacherList          []TeacherRecord `json:"teacherList"`
	MajorList            []string        `json:"majorList"`
}

// Page is one page of teaching-class records plus the reported total count.
type Page struct {
	Total int
	List  []ClassRecord
}

// pageEnvelope matches the raw response shape.
type pageEnvelope struct {
	Data struct {
		Total FlexInt           `json:"total_"`
		List  []json.RawMessage `json:"list"`
	} `json:"data"`
}
