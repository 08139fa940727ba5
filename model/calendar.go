package model

// Calendar represents one academic term in the upstream system. The primary
// key is the upstream calendar id, not an auto-increment.
type Calendar struct {
	CalendarID   int    `gorm:"primaryKey;autoIncrement:false" json:"calendarId"`
	CalendarName string `gorm:"type:varchar(100)" json:"calendarName"`
}

// TableName specifies the table name for Calendar
func (Calendar) TableName() string {
	return "calendars"
}
