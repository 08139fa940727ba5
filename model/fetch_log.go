package model

import (
	"time"

	"gorm.io/datatypes"
)

// FetchLog is the append-only record of completed term syncs. One row is
// written per successfully imported calendar; the newest row drives the
// "last updated" display of the catalog.
type FetchLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FetchTime time.Time      `gorm:"not null;index" json:"fetchTime"`
	Message   string         `gorm:"type:text" json:"message"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// TableName specifies the table name for FetchLog
func (FetchLog) TableName() string {
	return "fetch_logs"
}
