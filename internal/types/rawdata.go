package types

import (
	"time"

	"gorm.io/datatypes"
)

// RawData holds an opaque JSON blob collected from an external tool (source
// tells which one, e.g. github, azuredevops, sonarqube) or entered manually.
type RawData struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint           `gorm:"not null;index;column:assessment_id" json:"assessment_id"`
	Source       *string        `gorm:"size:100;column:source" json:"source,omitempty"`
	Payload      datatypes.JSON `gorm:"not null;column:payload" json:"payload"`
	CollectedAt  time.Time      `gorm:"not null;index;column:collected_at" json:"collected_at"`
}

func (RawData) TableName() string {
	return "raw_data"
}
