package types

import (
	"time"
)

// Assessment is a bounded review of one team's practices. GuidToken is
// generated once at creation and never changes; it is the sole credential
// for the machine ingestion endpoint.
type Assessment struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID         uint       `gorm:"not null;index;column:team_id" json:"team_id"`
	Name           string     `gorm:"size:200;not null;column:name" json:"name"`
	AssessmentDate *time.Time `gorm:"type:date;column:assessment_date" json:"assessment_date,omitempty"`
	GuidToken      string     `gorm:"size:36;uniqueIndex;not null;column:guid_token" json:"-"`
	Notes          *string    `gorm:"type:text;column:notes" json:"notes,omitempty"`

	Raw      []RawData         `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"-"`
	Metrics  []Metric          `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"-"`
	Scores   []Score           `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"-"`
	Controls []ControlEvidence `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Assessment) TableName() string {
	return "assessments"
}
