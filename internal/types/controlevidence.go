package types

import (
	"time"
)

// ControlEvidence links an assessment to a compliance control (SSDF-PS.3,
// CIS-2.3, ...) with a supporting evidence reference.
type ControlEvidence struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint      `gorm:"not null;index;column:assessment_id" json:"assessment_id"`
	Domain       *string   `gorm:"size:100;column:domain" json:"domain,omitempty"`
	Control      string    `gorm:"size:200;not null;column:control" json:"control"`
	Standard     *string   `gorm:"size:100;column:standard" json:"standard,omitempty"`
	Level        *string   `gorm:"size:50;column:level" json:"level,omitempty"`
	EvidenceURI  *string   `gorm:"size:500;column:evidence_uri" json:"evidence_uri,omitempty"`
	CollectedAt  time.Time `gorm:"not null;column:collected_at" json:"collected_at"`
}

func (ControlEvidence) TableName() string {
	return "controls_evidence"
}
