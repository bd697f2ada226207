package types

// Score records the observed maturity level (0..3) of one practice within
// one assessment. The practice reference is non-owning: practices live in
// the model tree and outlive any assessment.
type Score struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint    `gorm:"not null;index;column:assessment_id" json:"assessment_id"`
	PracticeID   uint    `gorm:"not null;index;column:practice_id" json:"practice_id"`
	Level        int     `gorm:"not null;column:level" json:"level"`
	EvidenceURI  *string `gorm:"size:500;column:evidence_uri" json:"evidence_uri,omitempty"`
	Notes        *string `gorm:"type:text;column:notes" json:"notes,omitempty"`

	Practice Practice `gorm:"foreignKey:PracticeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Score) TableName() string {
	return "scores"
}
