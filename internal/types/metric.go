package types

import (
	"time"
)

type Metric struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID uint      `gorm:"not null;index;column:assessment_id" json:"assessment_id"`
	MetricName   string    `gorm:"size:200;not null;column:metric_name" json:"metric_name"`
	MetricValue  float64   `gorm:"not null;column:metric_value" json:"metric_value"`
	Unit         *string   `gorm:"size:50;column:unit" json:"unit,omitempty"`
	CollectedAt  time.Time `gorm:"not null;column:collected_at" json:"collected_at"`
}

func (Metric) TableName() string {
	return "metrics"
}
