package types

import (
	"time"
)

type Company struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:200;uniqueIndex;not null;column:name" json:"name"`
	Address       *string   `gorm:"type:text;column:address" json:"address,omitempty"`
	ContactPerson *string   `gorm:"size:200;column:contact_person" json:"contact_person,omitempty"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Teams []Team `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Company) TableName() string {
	return "companies"
}
