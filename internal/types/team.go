package types

type Team struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID   uint    `gorm:"not null;index;column:company_id" json:"company_id"`
	Name        string  `gorm:"size:200;not null;column:name" json:"name"`
	Nickname    *string `gorm:"size:100;column:nickname" json:"nickname,omitempty"`
	Purpose     *string `gorm:"size:300;column:purpose" json:"purpose,omitempty"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`

	Assessments []Assessment `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}
