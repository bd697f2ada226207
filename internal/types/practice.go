package types

type Practice struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelID     uint    `gorm:"not null;uniqueIndex:uq_practices_model_code;column:model_id" json:"model_id"`
	Code        string  `gorm:"size:50;not null;uniqueIndex:uq_practices_model_code;column:code" json:"code"`
	Name        string  `gorm:"size:200;not null;column:name" json:"name"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`

	Model MaturityModel `gorm:"foreignKey:ModelID" json:"-"`
}

func (Practice) TableName() string {
	return "practices"
}
