package types

// MaturityModel is a named scoring framework (SAMM, BSIMM, SSDF, SLSA, ...).
// Rows are created lazily by the score upsert resolver.
type MaturityModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null;column:name" json:"name"`

	Practices []Practice `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MaturityModel) TableName() string {
	return "maturity_models"
}
