package dbmodels

type Company struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);index"`
	Slug     string `gorm:"type:varchar(255);uniqueIndex"`
	Timezone string `gorm:"type:varchar(64)"`
	IsActive bool
	// срок прохождения квеста по умолчанию, если не задан у квеста и назначения
	DefaultQuestDurationDays *int
	CreatedByUserID          string `gorm:"type:varchar(36)"`
}
