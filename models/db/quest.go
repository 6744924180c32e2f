package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"onboard-backend/models"
)

type Quest struct {
	BaseCompanyModel
	Title       string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	// срок прохождения в днях, перекрывается override назначения
	DurationDays    *int
	IsMandatory     bool
	Status          models.QuestStatus `gorm:"type:varchar(20);index"`
	CreatedByMember string             `gorm:"type:varchar(36)"`

	Steps []QuestStep `gorm:"foreignKey:QuestID"`
}

type QuestStep struct {
	BaseModel
	QuestID string `gorm:"type:varchar(36);uniqueIndex:uq_quest_steps_order"`
	// порядковый номер, уникален в рамках квеста
	SortOrder    int             `gorm:"uniqueIndex:uq_quest_steps_order"`
	Title        string          `gorm:"type:varchar(255)"`
	StepType     models.StepType `gorm:"type:varchar(32)"`
	Required     bool
	Content      StepContent             `gorm:"type:jsonb"`
	ApprovalRole models.StepApprovalRole `gorm:"type:varchar(20)"`
}

// произвольное структурированное содержимое шага (текст, ссылки, вопросы формы)
type StepContent map[string]interface{}

func (c StepContent) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	valueString, err := json.Marshal(c)
	return string(valueString), err
}

func (c *StepContent) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	return json.Unmarshal(value.([]byte), c)
}
