package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"onboard-backend/models"
)

type QuestAssignment struct {
	BaseModel
	QuestID          string `gorm:"type:varchar(36);uniqueIndex:uq_quest_assignment"`
	MembershipID     string `gorm:"type:varchar(36);uniqueIndex:uq_quest_assignment;index"`
	AssignedByMember string `gorm:"type:varchar(36)"`
	// срок в днях только для этого назначения, перекрывает срок квеста
	OverrideDurationDays *int
	AssignedAt           time.Time
	// вычисляется один раз при создании и больше не пересчитывается
	DueAt       time.Time
	CompletedAt *time.Time
	Status      models.AssignmentStatus `gorm:"type:varchar(20);index"`
	// производное значение, пересчитывается после каждого изменения статуса шага
	ProgressPercent float64 `gorm:"type:numeric(5,2)"`

	Quest       *Quest                `gorm:"foreignKey:QuestID"`
	Membership  *Membership           `gorm:"foreignKey:MembershipID"`
	Submissions []QuestStepSubmission `gorm:"foreignKey:QuestAssignmentID"`
}

type QuestStepSubmission struct {
	BaseModel
	QuestAssignmentID string                  `gorm:"type:varchar(36);uniqueIndex:uq_submission_step"`
	QuestStepID       string                  `gorm:"type:varchar(36);uniqueIndex:uq_submission_step"`
	Status            models.SubmissionStatus `gorm:"type:varchar(20)"`
	SubmittedAt       *time.Time
	ReviewedByMember  string `gorm:"type:varchar(36)"`
	ReviewedAt        *time.Time
	Data              SubmissionData `gorm:"type:jsonb"`

	Step *QuestStep `gorm:"foreignKey:QuestStepID"`
}

// произвольные данные выполнения шага (ответы формы, ссылки, комментарии)
type SubmissionData map[string]interface{}

func (d SubmissionData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	valueString, err := json.Marshal(d)
	return string(valueString), err
}

func (d *SubmissionData) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	return json.Unmarshal(value.([]byte), d)
}
