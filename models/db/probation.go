package dbmodels

import (
	"time"

	"onboard-backend/models"
)

type ProbationTask struct {
	BaseCompanyModel
	CreatedByMember  string `gorm:"type:varchar(36)"`
	AssignedToMember string `gorm:"type:varchar(36);index"`
	Title            string `gorm:"type:varchar(255)"`
	Description      string `gorm:"type:text"`
	DueAt            *time.Time
	Status           models.ProbationTaskStatus `gorm:"type:varchar(20);index"`
	CompletedAt      *time.Time
	ResultText       string `gorm:"type:text"`

	Reviews []ProbationReview `gorm:"foreignKey:TaskID"`
}

type ProbationReview struct {
	BaseModel
	TaskID         string                `gorm:"type:varchar(36);index"`
	ReviewerMember string                `gorm:"type:varchar(36)"`
	Score          *float64              `gorm:"type:numeric(3,1)"`
	Decision       models.ReviewDecision `gorm:"type:varchar(10)"`
	Comments       string                `gorm:"type:text"`
}
