package dbmodels

import (
	"time"

	"onboard-backend/models"
)

type Membership struct {
	BaseModel
	UserID    string                  `gorm:"type:varchar(36);uniqueIndex:uq_memberships_user_company"`
	CompanyID string                  `gorm:"type:varchar(36);uniqueIndex:uq_memberships_user_company;index"`
	Role      models.MembershipRole   `gorm:"type:varchar(50)"`
	Status    models.MembershipStatus `gorm:"type:varchar(20)"`
	// ссылка на руководителя, граф по компании обязан быть ацикличным
	ManagerMembershipID *string `gorm:"type:varchar(36);index"`
	EmploymentType      string  `gorm:"type:varchar(32)"`
	ProbationStartAt    *time.Time
	ProbationEndAt      *time.Time
	ProbationStatus     models.ProbationStatus `gorm:"type:varchar(20)"`
	OnboardingDoneAt    *time.Time

	User *User `gorm:"foreignKey:UserID"`
}
