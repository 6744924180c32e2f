package membershipapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type InviteData struct {
	Email string                `json:"email"`
	Role  models.MembershipRole `json:"role"`
}

func (r InviteData) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.Wrap(models.ErrInvalidInput, "не указан email приглашаемого")
	}
	if r.Role == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указана роль")
	}
	return nil
}

type ActivateData struct {
	Role models.MembershipRole `json:"role"`
}

type SetManagerData struct {
	ManagerMembershipID string `json:"manager_membership_id"`
}

func (r SetManagerData) Validate() error {
	if r.ManagerMembershipID == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указан руководитель")
	}
	return nil
}

type ProbationStatusData struct {
	Status models.ProbationStatus `json:"status"`
}

type MembershipView struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	CompanyID           string     `json:"company_id"`
	FullName            string     `json:"full_name,omitempty"`
	Role                string     `json:"role"`
	Status              string     `json:"status"`
	ManagerMembershipID *string    `json:"manager_membership_id,omitempty"`
	ProbationStatus     string     `json:"probation_status"`
	ProbationStartAt    *time.Time `json:"probation_start_at,omitempty"`
	ProbationEndAt      *time.Time `json:"probation_end_at,omitempty"`
}

func MembershipConvert(rec dbmodels.Membership) MembershipView {
	view := MembershipView{
		ID:                  rec.ID,
		UserID:              rec.UserID,
		CompanyID:           rec.CompanyID,
		Role:                rec.Role.ToHuman(),
		Status:              rec.Status.ToHuman(),
		ManagerMembershipID: rec.ManagerMembershipID,
		ProbationStatus:     rec.ProbationStatus.ToHuman(),
		ProbationStartAt:    rec.ProbationStartAt,
		ProbationEndAt:      rec.ProbationEndAt,
	}
	if rec.User != nil {
		view.FullName = rec.User.GetFullName()
	}
	return view
}
