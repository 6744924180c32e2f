package assignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.QuestAssignment) (id string, err error)
	GetByID(id string) (rec *dbmodels.QuestAssignment, err error)
	GetByQuestAndMembership(questID, membershipID string) (rec *dbmodels.QuestAssignment, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByMembership(membershipID string) (list []dbmodels.QuestAssignment, err error)
	ListByCompany(companyID string) (list []dbmodels.QuestAssignment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.QuestAssignment) (id string, err error) {
	err = i.db.
		Omit("Quest", "Membership", "Submissions").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.QuestAssignment, error) {
	rec := dbmodels.QuestAssignment{}
	err := i.db.
		Where("id = ?", id).
		Preload("Quest").
		Preload("Quest.Steps").
		Preload("Submissions").
		Preload("Submissions.Step").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByQuestAndMembership(questID, membershipID string) (*dbmodels.QuestAssignment, error) {
	rec := dbmodels.QuestAssignment{}
	err := i.db.
		Where("quest_id = ?", questID).
		Where("membership_id = ?", membershipID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.QuestAssignment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByMembership(membershipID string) (list []dbmodels.QuestAssignment, err error) {
	list = []dbmodels.QuestAssignment{}
	err = i.db.
		Where("membership_id = ?", membershipID).
		Order("assigned_at ASC").
		Preload("Quest").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.QuestAssignment, err error) {
	list = []dbmodels.QuestAssignment{}
	err = i.db.
		Joins("JOIN memberships ON memberships.id = quest_assignments.membership_id").
		Where("memberships.company_id = ?", companyID).
		Order("quest_assignments.assigned_at ASC").
		Preload("Quest").
		Preload("Membership").
		Preload("Membership.User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
