package submissionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.QuestStepSubmission) (id string, err error)
	GetByID(id string) (rec *dbmodels.QuestStepSubmission, err error)
	GetByAssignmentAndStep(assignmentID, stepID string) (rec *dbmodels.QuestStepSubmission, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByAssignment(assignmentID string) (list []dbmodels.QuestStepSubmission, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.QuestStepSubmission) (id string, err error) {
	err = i.db.
		Omit("Step").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.QuestStepSubmission, error) {
	rec := dbmodels.QuestStepSubmission{}
	err := i.db.
		Where("id = ?", id).
		Preload("Step").
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

func (i impl) GetByAssignmentAndStep(assignmentID, stepID string) (*dbmodels.QuestStepSubmission, error) {
	rec := dbmodels.QuestStepSubmission{}
	err := i.db.
		Where("quest_assignment_id = ?", assignmentID).
		Where("quest_step_id = ?", stepID).
		Preload("Step").
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
		Model(&dbmodels.QuestStepSubmission{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByAssignment(assignmentID string) (list []dbmodels.QuestStepSubmission, err error) {
	list = []dbmodels.QuestStepSubmission{}
	err = i.db.
		Where("quest_assignment_id = ?", assignmentID).
		Preload("Step").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
