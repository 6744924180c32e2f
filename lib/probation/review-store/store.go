package probationreviewstore

import (
	"gorm.io/gorm"

	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ProbationReview) (id string, err error)
	ListByTask(taskID string) (list []dbmodels.ProbationReview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProbationReview) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByTask(taskID string) (list []dbmodels.ProbationReview, err error) {
	list = []dbmodels.ProbationReview{}
	err = i.db.
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
