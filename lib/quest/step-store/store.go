package queststepstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.QuestStep) (id string, err error)
	GetByID(id string) (rec *dbmodels.QuestStep, err error)
	GetBySortOrder(questID string, sortOrder int) (rec *dbmodels.QuestStep, err error)
	Delete(id string) error
	List(questID string) (list []dbmodels.QuestStep, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.QuestStep) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.QuestStep, error) {
	rec := dbmodels.QuestStep{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) GetBySortOrder(questID string, sortOrder int) (*dbmodels.QuestStep, error) {
	rec := dbmodels.QuestStep{}
	err := i.db.
		Where("quest_id = ?", questID).
		Where("sort_order = ?", sortOrder).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.QuestStep{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(questID string) (list []dbmodels.QuestStep, err error) {
	list = []dbmodels.QuestStep{}
	err = i.db.
		Where("quest_id = ?", questID).
		Order("sort_order ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
