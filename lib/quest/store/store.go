package queststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Quest) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Quest, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(companyID string, status models.QuestStatus) (list []dbmodels.Quest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Quest) (id string, err error) {
	err = i.db.
		Omit("Steps").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Quest, error) {
	rec := dbmodels.Quest{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("quest_steps.sort_order ASC")
		}).
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Quest{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(companyID, id string) error {
	rec := dbmodels.Quest{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			CompanyID: companyID,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(companyID string, status models.QuestStatus) (list []dbmodels.Quest, err error) {
	list = []dbmodels.Quest{}
	tx := i.db.
		Where("company_id = ?", companyID).
		Order("created_at ASC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
