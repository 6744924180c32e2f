package probationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ProbationTask) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.ProbationTask, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	ListByAssignee(companyID, membershipID string) (list []dbmodels.ProbationTask, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProbationTask) (id string, err error) {
	err = i.db.
		Omit("Reviews").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.ProbationTask, error) {
	rec := dbmodels.ProbationTask{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Reviews").
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
		Model(&dbmodels.ProbationTask{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByAssignee(companyID, membershipID string) (list []dbmodels.ProbationTask, err error) {
	list = []dbmodels.ProbationTask{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("assigned_to_member = ?", membershipID).
		Order("created_at ASC").
		Preload("Reviews").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
