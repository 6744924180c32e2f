package membershipstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Membership) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Membership, err error)
	GetByUserAndCompany(userID, companyID string) (rec *dbmodels.Membership, err error)
	GetActiveByUserAndCompany(userID, companyID string) (rec *dbmodels.Membership, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	List(companyID string) (list []dbmodels.Membership, err error)
	ListByManager(companyID, managerID string) (list []dbmodels.Membership, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Membership) (id string, err error) {
	err = i.db.
		Omit("User").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Membership, error) {
	rec := dbmodels.Membership{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("User").
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

func (i impl) GetByUserAndCompany(userID, companyID string) (*dbmodels.Membership, error) {
	rec := dbmodels.Membership{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("company_id = ?", companyID).
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

func (i impl) GetActiveByUserAndCompany(userID, companyID string) (*dbmodels.Membership, error) {
	rec := dbmodels.Membership{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("company_id = ?", companyID).
		Where("status = ?", models.MembershipActive).
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
		Model(&dbmodels.Membership{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(companyID string) (list []dbmodels.Membership, err error) {
	list = []dbmodels.Membership{}
	err = i.db.
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByManager(companyID, managerID string) (list []dbmodels.Membership, err error) {
	list = []dbmodels.Membership{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("manager_membership_id = ?", managerID).
		Order("created_at ASC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
