package companyhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboard-backend/db"
	companystore "onboard-backend/lib/company/store"
	membershipstore "onboard-backend/lib/membership/store"
	"onboard-backend/models"
	companyapimodels "onboard-backend/models/api/company"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(createdByUserID string, data companyapimodels.CompanyData) (id string, err error)
	Update(id string, data companyapimodels.CompanyData) error
	GetByID(id string) (companyapimodels.CompanyView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store companystore.Provider
}

// Create заводит компанию и членство владельца для создателя одной транзакцией
func (i impl) Create(createdByUserID string, data companyapimodels.CompanyData) (id string, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := companystore.NewInstance(tx)
		membershipStore := membershipstore.NewInstance(tx)

		rec := dbmodels.Company{
			Name:                     data.Name,
			Slug:                     data.Slug,
			Timezone:                 data.Timezone,
			IsActive:                 true,
			DefaultQuestDurationDays: data.DefaultQuestDurationDays,
			CreatedByUserID:          createdByUserID,
		}
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		owner := dbmodels.Membership{
			UserID:    createdByUserID,
			CompanyID: id,
			Role:      models.OwnerRole,
			Status:    models.MembershipActive,
		}
		if _, err = membershipStore.Create(owner); err != nil {
			return errors.Wrap(err, "ошибка создания членства владельца")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	log.WithField("company_id", id).Info("создана компания")
	return id, nil
}

func (i impl) Update(id string, data companyapimodels.CompanyData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "компания не найдена")
	}
	updMap := map[string]interface{}{
		"name":     data.Name,
		"timezone": data.Timezone,
	}
	if data.Slug != "" {
		updMap["slug"] = data.Slug
	}
	if data.DefaultQuestDurationDays != nil {
		updMap["default_quest_duration_days"] = *data.DefaultQuestDurationDays
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (companyapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return companyapimodels.CompanyView{}, err
	}
	if rec == nil {
		return companyapimodels.CompanyView{}, errors.Wrap(models.ErrNotFound, "компания не найдена")
	}
	return companyapimodels.CompanyConvert(*rec), nil
}
