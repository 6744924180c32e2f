package companyapimodels

import (
	"github.com/pkg/errors"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type CompanyData struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
	// срок прохождения квестов по умолчанию (в днях)
	DefaultQuestDurationDays *int `json:"default_quest_duration_days"`
}

func (r CompanyData) Validate() error {
	if r.Name == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указано название компании")
	}
	if r.DefaultQuestDurationDays != nil && *r.DefaultQuestDurationDays <= 0 {
		return errors.Wrap(models.ErrInvalidInput, "срок прохождения должен быть положительным")
	}
	return nil
}

type CompanyView struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	Slug                     string `json:"slug"`
	Timezone                 string `json:"timezone"`
	DefaultQuestDurationDays *int   `json:"default_quest_duration_days,omitempty"`
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		ID:                       rec.ID,
		Name:                     rec.Name,
		Slug:                     rec.Slug,
		Timezone:                 rec.Timezone,
		DefaultQuestDurationDays: rec.DefaultQuestDurationDays,
	}
}
