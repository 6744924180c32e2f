package questhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboard-backend/db"
	queststepstore "onboard-backend/lib/quest/step-store"
	queststore "onboard-backend/lib/quest/store"
	"onboard-backend/models"
	questapimodels "onboard-backend/models/api/quest"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Create(companyID, creatorMemberID string, data questapimodels.QuestCreateData) (id string, err error)
	Update(companyID, id string, data questapimodels.QuestUpdateData) error
	AddStep(companyID, questID string, data questapimodels.StepData) (id string, err error)
	RemoveStep(companyID, questID, stepID string) error
	Publish(companyID, id string) error
	Archive(companyID, id string) error
	GetByID(companyID, id string) (questapimodels.QuestView, error)
	List(companyID string, status models.QuestStatus) ([]questapimodels.QuestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     queststore.NewInstance(db.DB),
		stepStore: queststepstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:     queststore.NewInstance(tx),
		stepStore: queststepstore.NewInstance(tx),
	}
}

type impl struct {
	store     queststore.Provider
	stepStore queststepstore.Provider
}

func (i impl) getLogger(companyID string) *log.Entry {
	return log.WithField("company_id", companyID)
}

func (i impl) Create(companyID, creatorMemberID string, data questapimodels.QuestCreateData) (id string, err error) {
	rec := dbmodels.Quest{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		Title:           data.Title,
		Description:     data.Description,
		DurationDays:    data.DurationDays,
		IsMandatory:     true,
		Status:          models.QuestDraft,
		CreatedByMember: creatorMemberID,
	}
	if data.IsMandatory != nil {
		rec.IsMandatory = *data.IsMandatory
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(companyID).WithField("rec_id", id).Info("создан квест")
	return id, nil
}

func (i impl) Update(companyID, id string, data questapimodels.QuestUpdateData) error {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.QuestDraft {
		return errors.Wrap(models.ErrInvalidState, "изменять можно только черновик квеста")
	}
	updMap := map[string]interface{}{}
	if data.Title != nil {
		updMap["title"] = *data.Title
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.DurationDays != nil {
		updMap["duration_days"] = *data.DurationDays
	}
	if data.IsMandatory != nil {
		updMap["is_mandatory"] = *data.IsMandatory
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) AddStep(companyID, questID string, data questapimodels.StepData) (id string, err error) {
	quest, err := i.getRec(companyID, questID)
	if err != nil {
		return "", err
	}
	if quest.Status != models.QuestDraft {
		return "", errors.Wrap(models.ErrInvalidState, "шаги можно добавлять только в черновик квеста")
	}
	exist, err := i.stepStore.GetBySortOrder(quest.ID, data.SortOrder)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", errors.Wrapf(models.ErrConflict, "шаг с порядковым номером %v уже есть в квесте", data.SortOrder)
	}
	rec := dbmodels.QuestStep{
		QuestID:      quest.ID,
		SortOrder:    data.SortOrder,
		Title:        data.Title,
		StepType:     data.StepType,
		Required:     true,
		Content:      data.Content,
		ApprovalRole: data.ApprovalRole,
	}
	if data.Required != nil {
		rec.Required = *data.Required
	}
	if rec.ApprovalRole == "" {
		rec.ApprovalRole = models.StepApprovalNone
	}
	id, err = i.stepStore.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(companyID).
		WithField("rec_id", questID).
		WithField("step_id", id).
		Info("в квест добавлен шаг")
	return id, nil
}

func (i impl) RemoveStep(companyID, questID, stepID string) error {
	quest, err := i.getRec(companyID, questID)
	if err != nil {
		return err
	}
	if quest.Status != models.QuestDraft {
		return errors.Wrap(models.ErrInvalidState, "шаги можно удалять только из черновика квеста")
	}
	step, err := i.stepStore.GetByID(stepID)
	if err != nil {
		return err
	}
	if step == nil || step.QuestID != quest.ID {
		return errors.Wrap(models.ErrNotFound, "шаг не найден")
	}
	return i.stepStore.Delete(stepID)
}

// Publish переводит черновик в опубликованные. Повторная публикация невозможна,
// операции отмены публикации нет.
func (i impl) Publish(companyID, id string) error {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.QuestDraft {
		return errors.Wrap(models.ErrInvalidState, "опубликовать можно только черновик квеста")
	}
	updMap := map[string]interface{}{
		"status": models.QuestPublished,
	}
	if err = i.store.Update(companyID, id, updMap); err != nil {
		return err
	}
	i.getLogger(companyID).WithField("rec_id", id).Info("квест опубликован")
	return nil
}

func (i impl) Archive(companyID, id string) error {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.QuestPublished {
		return errors.Wrap(models.ErrInvalidState, "в архив можно отправить только опубликованный квест")
	}
	updMap := map[string]interface{}{
		"status": models.QuestArchived,
	}
	if err = i.store.Update(companyID, id, updMap); err != nil {
		return err
	}
	i.getLogger(companyID).WithField("rec_id", id).Info("квест отправлен в архив")
	return nil
}

func (i impl) GetByID(companyID, id string) (questapimodels.QuestView, error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return questapimodels.QuestView{}, err
	}
	return questapimodels.QuestConvert(*rec), nil
}

func (i impl) List(companyID string, status models.QuestStatus) ([]questapimodels.QuestView, error) {
	recList, err := i.store.List(companyID, status)
	if err != nil {
		return nil, err
	}
	result := make([]questapimodels.QuestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, questapimodels.QuestConvert(rec))
	}
	return result, nil
}

func (i impl) getRec(companyID, id string) (*dbmodels.Quest, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "квест не найден")
	}
	return rec, nil
}
