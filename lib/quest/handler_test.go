package questhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
	questapimodels "onboard-backend/models/api/quest"
	dbmodels "onboard-backend/models/db"
)

type fakeQuestStore struct {
	recs map[string]*dbmodels.Quest
}

func newFakeQuestStore(recs ...*dbmodels.Quest) *fakeQuestStore {
	store := &fakeQuestStore{recs: map[string]*dbmodels.Quest{}}
	for _, rec := range recs {
		store.recs[rec.ID] = rec
	}
	return store
}

func (f *fakeQuestStore) Create(rec dbmodels.Quest) (string, error) {
	id := fmt.Sprintf("quest-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeQuestStore) GetByID(companyID, id string) (*dbmodels.Quest, error) {
	rec, ok := f.recs[id]
	if !ok || rec.CompanyID != companyID {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeQuestStore) Update(companyID, id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok || rec.CompanyID != companyID {
		return nil
	}
	if v, exist := updMap["status"]; exist {
		rec.Status = v.(models.QuestStatus)
	}
	if v, exist := updMap["title"]; exist {
		rec.Title = v.(string)
	}
	return nil
}

func (f *fakeQuestStore) Delete(companyID, id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeQuestStore) List(companyID string, status models.QuestStatus) ([]dbmodels.Quest, error) {
	list := []dbmodels.Quest{}
	for _, rec := range f.recs {
		if rec.CompanyID != companyID {
			continue
		}
		if status != "" && rec.Status != status {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

type fakeStepStore struct {
	recs map[string]*dbmodels.QuestStep
}

func newFakeStepStore() *fakeStepStore {
	return &fakeStepStore{recs: map[string]*dbmodels.QuestStep{}}
}

func (f *fakeStepStore) Create(rec dbmodels.QuestStep) (string, error) {
	id := fmt.Sprintf("step-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeStepStore) GetByID(id string) (*dbmodels.QuestStep, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStepStore) GetBySortOrder(questID string, sortOrder int) (*dbmodels.QuestStep, error) {
	for _, rec := range f.recs {
		if rec.QuestID == questID && rec.SortOrder == sortOrder {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStepStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeStepStore) List(questID string) ([]dbmodels.QuestStep, error) {
	list := []dbmodels.QuestStep{}
	for _, rec := range f.recs {
		if rec.QuestID == questID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func quest(id, companyID string, status models.QuestStatus) *dbmodels.Quest {
	return &dbmodels.Quest{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			CompanyID: companyID,
		},
		Title:  "Онбординг разработчика",
		Status: status,
	}
}

func TestQuestLifecycle(t *testing.T) {
	companyID := "company-1"

	t.Run(`публикуется только черновик`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", companyID, models.QuestDraft))
		handler := impl{store: store, stepStore: newFakeStepStore()}
		require.Nil(t, handler.Publish(companyID, "q1"))
		rec, _ := store.GetByID(companyID, "q1")
		require.Equal(t, models.QuestPublished, rec.Status)

		err := handler.Publish(companyID, "q1")
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`в архив уходит только опубликованный`, func(t *testing.T) {
		store := newFakeQuestStore(
			quest("q1", companyID, models.QuestDraft),
			quest("q2", companyID, models.QuestPublished),
		)
		handler := impl{store: store, stepStore: newFakeStepStore()}

		err := handler.Archive(companyID, "q1")
		require.ErrorIs(t, err, models.ErrInvalidState)

		require.Nil(t, handler.Archive(companyID, "q2"))
		rec, _ := store.GetByID(companyID, "q2")
		require.Equal(t, models.QuestArchived, rec.Status)
	})

	t.Run(`изменение не черновика запрещено`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", companyID, models.QuestPublished))
		handler := impl{store: store, stepStore: newFakeStepStore()}
		title := "Новое название"
		err := handler.Update(companyID, "q1", questapimodels.QuestUpdateData{Title: &title})
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`квест чужой компании не находится`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", "company-2", models.QuestDraft))
		handler := impl{store: store, stepStore: newFakeStepStore()}
		err := handler.Publish(companyID, "q1")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestAddStep(t *testing.T) {
	companyID := "company-1"

	t.Run(`порядковый номер в квесте уникален`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", companyID, models.QuestDraft))
		handler := impl{store: store, stepStore: newFakeStepStore()}

		_, err := handler.AddStep(companyID, "q1", questapimodels.StepData{
			SortOrder: 1,
			Title:     "Подписать документы",
			StepType:  models.StepTypeDoc,
		})
		require.Nil(t, err)

		_, err = handler.AddStep(companyID, "q1", questapimodels.StepData{
			SortOrder: 1,
			Title:     "Встреча с руководителем",
			StepType:  models.StepTypeMeeting,
		})
		require.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run(`шаги добавляются только в черновик`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", companyID, models.QuestPublished))
		handler := impl{store: store, stepStore: newFakeStepStore()}
		_, err := handler.AddStep(companyID, "q1", questapimodels.StepData{
			SortOrder: 1,
			Title:     "Подписать документы",
			StepType:  models.StepTypeDoc,
		})
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`без роли согласования подставляется none`, func(t *testing.T) {
		store := newFakeQuestStore(quest("q1", companyID, models.QuestDraft))
		stepStore := newFakeStepStore()
		handler := impl{store: store, stepStore: stepStore}
		id, err := handler.AddStep(companyID, "q1", questapimodels.StepData{
			SortOrder: 1,
			Title:     "Подписать документы",
			StepType:  models.StepTypeDoc,
		})
		require.Nil(t, err)
		rec, _ := stepStore.GetByID(id)
		require.Equal(t, models.StepApprovalNone, rec.ApprovalRole)
		require.True(t, rec.Required)
	})
}
