package probationhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboard-backend/db"
	membershipstore "onboard-backend/lib/membership/store"
	probationreviewstore "onboard-backend/lib/probation/review-store"
	probationstore "onboard-backend/lib/probation/store"
	"onboard-backend/models"
	probationapimodels "onboard-backend/models/api/probation"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	CreateTask(companyID, creatorMember string, data probationapimodels.TaskCreateData) (id string, err error)
	ChangeTaskStatus(companyID, taskID string, data probationapimodels.TaskStatusData) error
	Review(companyID, taskID, reviewerMember string, data probationapimodels.ReviewData) (id string, err error)
	Evaluate(companyID, membershipID string) (models.ProbationStatus, error)
	GetTask(companyID, taskID string) (probationapimodels.TaskView, error)
	ListTasks(companyID, membershipID string) ([]probationapimodels.TaskView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           probationstore.NewInstance(db.DB),
		reviewStore:     probationreviewstore.NewInstance(db.DB),
		membershipStore: membershipstore.NewInstance(db.DB),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

type impl struct {
	store           probationstore.Provider
	reviewStore     probationreviewstore.Provider
	membershipStore membershipstore.Provider
	// источник времени, в тестах подменяется
	now func() time.Time
}

func (i impl) getLogger(companyID string) *log.Entry {
	return log.WithField("company_id", companyID)
}

func (i impl) CreateTask(companyID, creatorMember string, data probationapimodels.TaskCreateData) (id string, err error) {
	assignee, err := i.membershipStore.GetByID(companyID, data.AssignedToMember)
	if err != nil {
		return "", err
	}
	if assignee == nil {
		return "", errors.Wrap(models.ErrNotFound, "исполнитель задачи не найден")
	}
	rec := dbmodels.ProbationTask{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		CreatedByMember:  creatorMember,
		AssignedToMember: assignee.ID,
		Title:            data.Title,
		Description:      data.Description,
		DueAt:            data.DueAt,
		Status:           models.ProbationTaskTodo,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(companyID).
		WithField("rec_id", id).
		WithField("membership_id", assignee.ID).
		Info("создана задача испытательного срока")
	return id, nil
}

func (i impl) ChangeTaskStatus(companyID, taskID string, data probationapimodels.TaskStatusData) error {
	rec, err := i.getTask(companyID, taskID)
	if err != nil {
		return err
	}
	if rec.Status == models.ProbationTaskDone || rec.Status == models.ProbationTaskCancelled {
		return errors.Wrapf(models.ErrInvalidState, "задача уже закрыта: %v", rec.Status.ToHuman())
	}
	updMap := map[string]interface{}{
		"status": data.Status,
	}
	if data.ResultText != "" {
		updMap["result_text"] = data.ResultText
	}
	if data.Status == models.ProbationTaskDone {
		updMap["completed_at"] = i.now()
	}
	return i.store.Update(companyID, taskID, updMap)
}

// Review добавляет оценку по выполненной задаче, оценивать невыполненную нельзя
func (i impl) Review(companyID, taskID, reviewerMember string, data probationapimodels.ReviewData) (id string, err error) {
	rec, err := i.getTask(companyID, taskID)
	if err != nil {
		return "", err
	}
	if rec.Status != models.ProbationTaskDone {
		return "", errors.Wrap(models.ErrInvalidState, "оценить можно только выполненную задачу")
	}
	review := dbmodels.ProbationReview{
		TaskID:         rec.ID,
		ReviewerMember: reviewerMember,
		Score:          data.Score,
		Decision:       data.Decision,
		Comments:       data.Comments,
	}
	id, err = i.reviewStore.Create(review)
	if err != nil {
		return "", err
	}
	i.getLogger(companyID).
		WithField("rec_id", taskID).
		WithField("decision", data.Decision).
		Info("добавлена оценка по задаче испытательного срока")
	return id, nil
}

// Evaluate агрегирует задачи и оценки участника в итоговый статус:
//  1. есть хотя бы один незачёт — статус failed, остальное не важно;
//  2. иначе все задачи выполнены (и они есть) — passed;
//  3. иначе статус не меняется: extended автоматически не выводится,
//     это всегда ручное административное действие.
func (i impl) Evaluate(companyID, membershipID string) (models.ProbationStatus, error) {
	var result models.ProbationStatus
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := probationstore.NewInstance(tx)
		membershipStore := membershipstore.NewInstance(tx)

		member, err := membershipStore.GetByID(companyID, membershipID)
		if err != nil {
			return err
		}
		if member == nil {
			return errors.Wrap(models.ErrNotFound, "участник не найден")
		}
		tasks, err := store.ListByAssignee(companyID, member.ID)
		if err != nil {
			return err
		}
		result = EvaluateStatus(tasks, member.ProbationStatus)
		if result == member.ProbationStatus {
			return nil
		}
		return membershipStore.Update(companyID, member.ID, map[string]interface{}{
			"probation_status": result,
		})
	})
	if err != nil {
		return "", err
	}
	i.getLogger(companyID).
		WithField("membership_id", membershipID).
		WithField("probation_status", result).
		Info("пересчитан статус испытательного срока")
	return result, nil
}

// EvaluateStatus — чистое правило агрегации статуса испытательного срока
func EvaluateStatus(tasks []dbmodels.ProbationTask, current models.ProbationStatus) models.ProbationStatus {
	allDone := len(tasks) > 0
	for _, task := range tasks {
		for _, review := range task.Reviews {
			if review.Decision == models.ReviewFail {
				return models.ProbationFailed
			}
		}
		if task.Status != models.ProbationTaskDone {
			allDone = false
		}
	}
	if allDone {
		return models.ProbationPassed
	}
	return current
}

func (i impl) GetTask(companyID, taskID string) (probationapimodels.TaskView, error) {
	rec, err := i.getTask(companyID, taskID)
	if err != nil {
		return probationapimodels.TaskView{}, err
	}
	return probationapimodels.TaskConvert(*rec), nil
}

func (i impl) ListTasks(companyID, membershipID string) ([]probationapimodels.TaskView, error) {
	recList, err := i.store.ListByAssignee(companyID, membershipID)
	if err != nil {
		return nil, err
	}
	result := make([]probationapimodels.TaskView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, probationapimodels.TaskConvert(rec))
	}
	return result, nil
}

func (i impl) getTask(companyID, id string) (*dbmodels.ProbationTask, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "задача не найдена")
	}
	return rec, nil
}
