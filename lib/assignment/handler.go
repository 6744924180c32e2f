package assignmenthandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboard-backend/db"
	assignmentstore "onboard-backend/lib/assignment/store"
	submissionstore "onboard-backend/lib/assignment/submission-store"
	companystore "onboard-backend/lib/company/store"
	membershipstore "onboard-backend/lib/membership/store"
	queststore "onboard-backend/lib/quest/store"
	"onboard-backend/models"
	questapimodels "onboard-backend/models/api/quest"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Assign(companyID, assignedByMember string, data questapimodels.AssignData) (id string, err error)
	CompleteStep(companyID, assignmentID, stepID, actingMember string, actingRole models.MembershipRole, data questapimodels.CompleteStepData) (questapimodels.SubmissionView, error)
	Expire(companyID, assignmentID string) error
	GetByID(companyID, assignmentID string) (questapimodels.AssignmentView, error)
	ListByMembership(companyID, membershipID string) ([]questapimodels.AssignmentView, error)
	ListByCompany(companyID string) ([]dbmodels.QuestAssignment, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           assignmentstore.NewInstance(db.DB),
		submissionStore: submissionstore.NewInstance(db.DB),
		questStore:      queststore.NewInstance(db.DB),
		membershipStore: membershipstore.NewInstance(db.DB),
		companyStore:    companystore.NewInstance(db.DB),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

type impl struct {
	store           assignmentstore.Provider
	submissionStore submissionstore.Provider
	questStore      queststore.Provider
	membershipStore membershipstore.Provider
	companyStore    companystore.Provider
	// источник времени, в тестах подменяется
	now func() time.Time
}

func (i impl) getLogger(companyID string) *log.Entry {
	return log.WithField("company_id", companyID)
}

// Assign создаёт назначение квеста: дедлайн вычисляется один раз до записи,
// по каждому обязательному шагу заводится сабмишен в статусе pending.
func (i impl) Assign(companyID, assignedByMember string, data questapimodels.AssignData) (id string, err error) {
	logger := i.getLogger(companyID).
		WithField("quest_id", data.QuestID).
		WithField("membership_id", data.MembershipID)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := assignmentstore.NewInstance(tx)
		submissionStore := submissionstore.NewInstance(tx)
		questStore := queststore.NewInstance(tx)
		membershipStore := membershipstore.NewInstance(tx)
		companyStore := companystore.NewInstance(tx)

		quest, err := questStore.GetByID(companyID, data.QuestID)
		if err != nil {
			return err
		}
		if quest == nil {
			return errors.Wrap(models.ErrNotFound, "квест не найден")
		}
		member, err := membershipStore.GetByID(companyID, data.MembershipID)
		if err != nil {
			return err
		}
		if member == nil {
			return errors.Wrap(models.ErrNotFound, "участник не найден")
		}
		if quest.CompanyID != member.CompanyID {
			return errors.Wrap(models.ErrInvalidInput, "квест и участник из разных компаний")
		}
		exist, err := store.GetByQuestAndMembership(quest.ID, member.ID)
		if err != nil {
			return err
		}
		if exist != nil {
			return errors.Wrap(models.ErrConflict, "квест уже назначен участнику")
		}
		company, err := companyStore.GetByID(companyID)
		if err != nil {
			return err
		}
		var companyDefault *int
		if company != nil {
			companyDefault = company.DefaultQuestDurationDays
		}

		assignedAt := i.now()
		rec := dbmodels.QuestAssignment{
			QuestID:              quest.ID,
			MembershipID:         member.ID,
			AssignedByMember:     assignedByMember,
			OverrideDurationDays: data.OverrideDurationDays,
			AssignedAt:           assignedAt,
			DueAt:                DueAt(assignedAt, data.OverrideDurationDays, quest.DurationDays, companyDefault),
			Status:               models.AssignmentAssigned,
			ProgressPercent:      0,
		}
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		for _, step := range quest.Steps {
			if !step.Required {
				continue
			}
			sub := dbmodels.QuestStepSubmission{
				QuestAssignmentID: id,
				QuestStepID:       step.ID,
				Status:            models.SubmissionPending,
			}
			if _, err = submissionStore.Create(sub); err != nil {
				return errors.Wrapf(err, "ошибка создания сабмишена по шагу %v", step.ID)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.WithField("rec_id", id).Info("квест назначен участнику")
	return id, nil
}

// CompleteStep выполняет переход статуса сабмишена и пересчитывает прогресс
// назначения в той же транзакции.
func (i impl) CompleteStep(companyID, assignmentID, stepID, actingMember string, actingRole models.MembershipRole, data questapimodels.CompleteStepData) (questapimodels.SubmissionView, error) {
	var view questapimodels.SubmissionView
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := assignmentstore.NewInstance(tx)
		submissionStore := submissionstore.NewInstance(tx)

		assignment, err := i.getRec(store, companyID, assignmentID)
		if err != nil {
			return err
		}
		if assignment.Status.IsFinal() {
			return errors.Wrapf(models.ErrInvalidState, "назначение в финальном статусе: %v", assignment.Status.ToHuman())
		}
		step := findStep(assignment, stepID)
		if step == nil {
			return errors.Wrap(models.ErrNotFound, "шаг не найден")
		}
		sub, err := submissionStore.GetByAssignmentAndStep(assignment.ID, stepID)
		if err != nil {
			return err
		}
		if sub == nil {
			// сабмишены заводятся заранее только по обязательным шагам,
			// по необязательному создаём при первом обращении
			sub, err = i.createOptionalSubmission(tx, assignment.ID, step.ID)
			if err != nil {
				return err
			}
		}
		if !sub.Status.CanTransitTo(data.Status) {
			return errors.Wrapf(models.ErrInvalidState, "переход %v -> %v недопустим",
				sub.Status.ToHuman(), data.Status.ToHuman())
		}
		if err = checkStepRules(*step, data.Status, actingRole); err != nil {
			return err
		}

		now := i.now()
		updMap := map[string]interface{}{
			"status": data.Status,
		}
		if sub.Status == models.SubmissionPending {
			updMap["submitted_at"] = now
		}
		if data.Status == models.SubmissionApproved {
			updMap["reviewed_at"] = now
		}
		if actingMember != "" && data.Status != models.SubmissionSubmitted {
			updMap["reviewed_by_member"] = actingMember
		}
		if data.Data != nil {
			updMap["data"] = data.Data
		}
		if err = submissionStore.Update(sub.ID, updMap); err != nil {
			return err
		}
		if err = i.recomputeProgress(tx, assignment, now); err != nil {
			return err
		}
		updated, err := submissionStore.GetByID(sub.ID)
		if err != nil {
			return err
		}
		view = questapimodels.SubmissionConvert(*updated)
		return nil
	})
	if err != nil {
		return questapimodels.SubmissionView{}, err
	}
	i.getLogger(companyID).
		WithField("rec_id", assignmentID).
		WithField("step_id", stepID).
		WithField("new_status", data.Status).
		Info("изменён статус шага назначения")
	return view, nil
}

func findStep(assignment *dbmodels.QuestAssignment, stepID string) *dbmodels.QuestStep {
	if assignment.Quest == nil {
		return nil
	}
	for idx := range assignment.Quest.Steps {
		if assignment.Quest.Steps[idx].ID == stepID {
			return &assignment.Quest.Steps[idx]
		}
	}
	return nil
}

// checkStepRules проверяет допустимость целевого статуса с учётом настроек шага:
// пропуск разрешён только для необязательных шагов, согласование и отклонение
// требуют роли из настройки шага.
func checkStepRules(step dbmodels.QuestStep, target models.SubmissionStatus, actingRole models.MembershipRole) error {
	switch target {
	case models.SubmissionSkipped:
		if step.Required {
			return errors.Wrap(models.ErrInvalidState, "обязательный шаг нельзя пропустить")
		}
	case models.SubmissionApproved, models.SubmissionRejected:
		if !step.ApprovalRole.Allows(actingRole) {
			return errors.Wrapf(models.ErrForbidden, "согласование шага требует роли %v", step.ApprovalRole)
		}
	}
	return nil
}

func (i impl) createOptionalSubmission(tx *gorm.DB, assignmentID, stepID string) (*dbmodels.QuestStepSubmission, error) {
	submissionStore := submissionstore.NewInstance(tx)
	sub := dbmodels.QuestStepSubmission{
		QuestAssignmentID: assignmentID,
		QuestStepID:       stepID,
		Status:            models.SubmissionPending,
	}
	id, err := submissionStore.Create(sub)
	if err != nil {
		return nil, err
	}
	return submissionStore.GetByID(id)
}

// recomputeProgress централизованно пересчитывает производные поля назначения
// после каждого изменения сабмишена.
func (i impl) recomputeProgress(tx *gorm.DB, assignment *dbmodels.QuestAssignment, now time.Time) error {
	store := assignmentstore.NewInstance(tx)
	submissionStore := submissionstore.NewInstance(tx)
	subs, err := submissionStore.ListByAssignment(assignment.ID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"progress_percent": Progress(subs),
	}
	if next, changed := nextStatus(assignment.Status, subs); changed {
		updMap["status"] = next
		if next == models.AssignmentCompleted {
			updMap["completed_at"] = now
		}
	}
	return store.Update(assignment.ID, updMap)
}

// Expire аннулирует назначение (административная операция, статус терминальный)
func (i impl) Expire(companyID, assignmentID string) error {
	assignment, err := i.getRec(i.store, companyID, assignmentID)
	if err != nil {
		return err
	}
	if assignment.Status.IsFinal() {
		return errors.Wrapf(models.ErrInvalidState, "назначение в финальном статусе: %v", assignment.Status.ToHuman())
	}
	updMap := map[string]interface{}{
		"status": models.AssignmentExpired,
	}
	if err = i.store.Update(assignmentID, updMap); err != nil {
		return err
	}
	i.getLogger(companyID).WithField("rec_id", assignmentID).Info("назначение аннулировано")
	return nil
}

func (i impl) GetByID(companyID, assignmentID string) (questapimodels.AssignmentView, error) {
	rec, err := i.getRec(i.store, companyID, assignmentID)
	if err != nil {
		return questapimodels.AssignmentView{}, err
	}
	return questapimodels.AssignmentConvert(*rec, DisplayStatus(*rec, i.now())), nil
}

func (i impl) ListByMembership(companyID, membershipID string) ([]questapimodels.AssignmentView, error) {
	member, err := i.membershipStore.GetByID(companyID, membershipID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.Wrap(models.ErrNotFound, "участник не найден")
	}
	recList, err := i.store.ListByMembership(membershipID)
	if err != nil {
		return nil, err
	}
	now := i.now()
	result := make([]questapimodels.AssignmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, questapimodels.AssignmentConvert(rec, DisplayStatus(rec, now)))
	}
	return result, nil
}

func (i impl) ListByCompany(companyID string) ([]dbmodels.QuestAssignment, error) {
	return i.store.ListByCompany(companyID)
}

func (i impl) getRec(store assignmentstore.Provider, companyID, id string) (*dbmodels.QuestAssignment, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Quest == nil || rec.Quest.CompanyID != companyID {
		return nil, errors.Wrap(models.ErrNotFound, "назначение не найдено")
	}
	return rec, nil
}
