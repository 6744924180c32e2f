package assignmenthandler

import (
	"time"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

// срок прохождения по умолчанию, если он не задан ни у назначения,
// ни у квеста, ни у компании
const DefaultDurationDays = 14

// DueAt вычисляет дедлайн назначения. Более частная настройка побеждает:
// срок назначения -> срок квеста -> срок компании -> константа.
// Вычисляется один раз при создании назначения.
func DueAt(assignedAt time.Time, overrideDays, questDays, companyDefaultDays *int) time.Time {
	days := DefaultDurationDays
	switch {
	case overrideDays != nil:
		days = *overrideDays
	case questDays != nil:
		days = *questDays
	case companyDefaultDays != nil:
		days = *companyDefaultDays
	}
	return assignedAt.AddDate(0, 0, days)
}

// Progress считает процент выполнения: доля согласованных шагов среди всех
// сабмишенов назначения (обязательных и необязательных). Без сабмишенов — 0.
func Progress(subs []dbmodels.QuestStepSubmission) float64 {
	total := len(subs)
	if total == 0 {
		return 0.0
	}
	approved := 0
	for _, sub := range subs {
		if sub.Status == models.SubmissionApproved {
			approved++
		}
	}
	percent := 100.0 * float64(approved) / float64(total)
	if percent < 0 {
		return 0.0
	}
	if percent > 100 {
		return 100.0
	}
	return percent
}

// allRequiredApproved: все сабмишены обязательных шагов согласованы
func allRequiredApproved(subs []dbmodels.QuestStepSubmission) bool {
	for _, sub := range subs {
		if sub.Step != nil && !sub.Step.Required {
			continue
		}
		if sub.Status != models.SubmissionApproved {
			return false
		}
	}
	return true
}

// anyStarted: хотя бы один сабмишен вышел из pending, работа над назначением началась
func anyStarted(subs []dbmodels.QuestStepSubmission) bool {
	for _, sub := range subs {
		if sub.Status != models.SubmissionPending {
			return true
		}
	}
	return false
}

// nextStatus решает, менять ли статус назначения после изменения сабмишена:
// первый вышедший из pending шаг переводит назначение в работу, полное
// согласование обязательных шагов завершает его. Из финальных статусов
// переходов нет.
func nextStatus(current models.AssignmentStatus, subs []dbmodels.QuestStepSubmission) (models.AssignmentStatus, bool) {
	if current.IsFinal() {
		return current, false
	}
	if Progress(subs) >= 100.0 && allRequiredApproved(subs) {
		return models.AssignmentCompleted, true
	}
	if current == models.AssignmentAssigned && anyStarted(subs) {
		return models.AssignmentInProgress, true
	}
	return current, false
}

// DisplayStatus возвращает статус назначения для чтения: просроченность
// вычисляется лениво по текущему времени, в БД статус не меняется.
func DisplayStatus(rec dbmodels.QuestAssignment, now time.Time) models.AssignmentStatus {
	if !rec.Status.IsFinal() && now.After(rec.DueAt) {
		return models.AssignmentOverdue
	}
	return rec.Status
}
