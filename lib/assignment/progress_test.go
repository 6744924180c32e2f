package assignmenthandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

func intPtr(v int) *int {
	return &v
}

func TestDueAt(t *testing.T) {
	assignedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`срок назначения важнее срока квеста и компании`, func(t *testing.T) {
		dueAt := DueAt(assignedAt, intPtr(3), intPtr(10), intPtr(30))
		require.Equal(t, assignedAt.AddDate(0, 0, 3), dueAt)
	})

	t.Run(`без срока назначения берётся срок квеста`, func(t *testing.T) {
		dueAt := DueAt(assignedAt, nil, intPtr(10), intPtr(30))
		require.Equal(t, assignedAt.AddDate(0, 0, 10), dueAt)
	})

	t.Run(`без срока квеста берётся срок компании`, func(t *testing.T) {
		dueAt := DueAt(assignedAt, nil, nil, intPtr(30))
		require.Equal(t, assignedAt.AddDate(0, 0, 30), dueAt)
	})

	t.Run(`без настроек берётся срок по умолчанию`, func(t *testing.T) {
		dueAt := DueAt(assignedAt, nil, nil, nil)
		require.Equal(t, assignedAt.AddDate(0, 0, DefaultDurationDays), dueAt)
	})
}

func TestProgress(t *testing.T) {
	requiredStep := &dbmodels.QuestStep{Required: true}
	optionalStep := &dbmodels.QuestStep{Required: false}

	t.Run(`без сабмишенов прогресс нулевой`, func(t *testing.T) {
		require.Equal(t, 0.0, Progress(nil))
		require.Equal(t, 0.0, Progress([]dbmodels.QuestStepSubmission{}))
	})

	t.Run(`прогресс считается по доле согласованных`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionSubmitted, Step: requiredStep},
			{Status: models.SubmissionPending, Step: optionalStep},
		}
		require.Equal(t, 50.0, Progress(subs))
	})

	t.Run(`пропущенные не считаются согласованными`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionSkipped, Step: optionalStep},
		}
		require.Equal(t, 50.0, Progress(subs))
	})

	t.Run(`все согласованы — ровно 100`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionApproved, Step: optionalStep},
		}
		require.Equal(t, 100.0, Progress(subs))
	})
}

func TestAllRequiredApproved(t *testing.T) {
	requiredStep := &dbmodels.QuestStep{Required: true}
	optionalStep := &dbmodels.QuestStep{Required: false}

	t.Run(`несогласованный обязательный шаг блокирует завершение`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionSubmitted, Step: requiredStep},
		}
		require.False(t, allRequiredApproved(subs))
	})

	t.Run(`необязательные шаги не учитываются`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionSkipped, Step: optionalStep},
		}
		require.True(t, allRequiredApproved(subs))
	})
}

func TestNextStatus(t *testing.T) {
	requiredStep := &dbmodels.QuestStep{Required: true}
	optionalStep := &dbmodels.QuestStep{Required: false}

	t.Run(`первый вышедший из pending шаг переводит назначение в работу`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionSubmitted, Step: requiredStep},
			{Status: models.SubmissionPending, Step: requiredStep},
		}
		next, changed := nextStatus(models.AssignmentAssigned, subs)
		require.True(t, changed)
		require.Equal(t, models.AssignmentInProgress, next)
	})

	t.Run(`пока все шаги в pending статус не меняется`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionPending, Step: requiredStep},
		}
		_, changed := nextStatus(models.AssignmentAssigned, subs)
		require.False(t, changed)
	})

	t.Run(`назначение в работе остаётся в работе`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionSubmitted, Step: requiredStep},
		}
		_, changed := nextStatus(models.AssignmentInProgress, subs)
		require.False(t, changed)
	})

	t.Run(`полное согласование завершает назначение`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
			{Status: models.SubmissionApproved, Step: optionalStep},
		}
		next, changed := nextStatus(models.AssignmentInProgress, subs)
		require.True(t, changed)
		require.Equal(t, models.AssignmentCompleted, next)
	})

	t.Run(`несогласованный обязательный шаг не даёт завершить назначение`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: optionalStep},
			{Status: models.SubmissionSubmitted, Step: requiredStep},
		}
		next, changed := nextStatus(models.AssignmentInProgress, subs)
		require.False(t, changed)
		require.Equal(t, models.AssignmentInProgress, next)
	})

	t.Run(`из финальных статусов переходов нет`, func(t *testing.T) {
		subs := []dbmodels.QuestStepSubmission{
			{Status: models.SubmissionApproved, Step: requiredStep},
		}
		for _, status := range []models.AssignmentStatus{models.AssignmentCompleted, models.AssignmentExpired} {
			next, changed := nextStatus(status, subs)
			require.False(t, changed)
			require.Equal(t, status, next)
		}
	})
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`незавершённое назначение после дедлайна — просрочено`, func(t *testing.T) {
		rec := dbmodels.QuestAssignment{
			Status: models.AssignmentInProgress,
			DueAt:  now.AddDate(0, 0, -1),
		}
		require.Equal(t, models.AssignmentOverdue, DisplayStatus(rec, now))
	})

	t.Run(`до дедлайна статус не меняется`, func(t *testing.T) {
		rec := dbmodels.QuestAssignment{
			Status: models.AssignmentInProgress,
			DueAt:  now.AddDate(0, 0, 1),
		}
		require.Equal(t, models.AssignmentInProgress, DisplayStatus(rec, now))
	})

	t.Run(`завершённое назначение не становится просроченным`, func(t *testing.T) {
		rec := dbmodels.QuestAssignment{
			Status: models.AssignmentCompleted,
			DueAt:  now.AddDate(0, 0, -5),
		}
		require.Equal(t, models.AssignmentCompleted, DisplayStatus(rec, now))
	})

	t.Run(`аннулированное назначение остаётся аннулированным`, func(t *testing.T) {
		rec := dbmodels.QuestAssignment{
			Status: models.AssignmentExpired,
			DueAt:  now.AddDate(0, 0, -5),
		}
		require.Equal(t, models.AssignmentExpired, DisplayStatus(rec, now))
	})
}
