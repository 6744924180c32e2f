package assignmenthandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

func TestCheckStepRules(t *testing.T) {
	t.Run(`обязательный шаг нельзя пропустить`, func(t *testing.T) {
		step := dbmodels.QuestStep{Required: true, ApprovalRole: models.StepApprovalNone}
		err := checkStepRules(step, models.SubmissionSkipped, models.OwnerRole)
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`необязательный шаг пропускается`, func(t *testing.T) {
		step := dbmodels.QuestStep{Required: false, ApprovalRole: models.StepApprovalNone}
		require.NoError(t, checkStepRules(step, models.SubmissionSkipped, models.EmployeeRole))
	})

	t.Run(`согласование требует роли из настройки шага`, func(t *testing.T) {
		step := dbmodels.QuestStep{Required: true, ApprovalRole: models.StepApprovalManager}

		err := checkStepRules(step, models.SubmissionApproved, models.EmployeeRole)
		require.ErrorIs(t, err, models.ErrForbidden)

		err = checkStepRules(step, models.SubmissionRejected, models.EmployeeRole)
		require.ErrorIs(t, err, models.ErrForbidden)

		require.NoError(t, checkStepRules(step, models.SubmissionApproved, models.ManagerRole))
		require.NoError(t, checkStepRules(step, models.SubmissionRejected, models.AdminRole))
	})

	t.Run(`отправка на проверку доступна без ограничений по роли`, func(t *testing.T) {
		step := dbmodels.QuestStep{Required: true, ApprovalRole: models.StepApprovalHR}
		require.NoError(t, checkStepRules(step, models.SubmissionSubmitted, models.EmployeeRole))
	})
}
