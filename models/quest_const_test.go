package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmissionTransitions(t *testing.T) {
	t.Run(`разрешённые переходы`, func(t *testing.T) {
		require.True(t, SubmissionPending.CanTransitTo(SubmissionSubmitted))
		require.True(t, SubmissionPending.CanTransitTo(SubmissionSkipped))
		require.True(t, SubmissionSubmitted.CanTransitTo(SubmissionApproved))
		require.True(t, SubmissionSubmitted.CanTransitTo(SubmissionRejected))
		require.True(t, SubmissionSubmitted.CanTransitTo(SubmissionSkipped))
	})

	t.Run(`согласование минуя отправку запрещено`, func(t *testing.T) {
		require.False(t, SubmissionPending.CanTransitTo(SubmissionApproved))
		require.False(t, SubmissionPending.CanTransitTo(SubmissionRejected))
	})

	t.Run(`из терминальных статусов переходов нет`, func(t *testing.T) {
		require.False(t, SubmissionRejected.CanTransitTo(SubmissionApproved))
		require.False(t, SubmissionApproved.CanTransitTo(SubmissionRejected))
		require.False(t, SubmissionSkipped.CanTransitTo(SubmissionSubmitted))
		require.True(t, SubmissionApproved.IsFinal())
		require.True(t, SubmissionRejected.IsFinal())
		require.True(t, SubmissionSkipped.IsFinal())
		require.False(t, SubmissionPending.IsFinal())
		require.False(t, SubmissionSubmitted.IsFinal())
	})
}

func TestStepApprovalRole(t *testing.T) {
	t.Run(`шаг без согласования доступен всем`, func(t *testing.T) {
		require.True(t, StepApprovalNone.Allows(EmployeeRole))
	})

	t.Run(`шаг руководителя согласует руководитель или администратор`, func(t *testing.T) {
		require.True(t, StepApprovalManager.Allows(ManagerRole))
		require.True(t, StepApprovalManager.Allows(OwnerRole))
		require.False(t, StepApprovalManager.Allows(HRRole))
		require.False(t, StepApprovalManager.Allows(EmployeeRole))
	})

	t.Run(`шаг hr согласует hr или администратор`, func(t *testing.T) {
		require.True(t, StepApprovalHR.Allows(HRRole))
		require.True(t, StepApprovalHR.Allows(AdminRole))
		require.False(t, StepApprovalHR.Allows(ManagerRole))
	})
}
