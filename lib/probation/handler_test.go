package probationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

func TestEvaluateStatus(t *testing.T) {
	t.Run(`без задач статус не меняется`, func(t *testing.T) {
		status := EvaluateStatus(nil, models.ProbationOngoing)
		require.Equal(t, models.ProbationOngoing, status)
	})

	t.Run(`все задачи выполнены — passed`, func(t *testing.T) {
		tasks := []dbmodels.ProbationTask{
			{Status: models.ProbationTaskDone},
			{Status: models.ProbationTaskDone, Reviews: []dbmodels.ProbationReview{
				{Decision: models.ReviewPass},
			}},
		}
		status := EvaluateStatus(tasks, models.ProbationOngoing)
		require.Equal(t, models.ProbationPassed, status)
	})

	t.Run(`незачёт перевешивает выполненные задачи`, func(t *testing.T) {
		tasks := []dbmodels.ProbationTask{
			{Status: models.ProbationTaskDone, Reviews: []dbmodels.ProbationReview{
				{Decision: models.ReviewPass},
				{Decision: models.ReviewFail},
			}},
			{Status: models.ProbationTaskDone},
		}
		status := EvaluateStatus(tasks, models.ProbationOngoing)
		require.Equal(t, models.ProbationFailed, status)
	})

	t.Run(`незачёт действует и при невыполненных задачах`, func(t *testing.T) {
		tasks := []dbmodels.ProbationTask{
			{Status: models.ProbationTaskInProgress},
			{Status: models.ProbationTaskDone, Reviews: []dbmodels.ProbationReview{
				{Decision: models.ReviewFail},
			}},
		}
		status := EvaluateStatus(tasks, models.ProbationOngoing)
		require.Equal(t, models.ProbationFailed, status)
	})

	t.Run(`невыполненные задачи без незачётов статус не меняют`, func(t *testing.T) {
		tasks := []dbmodels.ProbationTask{
			{Status: models.ProbationTaskDone},
			{Status: models.ProbationTaskTodo},
		}
		status := EvaluateStatus(tasks, models.ProbationExtended)
		require.Equal(t, models.ProbationExtended, status)
	})

	t.Run(`решение extend само по себе статус не меняет`, func(t *testing.T) {
		tasks := []dbmodels.ProbationTask{
			{Status: models.ProbationTaskDone, Reviews: []dbmodels.ProbationReview{
				{Decision: models.ReviewExtend},
			}},
		}
		status := EvaluateStatus(tasks, models.ProbationOngoing)
		require.Equal(t, models.ProbationPassed, status)
	})
}
