package models

type ProbationTaskStatus string

const (
	ProbationTaskTodo       ProbationTaskStatus = "todo"
	ProbationTaskInProgress ProbationTaskStatus = "in_progress"
	ProbationTaskDone       ProbationTaskStatus = "done"
	ProbationTaskFailed     ProbationTaskStatus = "failed"
	ProbationTaskCancelled  ProbationTaskStatus = "cancelled"
)

var probationTaskStatusHumanName = map[ProbationTaskStatus]string{
	ProbationTaskTodo:       "К выполнению",
	ProbationTaskInProgress: "В работе",
	ProbationTaskDone:       "Выполнена",
	ProbationTaskFailed:     "Провалена",
	ProbationTaskCancelled:  "Отменена",
}

func (s ProbationTaskStatus) ToHuman() string {
	if human, exist := probationTaskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type ReviewDecision string

const (
	ReviewPass   ReviewDecision = "pass"
	ReviewExtend ReviewDecision = "extend"
	ReviewFail   ReviewDecision = "fail"
)

var reviewDecisionHumanName = map[ReviewDecision]string{
	ReviewPass:   "Зачёт",
	ReviewExtend: "Продлить",
	ReviewFail:   "Незачёт",
}

func (d ReviewDecision) ToHuman() string {
	if human, exist := reviewDecisionHumanName[d]; exist {
		return human
	}
	return string(d)
}
