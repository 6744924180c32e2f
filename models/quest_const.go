package models

type QuestStatus string

const (
	QuestDraft     QuestStatus = "draft"
	QuestPublished QuestStatus = "published"
	QuestArchived  QuestStatus = "archived"
)

var questStatusHumanName = map[QuestStatus]string{
	QuestDraft:     "Черновик",
	QuestPublished: "Опубликован",
	QuestArchived:  "В архиве",
}

func (s QuestStatus) ToHuman() string {
	if human, exist := questStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type StepType string

const (
	StepTypeDoc     StepType = "doc"
	StepTypeForm    StepType = "form"
	StepTypeUpload  StepType = "upload"
	StepTypeMeeting StepType = "meeting"
	StepTypeQuiz    StepType = "quiz"
)

// роль, которая должна согласовать шаг
type StepApprovalRole string

const (
	StepApprovalNone    StepApprovalRole = "none"
	StepApprovalManager StepApprovalRole = "manager"
	StepApprovalHR      StepApprovalRole = "hr"
)

// Allows проверяет, может ли роль участника согласовать шаг с таким требованием.
// Администраторы компании согласуют любые шаги.
func (r StepApprovalRole) Allows(role MembershipRole) bool {
	switch r {
	case StepApprovalNone:
		return true
	case StepApprovalManager:
		return role == ManagerRole || role.IsCompanyAdmin()
	case StepApprovalHR:
		return role == HRRole || role.IsCompanyAdmin()
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentAssigned   AssignmentStatus = "assigned"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentOverdue    AssignmentStatus = "overdue"
	AssignmentExpired    AssignmentStatus = "expired"
)

var assignmentStatusHumanName = map[AssignmentStatus]string{
	AssignmentAssigned:   "Назначен",
	AssignmentInProgress: "В работе",
	AssignmentCompleted:  "Завершён",
	AssignmentOverdue:    "Просрочен",
	AssignmentExpired:    "Аннулирован",
}

func (s AssignmentStatus) ToHuman() string {
	if human, exist := assignmentStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// completed и expired терминальны, из них переходов нет
func (s AssignmentStatus) IsFinal() bool {
	return s == AssignmentCompleted || s == AssignmentExpired
}

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionApproved  SubmissionStatus = "approved"
	SubmissionRejected  SubmissionStatus = "rejected"
	SubmissionSkipped   SubmissionStatus = "skipped"
)

var submissionStatusHumanName = map[SubmissionStatus]string{
	SubmissionPending:   "Ожидает выполнения",
	SubmissionSubmitted: "Отправлен на проверку",
	SubmissionApproved:  "Согласован",
	SubmissionRejected:  "Отклонён",
	SubmissionSkipped:   "Пропущен",
}

func (s SubmissionStatus) ToHuman() string {
	if human, exist := submissionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// таблица допустимых переходов статуса выполнения шага:
// pending -> submitted -> approved/rejected, pending/submitted -> skipped
var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionPending:   {SubmissionSubmitted, SubmissionSkipped},
	SubmissionSubmitted: {SubmissionApproved, SubmissionRejected, SubmissionSkipped},
}

func (s SubmissionStatus) CanTransitTo(next SubmissionStatus) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s SubmissionStatus) IsFinal() bool {
	return len(submissionTransitions[s]) == 0
}
