package models

type MembershipRole string

const (
	OwnerRole     MembershipRole = "COMPANY_OWNER"
	AdminRole     MembershipRole = "COMPANY_ADMIN"
	HRRole        MembershipRole = "HR"
	ManagerRole   MembershipRole = "MANAGER"
	EmployeeRole  MembershipRole = "EMPLOYEE"
	ApplicantRole MembershipRole = "APPLICANT"
)

var membershipRoleHumanName = map[MembershipRole]string{
	OwnerRole:     "Владелец компании",
	AdminRole:     "Администратор компании",
	HRRole:        "HR",
	ManagerRole:   "Руководитель",
	EmployeeRole:  "Сотрудник",
	ApplicantRole: "Кандидат",
}

func (r MembershipRole) ToHuman() string {
	if human, exist := membershipRoleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r MembershipRole) IsCompanyAdmin() bool {
	return r == OwnerRole || r == AdminRole
}

type MembershipStatus string

const (
	MembershipInvited    MembershipStatus = "invited"
	MembershipApplicant  MembershipStatus = "applicant"
	MembershipActive     MembershipStatus = "active"
	MembershipSuspended  MembershipStatus = "suspended"
	MembershipTerminated MembershipStatus = "terminated"
)

var membershipStatusHumanName = map[MembershipStatus]string{
	MembershipInvited:    "Приглашён",
	MembershipApplicant:  "Кандидат",
	MembershipActive:     "Работает",
	MembershipSuspended:  "Приостановлен",
	MembershipTerminated: "Уволен",
}

func (s MembershipStatus) ToHuman() string {
	if human, exist := membershipStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// увольнение финально, из terminated переходов нет
func (s MembershipStatus) IsFinal() bool {
	return s == MembershipTerminated
}

type ProbationStatus string

const (
	ProbationOngoing  ProbationStatus = "ongoing"
	ProbationExtended ProbationStatus = "extended"
	ProbationPassed   ProbationStatus = "passed"
	ProbationFailed   ProbationStatus = "failed"
)

var probationStatusHumanName = map[ProbationStatus]string{
	ProbationOngoing:  "Идёт испытательный срок",
	ProbationExtended: "Испытательный срок продлён",
	ProbationPassed:   "Испытательный срок пройден",
	ProbationFailed:   "Испытательный срок провален",
}

func (s ProbationStatus) ToHuman() string {
	if human, exist := probationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
