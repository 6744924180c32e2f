package models

type RbacFunc func(companyID, memberID string, role MembershipRole, path string) bool

type Module string

const (
	MembershipModule Module = "MEMBERSHIP"
	QuestModule      Module = "QUEST"
	AssignmentModule Module = "ASSIGNMENT"
	ProbationModule  Module = "PROBATION"
	CompanyModule    Module = "COMPANY"
	ReportModule     Module = "REPORT"
)

type Permission string

const (
	CreatePermission   Permission = "CREATE"
	EditPermission     Permission = "EDIT"
	ViewPermission     Permission = "VIEW"
	ManagePermission   Permission = "MANAGE"
	AssignPermission   Permission = "ASSIGN"
	ApprovePermission  Permission = "APPROVE"
	EvaluatePermission Permission = "EVALUATE"
	ExportPermission   Permission = "EXPORT"
)
