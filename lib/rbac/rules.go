package rbac

import (
	"onboard-backend/models"
)

var (
	AdminRoleSet          = []models.MembershipRole{models.OwnerRole, models.AdminRole}
	AdminHrRoleSet        = []models.MembershipRole{models.OwnerRole, models.AdminRole, models.HRRole}
	AdminHrManagerRoleSet = []models.MembershipRole{models.OwnerRole, models.AdminRole, models.HRRole, models.ManagerRole}
	AllRoles              = []models.MembershipRole{models.OwnerRole, models.AdminRole, models.HRRole, models.ManagerRole, models.EmployeeRole}
)

func (i *impl) initRules() {
	i.addCompanyRbac()
	i.addMembershipRbac()
	i.addQuestRbac()
	i.addAssignmentRbac()
	i.addProbationRbac()
	i.addReportRbac()
}

func (i *impl) addCompanyRbac() {
	i.RegisterRule(models.CompanyModule, models.ViewPermission, AllRoles, "/api/v1/space/company [get]", nil)
	i.RegisterRule(models.CompanyModule, models.ManagePermission, AdminRoleSet, "/api/v1/space/company [put]", nil)
}

func (i *impl) addMembershipRbac() {
	//VIEW
	i.RegisterRule(models.MembershipModule, models.ViewPermission, AllRoles, "/api/v1/space/members [get]", nil)
	i.RegisterRule(models.MembershipModule, models.ViewPermission, AllRoles, "/api/v1/space/members/{id} [get]", nil)
	i.RegisterRule(models.MembershipModule, models.ViewPermission, AllRoles, "/api/v1/space/members/{id}/subordinates [get]", nil)
	//MANAGE
	i.RegisterRule(models.MembershipModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/members/invite [post]", nil)
	i.RegisterRule(models.MembershipModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/members/{id}/activate [put]", nil)
	i.RegisterRule(models.MembershipModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/members/{id}/manager [put]", nil)
	i.RegisterRule(models.MembershipModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/members/{id}/terminate [put]", nil)
	i.RegisterRule(models.MembershipModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/members/{id}/probation_status [put]", nil)
}

func (i *impl) addQuestRbac() {
	//VIEW
	i.RegisterRule(models.QuestModule, models.ViewPermission, AllRoles, "/api/v1/space/quests [get]", nil)
	i.RegisterRule(models.QuestModule, models.ViewPermission, AllRoles, "/api/v1/space/quests/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.QuestModule, models.CreatePermission, AdminHrRoleSet, "/api/v1/space/quests [post]", nil)
	i.RegisterRule(models.QuestModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/quests/{id} [put]", nil)
	i.RegisterRule(models.QuestModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/quests/{id}/steps [post]", nil)
	i.RegisterRule(models.QuestModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/quests/{id}/steps/{stepId} [delete]", nil)
	i.RegisterRule(models.QuestModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/quests/{id}/publish [put]", nil)
	i.RegisterRule(models.QuestModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/quests/{id}/archive [put]", nil)
}

func (i *impl) addAssignmentRbac() {
	//VIEW
	i.RegisterRule(models.AssignmentModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/space/assignments [get]", nil)
	i.RegisterRule(models.AssignmentModule, models.ViewPermission, AllRoles, "/api/v1/space/assignments/{id} [get]", nil)
	i.RegisterRule(models.AssignmentModule, models.ViewPermission, AllRoles, "/api/v1/space/members/{id}/assignments [get]", nil)
	//ASSIGN
	i.RegisterRule(models.AssignmentModule, models.AssignPermission, AdminHrManagerRoleSet, "/api/v1/space/assignments [post]", nil)
	i.RegisterRule(models.AssignmentModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/assignments/{id}/expire [put]", nil)
	//APPROVE: роль согласования конкретного шага проверяется в контроллере
	//по approval_role шага, здесь только отсечение кандидатов
	i.RegisterRule(models.AssignmentModule, models.ApprovePermission, AllRoles, "/api/v1/space/assignments/{id}/steps/{stepId} [put]", nil)
}

func (i *impl) addProbationRbac() {
	//VIEW
	i.RegisterRule(models.ProbationModule, models.ViewPermission, AllRoles, "/api/v1/space/probation/tasks/{id} [get]", nil)
	i.RegisterRule(models.ProbationModule, models.ViewPermission, AllRoles, "/api/v1/space/members/{id}/probation/tasks [get]", nil)
	//MANAGE
	i.RegisterRule(models.ProbationModule, models.CreatePermission, AdminHrManagerRoleSet, "/api/v1/space/probation/tasks [post]", nil)
	i.RegisterRule(models.ProbationModule, models.EditPermission, AllRoles, "/api/v1/space/probation/tasks/{id}/status [put]", nil)
	i.RegisterRule(models.ProbationModule, models.ApprovePermission, AdminHrManagerRoleSet, "/api/v1/space/probation/tasks/{id}/review [post]", nil)
	i.RegisterRule(models.ProbationModule, models.EvaluatePermission, AdminHrRoleSet, "/api/v1/space/members/{id}/probation/evaluate [post]", nil)
}

func (i *impl) addReportRbac() {
	i.RegisterRule(models.ReportModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/space/reports/assignments/xlsx [get]", nil)
}
