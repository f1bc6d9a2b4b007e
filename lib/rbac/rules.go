package rbac

import (
	"recruitment-backend/models"
)

var (
	AdminHrRoleSet        = []models.UserRole{models.AdminRole, models.HRRole}
	AdminHrManagerRoleSet = []models.UserRole{models.AdminRole, models.HRRole, models.ManagerRole}
	AdminRoleSet          = []models.UserRole{models.AdminRole}
	AllRoles              = []models.UserRole{models.AdminRole, models.HRRole, models.ManagerRole, models.SpecialistRole}
)

func (i *impl) initRules() {
	i.addCandidateRbac()
	i.addInterviewRbac()
	i.addMPRRbac()
	i.addOrgRbac()
	i.addEmailRbac()
}

func (i *impl) addCandidateRbac() {
	//VIEW
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/candidate/list [post]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/candidate/{id} [get]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/candidate/{id}/summary [get]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/candidate/{id}/status_updates [get]", nil)
	//EDIT
	i.RegisterRule(models.CandidateModule, models.CreatePermission, AdminHrRoleSet, "/api/v1/candidate [post]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id} [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id} [delete]", nil)
	//STATUS
	i.RegisterRule(models.CandidateModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/update_status [put]", nil)
	i.RegisterRule(models.CandidateModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/candidate/multi-actions/update_status [put]", nil)
	i.RegisterRule(models.CandidateModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/score [put]", nil)
	//FILES
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/attachments [post]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrManagerRoleSet, "/api/v1/candidate/{id}/attachments [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrManagerRoleSet, "/api/v1/candidate/attachments/{id} [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/candidate/attachments/{id} [delete]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/attachments/{attachmentId}/set_primary_cv [put]", nil)
	//APPLICATIONS
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/applications [post]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/candidate/{id}/applications [get]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/applications/{applicationId}/change_stage [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/applications/{applicationId}/set_primary_cv [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/candidate/{id}/applications/{applicationId}/skill_match [put]", nil)
	//EXPORT
	i.RegisterRule(models.CandidateModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/candidate/export/xls [post]", nil)
}

func (i *impl) addInterviewRbac() {
	//VIEW
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interview/list [post]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interview/{id} [get]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interview/{id}/feedback_summary [get]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interview/{id}/reschedule/history [get]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interview/round/list [get]", nil)
	//EDIT
	i.RegisterRule(models.InterviewModule, models.CreatePermission, AdminHrRoleSet, "/api/v1/interview [post]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, AdminHrRoleSet, "/api/v1/interview/{id} [put]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, AdminHrRoleSet, "/api/v1/interview/{id} [delete]", nil)
	i.RegisterRule(models.InterviewModule, models.ManagePermission, AdminRoleSet, "/api/v1/interview/round [post]", nil)
	i.RegisterRule(models.InterviewModule, models.ManagePermission, AdminRoleSet, "/api/v1/interview/round/{id} [put]", nil)
	//STATUS
	i.RegisterRule(models.InterviewModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/interview/{id}/update_status [put]", nil)
	i.RegisterRule(models.InterviewModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/interview/{id}/reschedule [put]", nil)
	i.RegisterRule(models.InterviewModule, models.StatusPermission, AdminHrRoleSet, "/api/v1/interview/{id}/cancel [put]", nil)
	//FEEDBACK
	i.RegisterRule(models.InterviewModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/interview/{id}/participants [post]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/interview/{id}/participants/{participantId} [delete]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/interview/{id}/participants/{participantId}/attended [put]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, AllRoles, "/api/v1/interview/{id}/participants/{participantId}/feedback [post]", nil)
}

func (i *impl) addMPRRbac() {
	//VIEW
	i.RegisterRule(models.MPRModule, models.ViewPermission, AllRoles, "/api/v1/mpr/list [post]", nil)
	i.RegisterRule(models.MPRModule, models.ViewPermission, AllRoles, "/api/v1/mpr/{id} [get]", nil)
	i.RegisterRule(models.MPRModule, models.ViewPermission, AllRoles, "/api/v1/mpr/{id}/status_history [get]", nil)
	i.RegisterRule(models.MPRModule, models.ViewPermission, AllRoles, "/api/v1/mpr/{id}/comments [get]", nil)
	i.RegisterRule(models.MPRModule, models.ViewPermission, AllRoles, "/api/v1/mpr/dashboard [get]", nil)
	//EDIT
	i.RegisterRule(models.MPRModule, models.CreatePermission, AdminHrManagerRoleSet, "/api/v1/mpr [post]", nil)
	i.RegisterRule(models.MPRModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/mpr/{id} [put]", nil)
	i.RegisterRule(models.MPRModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/mpr/{id} [delete]", nil)
	i.RegisterRule(models.MPRModule, models.EditPermission, AllRoles, "/api/v1/mpr/{id}/comments [post]", nil)
	i.RegisterRule(models.MPRModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/mpr/{id}/generate_description [post]", nil)
	//APPROVE
	i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrManagerRoleSet, "/api/v1/mpr/{id}/submit_for_approval [put]", nil)
	i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrRoleSet, "/api/v1/mpr/{id}/approve [put]", nil)
	i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrRoleSet, "/api/v1/mpr/{id}/reject [put]", nil)
	i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrRoleSet, "/api/v1/mpr/{id}/hold [put]", nil)
	i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrRoleSet, "/api/v1/mpr/{id}/close [put]", nil)
	//EXPORT
	i.RegisterRule(models.MPRModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/mpr/export/xls [post]", nil)
}

func (i *impl) addOrgRbac() {
	//VIEW
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/org/unit/list [post]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/org/unit/{id} [get]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/org/unit/{id}/roles [get]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/org/unit/{id}/headcount [get]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/org/employee/list [post]", nil)
	//MANAGE
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/org/unit [post]", nil)
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/org/unit/{id} [put]", nil)
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminRoleSet, "/api/v1/org/unit/{id} [delete]", nil)
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/org/employee [post]", nil)
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/org/employee/{id} [put]", nil)
	i.RegisterRule(models.OrgModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/org/employee/{id} [delete]", nil)
	//ROLES
	i.RegisterRule(models.OrgModule, models.RolesPermission, AdminHrRoleSet, "/api/v1/org/unit/{id}/assign_role [post]", nil)
	i.RegisterRule(models.OrgModule, models.RolesPermission, AdminHrRoleSet, "/api/v1/org/unit/{id}/roles/{roleType}/{assignmentId} [delete]", nil)
	i.RegisterRule(models.OrgModule, models.RolesPermission, AdminHrRoleSet, "/api/v1/org/unit/{id}/roles/{roleType}/{assignmentId}/set_primary [put]", nil)
}

func (i *impl) addEmailRbac() {
	//VIEW
	i.RegisterRule(models.EmailModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/email/account/list [get]", nil)
	i.RegisterRule(models.EmailModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/email/messages/list [post]", nil)
	i.RegisterRule(models.EmailModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/email/messages/{id} [get]", nil)
	i.RegisterRule(models.EmailModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/email/account/{id}/sync_logs [get]", nil)
	//MANAGE
	i.RegisterRule(models.EmailModule, models.ManagePermission, AdminRoleSet, "/api/v1/email/account [post]", nil)
	i.RegisterRule(models.EmailModule, models.ManagePermission, AdminRoleSet, "/api/v1/email/account/{id} [put]", nil)
	i.RegisterRule(models.EmailModule, models.ManagePermission, AdminRoleSet, "/api/v1/email/account/{id} [delete]", nil)
	//SYNC
	i.RegisterRule(models.EmailModule, models.SyncPermission, AdminHrRoleSet, "/api/v1/email/account/{id}/sync [post]", nil)
	i.RegisterRule(models.EmailModule, models.EditPermission, AdminHrRoleSet, "/api/v1/email/messages/{id}/link_candidate [post]", nil)
}
