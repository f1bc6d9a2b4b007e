package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	CandidateModule Module = "CANDIDATE"
	InterviewModule Module = "INTERVIEW"
	MPRModule       Module = "MPR"
	OrgModule       Module = "ORG"
	EmailModule     Module = "EMAIL"
	UsersModule     Module = "USERS"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	ManagePermission  Permission = "MANAGE"
	ApprovePermission Permission = "APPROVE"
	StatusPermission  Permission = "STATUS"
	FilesPermission   Permission = "FILES"
	ExportPermission  Permission = "EXPORT"
	RolesPermission   Permission = "ROLES"
	SyncPermission    Permission = "SYNC"
)
