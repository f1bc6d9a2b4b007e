package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// roleAssignmentBase carries the fields shared by all four role tables.
// A user holds a given role in a given unit at most once.
type roleAssignmentBase struct {
	IsPrimary bool `gorm:"index"`
	IsActive  bool `gorm:"default:true;index"`

	AssignedByID *string  `gorm:"type:varchar(36)"`
	AssignedAt   time.Time
}

type Recruiter struct {
	BaseModel
	UserID string   `gorm:"type:varchar(36);uniqueIndex:idx_recruiter_user_unit"`
	User   *AppUser `gorm:"foreignKey:UserID"`

	OrganizationalUnitID string              `gorm:"type:varchar(36);uniqueIndex:idx_recruiter_user_unit"`
	OrganizationalUnit   *OrganizationalUnit `gorm:"foreignKey:OrganizationalUnitID"`

	Specialization string `gorm:"type:varchar(255)"`

	roleAssignmentBase
	AssignedBy *AppUser `gorm:"foreignKey:AssignedByID"`
}

type Manager struct {
	BaseModel
	UserID string   `gorm:"type:varchar(36);uniqueIndex:idx_manager_user_unit"`
	User   *AppUser `gorm:"foreignKey:UserID"`

	OrganizationalUnitID string              `gorm:"type:varchar(36);uniqueIndex:idx_manager_user_unit"`
	OrganizationalUnit   *OrganizationalUnit `gorm:"foreignKey:OrganizationalUnitID"`

	ManagerType models.ManagerType `gorm:"type:varchar(30)"`

	roleAssignmentBase
	AssignedBy *AppUser `gorm:"foreignKey:AssignedByID"`
}

type BudgetHolder struct {
	BaseModel
	UserID string   `gorm:"type:varchar(36);uniqueIndex:idx_budget_holder_user_unit"`
	User   *AppUser `gorm:"foreignKey:UserID"`

	OrganizationalUnitID string              `gorm:"type:varchar(36);uniqueIndex:idx_budget_holder_user_unit"`
	OrganizationalUnit   *OrganizationalUnit `gorm:"foreignKey:OrganizationalUnitID"`

	BudgetLimit *float64
	BudgetType  models.BudgetType `gorm:"type:varchar(30)"`

	roleAssignmentBase
	AssignedBy *AppUser `gorm:"foreignKey:AssignedByID"`
}

type BudgetSponsor struct {
	BaseModel
	UserID string   `gorm:"type:varchar(36);uniqueIndex:idx_budget_sponsor_user_unit"`
	User   *AppUser `gorm:"foreignKey:UserID"`

	OrganizationalUnitID string              `gorm:"type:varchar(36);uniqueIndex:idx_budget_sponsor_user_unit"`
	OrganizationalUnit   *OrganizationalUnit `gorm:"foreignKey:OrganizationalUnitID"`

	ApprovalLimit *float64
	SponsorLevel  models.SponsorLevel `gorm:"type:varchar(20)"`

	roleAssignmentBase
	AssignedBy *AppUser `gorm:"foreignKey:AssignedByID"`
}
