package orgapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

// AssignRoleRequest carries the role type plus its type-specific metadata.
// Only the fields matching RoleType are read.
type AssignRoleRequest struct {
	UserID    string          `json:"user_id"`
	RoleType  models.RoleType `json:"role_type"`
	IsPrimary bool            `json:"is_primary"`

	Specialization string              `json:"specialization"`  // recruiter
	ManagerType    models.ManagerType  `json:"manager_type"`    // manager
	BudgetLimit    *float64            `json:"budget_limit"`    // budget holder
	BudgetType     models.BudgetType   `json:"budget_type"`     // budget holder
	ApprovalLimit  *float64            `json:"approval_limit"`  // budget sponsor
	SponsorLevel   models.SponsorLevel `json:"sponsor_level"`   // budget sponsor
}

func (r AssignRoleRequest) Validate() error {
	if r.UserID == "" {
		return models.NewValidationError("user_id", "user id is required")
	}
	if !r.RoleType.IsValid() {
		return models.NewValidationErrorf("role_type", "unknown role type (%v)", r.RoleType)
	}
	switch r.RoleType {
	case models.RoleTypeManager:
		if !r.ManagerType.IsValid() {
			return models.NewValidationErrorf("manager_type", "unknown manager type (%v)", r.ManagerType)
		}
	case models.RoleTypeBudgetHolder:
		if !r.BudgetType.IsValid() {
			return models.NewValidationErrorf("budget_type", "unknown budget type (%v)", r.BudgetType)
		}
		if r.BudgetLimit != nil && *r.BudgetLimit < 0 {
			return models.NewValidationError("budget_limit", "must not be negative")
		}
	case models.RoleTypeBudgetSponsor:
		if !r.SponsorLevel.IsValid() {
			return models.NewValidationErrorf("sponsor_level", "unknown sponsor level (%v)", r.SponsorLevel)
		}
		if r.ApprovalLimit != nil && *r.ApprovalLimit < 0 {
			return models.NewValidationError("approval_limit", "must not be negative")
		}
	}
	return nil
}

type RoleAssignmentView struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	RoleType  models.RoleType `json:"role_type"`
	IsPrimary bool            `json:"is_primary"`
	IsActive  bool            `json:"is_active"`

	Specialization string              `json:"specialization,omitempty"`
	ManagerType    models.ManagerType  `json:"manager_type,omitempty"`
	BudgetLimit    *float64            `json:"budget_limit,omitempty"`
	BudgetType     models.BudgetType   `json:"budget_type,omitempty"`
	ApprovalLimit  *float64            `json:"approval_limit,omitempty"`
	SponsorLevel   models.SponsorLevel `json:"sponsor_level,omitempty"`

	AssignedAt time.Time `json:"assigned_at"`
}

// UnitRoles lists active assignments per role type, primary first.
type UnitRoles struct {
	Recruiters     []RoleAssignmentView `json:"recruiters"`
	Managers       []RoleAssignmentView `json:"managers"`
	BudgetHolders  []RoleAssignmentView `json:"budget_holders"`
	BudgetSponsors []RoleAssignmentView `json:"budget_sponsors"`
}

func ConvertRecruiter(rec dbmodels.Recruiter) RoleAssignmentView {
	result := RoleAssignmentView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		RoleType:       models.RoleTypeRecruiter,
		IsPrimary:      rec.IsPrimary,
		IsActive:       rec.IsActive,
		Specialization: rec.Specialization,
		AssignedAt:     rec.AssignedAt,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}

func ConvertManager(rec dbmodels.Manager) RoleAssignmentView {
	result := RoleAssignmentView{
		ID:          rec.ID,
		UserID:      rec.UserID,
		RoleType:    models.RoleTypeManager,
		IsPrimary:   rec.IsPrimary,
		IsActive:    rec.IsActive,
		ManagerType: rec.ManagerType,
		AssignedAt:  rec.AssignedAt,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}

func ConvertBudgetHolder(rec dbmodels.BudgetHolder) RoleAssignmentView {
	result := RoleAssignmentView{
		ID:          rec.ID,
		UserID:      rec.UserID,
		RoleType:    models.RoleTypeBudgetHolder,
		IsPrimary:   rec.IsPrimary,
		IsActive:    rec.IsActive,
		BudgetLimit: rec.BudgetLimit,
		BudgetType:  rec.BudgetType,
		AssignedAt:  rec.AssignedAt,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}

func ConvertBudgetSponsor(rec dbmodels.BudgetSponsor) RoleAssignmentView {
	result := RoleAssignmentView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		RoleType:      models.RoleTypeBudgetSponsor,
		IsPrimary:     rec.IsPrimary,
		IsActive:      rec.IsActive,
		ApprovalLimit: rec.ApprovalLimit,
		SponsorLevel:  rec.SponsorLevel,
		AssignedAt:    rec.AssignedAt,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}
