package models

// RoleType identifies the four independent primary slots on an
// organizational unit. Promoting a primary in one slot never touches
// the others.
type RoleType string

const (
	RoleTypeRecruiter     RoleType = "recruiter"
	RoleTypeManager       RoleType = "manager"
	RoleTypeBudgetHolder  RoleType = "budget_holder"
	RoleTypeBudgetSponsor RoleType = "budget_sponsor"
)

func (t RoleType) IsValid() bool {
	switch t {
	case RoleTypeRecruiter, RoleTypeManager, RoleTypeBudgetHolder, RoleTypeBudgetSponsor:
		return true
	}
	return false
}

type ManagerType string

const (
	LineManager       ManagerType = "line_manager"
	FunctionalManager ManagerType = "functional_manager"
	ProjectManager    ManagerType = "project_manager"
	DepartmentHead    ManagerType = "department_head"
)

func (t ManagerType) IsValid() bool {
	switch t {
	case LineManager, FunctionalManager, ProjectManager, DepartmentHead:
		return true
	}
	return false
}

type BudgetType string

const (
	BudgetOperational BudgetType = "operational"
	BudgetProject     BudgetType = "project"
	BudgetHiring      BudgetType = "hiring"
	BudgetCapex       BudgetType = "capex"
)

func (t BudgetType) IsValid() bool {
	switch t {
	case BudgetOperational, BudgetProject, BudgetHiring, BudgetCapex:
		return true
	}
	return false
}

type SponsorLevel string

const (
	SponsorLevel1        SponsorLevel = "level_1"
	SponsorLevel2        SponsorLevel = "level_2"
	SponsorLevel3        SponsorLevel = "level_3"
	SponsorLevelExec     SponsorLevel = "executive"
)

func (l SponsorLevel) IsValid() bool {
	switch l {
	case SponsorLevel1, SponsorLevel2, SponsorLevel3, SponsorLevelExec:
		return true
	}
	return false
}
