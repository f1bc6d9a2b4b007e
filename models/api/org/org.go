package orgapimodels

import (
	"time"

	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type UnitData struct {
	Name           string             `json:"name"`
	UnitType       models.OrgUnitType `json:"unit_type"`
	Code           string             `json:"code"`
	ParentID       *string            `json:"parent_id"`
	CostCenter     string             `json:"cost_center"`
	HeadcountLimit *int               `json:"headcount_limit"`
	IsActive       bool               `json:"is_active"`
}

func (d UnitData) Validate() error {
	if d.Name == "" {
		return models.NewValidationError("name", "unit name is required")
	}
	if d.Code == "" {
		return models.NewValidationError("code", "unit code is required")
	}
	if !d.UnitType.IsValid() {
		return models.NewValidationErrorf("unit_type", "unknown unit type (%v)", d.UnitType)
	}
	if d.HeadcountLimit != nil && *d.HeadcountLimit < 0 {
		return models.NewValidationError("headcount_limit", "must not be negative")
	}
	return nil
}

type UnitFilter struct {
	apimodels.Pagination
	UnitType *models.OrgUnitType `json:"unit_type"`
	ParentID string              `json:"parent_id"`
	Search   string              `json:"search"`
}

func (f UnitFilter) Validate() error {
	if f.UnitType != nil && !f.UnitType.IsValid() {
		return models.NewValidationErrorf("unit_type", "unknown unit type (%v)", *f.UnitType)
	}
	return nil
}

type UnitView struct {
	UnitData
	ID               string `json:"id"`
	CurrentHeadcount int    `json:"current_headcount"`

	PrimaryRecruiter     string `json:"primary_recruiter"`
	PrimaryManager       string `json:"primary_manager"`
	PrimaryBudgetHolder  string `json:"primary_budget_holder"`
	PrimaryBudgetSponsor string `json:"primary_budget_sponsor"`

	CreatedAt time.Time `json:"created_at"`
}

func ConvertUnit(rec dbmodels.OrganizationalUnit) UnitView {
	result := UnitView{
		UnitData: UnitData{
			Name:           rec.Name,
			UnitType:       rec.UnitType,
			Code:           rec.Code,
			ParentID:       rec.ParentID,
			CostCenter:     rec.CostCenter,
			HeadcountLimit: rec.HeadcountLimit,
			IsActive:       rec.IsActive,
		},
		ID:               rec.ID,
		CurrentHeadcount: rec.CurrentHeadcount,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.PrimaryRecruiter != nil {
		result.PrimaryRecruiter = rec.PrimaryRecruiter.GetFullName()
	}
	if rec.PrimaryManager != nil {
		result.PrimaryManager = rec.PrimaryManager.GetFullName()
	}
	if rec.PrimaryBudgetHolder != nil {
		result.PrimaryBudgetHolder = rec.PrimaryBudgetHolder.GetFullName()
	}
	if rec.PrimaryBudgetSponsor != nil {
		result.PrimaryBudgetSponsor = rec.PrimaryBudgetSponsor.GetFullName()
	}
	return result
}

type EmployeeData struct {
	EmployeeID   string     `json:"employee_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	DepartmentID *string    `json:"department_id"`
	PositionID   *string    `json:"position_id"`
	HireDate     *time.Time `json:"hire_date"`
	IsActive     bool       `json:"is_active"`
}

func (d EmployeeData) Validate() error {
	if d.EmployeeID == "" {
		return models.NewValidationError("employee_id", "employee id is required")
	}
	if d.FirstName == "" || d.LastName == "" {
		return models.NewValidationError("name", "first and last name are required")
	}
	return nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	DepartmentID string `json:"department_id"`
	ActiveOnly   bool   `json:"active_only"`
	Search       string `json:"search"`
}

type EmployeeView struct {
	EmployeeData
	ID             string `json:"id"`
	DepartmentName string `json:"department_name"`
	PositionName   string `json:"position_name"`
}

func ConvertEmployee(rec dbmodels.Employee) EmployeeView {
	result := EmployeeView{
		EmployeeData: EmployeeData{
			EmployeeID:   rec.EmployeeID,
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Email:        rec.Email,
			DepartmentID: rec.DepartmentID,
			PositionID:   rec.PositionID,
			HireDate:     rec.HireDate,
			IsActive:     rec.IsActive,
		},
		ID: rec.ID,
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.Position != nil {
		result.PositionName = rec.Position.Title
	}
	return result
}

type HeadcountView struct {
	UnitID           string `json:"unit_id"`
	CurrentHeadcount int    `json:"current_headcount"`
	HeadcountLimit   *int   `json:"headcount_limit"`
}
