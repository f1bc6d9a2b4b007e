package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

type OrganizationalUnit struct {
	BaseModel
	Name     string             `gorm:"type:varchar(255)"`
	UnitType models.OrgUnitType `gorm:"type:varchar(20);index"`
	Code     string             `gorm:"type:varchar(50);uniqueIndex"`

	ParentID *string             `gorm:"type:varchar(36);index"`
	Parent   *OrganizationalUnit `gorm:"foreignKey:ParentID"`

	CostCenter     string `gorm:"type:varchar(50)"`
	HeadcountLimit *int

	// Count of active employees, recomputed on every employee write.
	CurrentHeadcount int

	// Denormalized pointers to the primary role holder per role type,
	// kept in sync by the role assignment transaction.
	PrimaryRecruiterID     *string  `gorm:"type:varchar(36)"`
	PrimaryRecruiter       *AppUser `gorm:"foreignKey:PrimaryRecruiterID"`
	PrimaryManagerID       *string  `gorm:"type:varchar(36)"`
	PrimaryManager         *AppUser `gorm:"foreignKey:PrimaryManagerID"`
	PrimaryBudgetHolderID  *string  `gorm:"type:varchar(36)"`
	PrimaryBudgetHolder    *AppUser `gorm:"foreignKey:PrimaryBudgetHolderID"`
	PrimaryBudgetSponsorID *string  `gorm:"type:varchar(36)"`
	PrimaryBudgetSponsor   *AppUser `gorm:"foreignKey:PrimaryBudgetSponsorID"`

	IsActive bool `gorm:"default:true"`
}

type Employee struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(50);uniqueIndex"`
	FirstName  string `gorm:"type:varchar(100)"`
	LastName   string `gorm:"type:varchar(100)"`
	Email      string `gorm:"type:varchar(255);index"`

	DepartmentID *string             `gorm:"type:varchar(36);index"`
	Department   *OrganizationalUnit `gorm:"foreignKey:DepartmentID"`
	PositionID   *string             `gorm:"type:varchar(36)"`
	Position     *Job                `gorm:"foreignKey:PositionID"`

	HireDate *time.Time
	IsActive bool `gorm:"default:true;index"`
}

func (e Employee) GetFullName() string {
	return e.FirstName + " " + e.LastName
}
