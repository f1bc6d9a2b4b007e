package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"recruitment-backend/models"
)

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	IsActive    bool `gorm:"default:true"`
}

type Location struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);uniqueIndex"`
	City     string `gorm:"type:varchar(100)"`
	Country  string `gorm:"type:varchar(100)"`
	IsActive bool   `gorm:"default:true"`
}

// MPR is a manpower request, the approval document a hire is opened against.
type MPR struct {
	BaseModel
	// Generated on create, format YYYY-NNNN with a per-year counter.
	MPRNumber string `gorm:"type:varchar(20);uniqueIndex"`

	Status   models.MPRStatus   `gorm:"type:varchar(20);index;default:draft"`
	Priority models.MPRPriority `gorm:"type:varchar(20);default:medium"`

	JobTitleID string `gorm:"type:varchar(36)"`
	JobTitle   *Job   `gorm:"foreignKey:JobTitleID"`

	DepartmentID string              `gorm:"type:varchar(36);index"`
	Department   *OrganizationalUnit `gorm:"foreignKey:DepartmentID"`
	DivisionID   *string             `gorm:"type:varchar(36)"`
	Division     *OrganizationalUnit `gorm:"foreignKey:DivisionID"`
	UnitID       *string             `gorm:"type:varchar(36)"`
	Unit         *OrganizationalUnit `gorm:"foreignKey:UnitID"`

	LocationID *string   `gorm:"type:varchar(36)"`
	Location   *Location `gorm:"foreignKey:LocationID"`

	DesiredStartDate      *time.Time
	EmploymentType        string `gorm:"type:varchar(50)"`
	HiringReason          string
	BusinessJustification string
	EducationRequirements string
	RequiredSkills        pq.StringArray `gorm:"type:text[]"`
	AssessmentRequirements string

	RecruiterID    *string  `gorm:"type:varchar(36)"`
	Recruiter      *AppUser `gorm:"foreignKey:RecruiterID"`
	BudgetHolderID *string  `gorm:"type:varchar(36)"`
	BudgetHolder   *AppUser `gorm:"foreignKey:BudgetHolderID"`

	ProposedCandidate string `gorm:"type:varchar(255)"`

	CreatedByID *string  `gorm:"type:varchar(36)"`
	CreatedBy   *AppUser `gorm:"foreignKey:CreatedByID"`
	UpdatedByID *string  `gorm:"type:varchar(36)"`
	UpdatedBy   *AppUser `gorm:"foreignKey:UpdatedByID"`

	// Decision stamps, written only by approve/reject in the same
	// transaction as the status change.
	ApprovedByID    *string  `gorm:"type:varchar(36)"`
	ApprovedBy      *AppUser `gorm:"foreignKey:ApprovedByID"`
	ApprovedAt      *time.Time
	RejectedByID    *string  `gorm:"type:varchar(36)"`
	RejectedBy      *AppUser `gorm:"foreignKey:RejectedByID"`
	RejectedAt      *time.Time
	RejectionReason string

	Comments      []MPRComment       `gorm:"foreignKey:MPRID"`
	StatusHistory []MPRStatusHistory `gorm:"foreignKey:MPRID"`
}

type MPRComment struct {
	BaseModel
	MPRID  string   `gorm:"type:varchar(36);index"`
	UserID *string  `gorm:"type:varchar(36)"`
	User   *AppUser `gorm:"foreignKey:UserID"`

	Comment    string
	IsInternal bool
}

// MPRStatusHistory is the append-only status audit log of an MPR.
type MPRStatusHistory struct {
	BaseModel
	MPRID string `gorm:"type:varchar(36);index"`

	FromStatus *models.MPRStatus `gorm:"type:varchar(20)"`
	ToStatus   models.MPRStatus  `gorm:"type:varchar(20)"`
	Reason     string

	ChangedByID *string  `gorm:"type:varchar(36)"`
	ChangedBy   *AppUser `gorm:"foreignKey:ChangedByID"`
	ActorName   string   `gorm:"type:varchar(255)"`
}
