package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"recruitment-backend/models"
)

type Candidate struct {
	BaseModel
	Email string `gorm:"type:varchar(255);uniqueIndex"`
	Name  string `gorm:"type:varchar(255)"`

	Phone            string `gorm:"type:varchar(20)"`
	AlternativePhone string `gorm:"type:varchar(20)"`
	Location         string `gorm:"type:varchar(255)"`
	Address          string
	DateOfBirth      *time.Time
	Nationality      string `gorm:"type:varchar(100)"`

	CurrentPosition     string `gorm:"type:varchar(255)"`
	CurrentCompany      string `gorm:"type:varchar(255)"`
	ProfessionalSummary string
	ExperienceYears     *int

	ProfessionalSkills pq.StringArray `gorm:"type:text[]"`
	TechnicalSkills    pq.StringArray `gorm:"type:text[]"`
	SoftSkills         pq.StringArray `gorm:"type:text[]"`
	Languages          pq.StringArray `gorm:"type:text[]"`
	Certifications     pq.StringArray `gorm:"type:text[]"`

	LinkedinURL     string `gorm:"type:varchar(500)"`
	PortfolioURL    string `gorm:"type:varchar(500)"`
	GithubURL       string `gorm:"type:varchar(500)"`
	PersonalWebsite string `gorm:"type:varchar(500)"`

	HiringStatus models.HiringStatus `gorm:"type:varchar(20);index;default:applied"`

	// Individual scores, set by the scoring endpoint. OverallScore is
	// recomputed from them, never written directly.
	HRInterviewScore     *float64
	PortfolioReviewScore *float64
	DesignTestScore      *float64
	OverallScore         *float64 `gorm:"index"`

	SkillMatchPercentage *int
	MatchedSkillsCount   *int
	TotalSkillsCount     *int

	SalaryExpectation *float64
	SalaryCurrency    string `gorm:"type:varchar(3);default:USD"`
	AvailabilityDate  *time.Time
	NoticePeriodDays  *int

	InternalNotes string
	AppliedAt     time.Time `gorm:"index"`

	Attachments   []CandidateAttachment  `gorm:"foreignKey:CandidateID"`
	StatusUpdates []CandidateStatusUpdate `gorm:"foreignKey:CandidateID"`
	Applications  []CandidateMPR          `gorm:"foreignKey:CandidateID"`
}
