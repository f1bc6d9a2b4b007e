package dbmodels

import (
	"recruitment-backend/models"
)

// CandidateMPR links a candidate to a requisition they applied to.
// One application per (candidate, mpr) pair.
type CandidateMPR struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_mpr"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	MPRID       string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_mpr"`
	MPR         *MPR       `gorm:"foreignKey:MPRID"`

	ApplicationStage models.ApplicationStage `gorm:"type:varchar(30);default:applied"`

	// CV used for this application, one per application.
	PrimaryCVID *string              `gorm:"type:varchar(36)"`
	PrimaryCV   *CandidateAttachment `gorm:"foreignKey:PrimaryCVID"`

	// Skill match against the requisition, recomputed on demand from
	// MPR.RequiredSkills and the candidate's skill lists.
	SkillMatchPercentage *int
	MatchedSkillsCount   *int
	TotalSkillsCount     *int

	ApplicationNotes string
	RecruiterNotes   string

	UpdatedByID *string  `gorm:"type:varchar(36)"`
	UpdatedBy   *AppUser `gorm:"foreignKey:UpdatedByID"`
}
