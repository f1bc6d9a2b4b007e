package mprapimodels

import (
	"time"

	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type MPRData struct {
	Priority models.MPRPriority `json:"priority"`

	JobTitleID   string  `json:"job_title_id"`
	DepartmentID string  `json:"department_id"`
	DivisionID   *string `json:"division_id"`
	UnitID       *string `json:"unit_id"`
	LocationID   *string `json:"location_id"`

	DesiredStartDate       *time.Time `json:"desired_start_date"`
	EmploymentType         string     `json:"employment_type"`
	HiringReason           string     `json:"hiring_reason"`
	BusinessJustification  string     `json:"business_justification"`
	EducationRequirements  string     `json:"education_requirements"`
	RequiredSkills         []string   `json:"required_skills"`
	AssessmentRequirements string     `json:"assessment_requirements"`

	RecruiterID       *string `json:"recruiter_id"`
	BudgetHolderID    *string `json:"budget_holder_id"`
	ProposedCandidate string  `json:"proposed_candidate"`
}

func (d MPRData) Validate() error {
	if d.JobTitleID == "" {
		return models.NewValidationError("job_title_id", "job title is required")
	}
	if d.DepartmentID == "" {
		return models.NewValidationError("department_id", "department is required")
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return models.NewValidationErrorf("priority", "unknown priority (%v)", d.Priority)
	}
	return nil
}

type MPRFilter struct {
	apimodels.Pagination
	Status       *models.MPRStatus   `json:"status"`
	Priority     *models.MPRPriority `json:"priority"`
	DepartmentID string              `json:"department_id"`
	RecruiterID  string              `json:"recruiter_id"`
	Search       string              `json:"search"` // substring match on mpr number and job title
}

func (f MPRFilter) Validate() error {
	if f.Status != nil && !f.Status.IsValid() {
		return models.NewValidationErrorf("status", "unknown status (%v)", *f.Status)
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return models.NewValidationErrorf("priority", "unknown priority (%v)", *f.Priority)
	}
	return nil
}

type MPRView struct {
	MPRData
	ID         string           `json:"id"`
	MPRNumber  string           `json:"mpr_number"`
	Status     models.MPRStatus `json:"status"`
	StatusName string           `json:"status_name"`

	JobTitleName   string `json:"job_title_name"`
	DepartmentName string `json:"department_name"`
	LocationName   string `json:"location_name"`
	RecruiterName  string `json:"recruiter_name"`

	CreatedBy       string     `json:"created_by"`
	ApprovedBy      string     `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectedBy      string     `json:"rejected_by"`
	RejectedAt      *time.Time `json:"rejected_at"`
	RejectionReason string     `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

func Convert(rec dbmodels.MPR) MPRView {
	result := MPRView{
		MPRData: MPRData{
			Priority:               rec.Priority,
			JobTitleID:             rec.JobTitleID,
			DepartmentID:           rec.DepartmentID,
			DivisionID:             rec.DivisionID,
			UnitID:                 rec.UnitID,
			LocationID:             rec.LocationID,
			DesiredStartDate:       rec.DesiredStartDate,
			EmploymentType:         rec.EmploymentType,
			HiringReason:           rec.HiringReason,
			BusinessJustification:  rec.BusinessJustification,
			EducationRequirements:  rec.EducationRequirements,
			RequiredSkills:         rec.RequiredSkills,
			AssessmentRequirements: rec.AssessmentRequirements,
			RecruiterID:            rec.RecruiterID,
			BudgetHolderID:         rec.BudgetHolderID,
			ProposedCandidate:      rec.ProposedCandidate,
		},
		ID:              rec.ID,
		MPRNumber:       rec.MPRNumber,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		ApprovedAt:      rec.ApprovedAt,
		RejectedAt:      rec.RejectedAt,
		RejectionReason: rec.RejectionReason,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.JobTitle != nil {
		result.JobTitleName = rec.JobTitle.Title
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.Location != nil {
		result.LocationName = rec.Location.Name
	}
	if rec.Recruiter != nil {
		result.RecruiterName = rec.Recruiter.GetFullName()
	}
	if rec.CreatedBy != nil {
		result.CreatedBy = rec.CreatedBy.GetFullName()
	}
	if rec.ApprovedBy != nil {
		result.ApprovedBy = rec.ApprovedBy.GetFullName()
	}
	if rec.RejectedBy != nil {
		result.RejectedBy = rec.RejectedBy.GetFullName()
	}
	return result
}

type DecisionRequest struct {
	Reason string `json:"reason"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r RejectRequest) Validate() error {
	if r.Reason == "" {
		return models.NewValidationError("reason", "rejection reason is required")
	}
	return nil
}

type CommentData struct {
	Comment    string `json:"comment"`
	IsInternal bool   `json:"is_internal"`
}

func (d CommentData) Validate() error {
	if d.Comment == "" {
		return models.NewValidationError("comment", "comment text is required")
	}
	return nil
}

type CommentView struct {
	ID         string    `json:"id"`
	UserName   string    `json:"user_name"`
	Comment    string    `json:"comment"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func ConvertComment(rec dbmodels.MPRComment) CommentView {
	result := CommentView{
		ID:         rec.ID,
		Comment:    rec.Comment,
		IsInternal: rec.IsInternal,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}

type StatusHistoryView struct {
	ID         string            `json:"id"`
	FromStatus *models.MPRStatus `json:"from_status"`
	ToStatus   models.MPRStatus  `json:"to_status"`
	Reason     string            `json:"reason"`
	ActorName  string            `json:"actor_name"`
	CreatedAt  time.Time         `json:"created_at"`
}

func ConvertStatusHistory(rec dbmodels.MPRStatusHistory) StatusHistoryView {
	return StatusHistoryView{
		ID:         rec.ID,
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		Reason:     rec.Reason,
		ActorName:  rec.ActorName,
		CreatedAt:  rec.CreatedAt,
	}
}

// DashboardStats is the per-status requisition breakdown.
type DashboardStats struct {
	Total    int64                      `json:"total"`
	ByStatus map[models.MPRStatus]int64 `json:"by_status"`
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
