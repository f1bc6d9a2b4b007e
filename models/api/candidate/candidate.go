package candidateapimodels

import (
	"strings"
	"time"

	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type CandidateData struct {
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	AlternativePhone string     `json:"alternative_phone"`
	Location         string     `json:"location"`
	Address          string     `json:"address"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Nationality      string     `json:"nationality"`

	CurrentPosition     string `json:"current_position"`
	CurrentCompany      string `json:"current_company"`
	ProfessionalSummary string `json:"professional_summary"`
	ExperienceYears     *int   `json:"experience_years"`

	ProfessionalSkills []string `json:"professional_skills"`
	TechnicalSkills    []string `json:"technical_skills"`
	SoftSkills         []string `json:"soft_skills"`
	Languages          []string `json:"languages"`
	Certifications     []string `json:"certifications"`

	LinkedinURL     string `json:"linkedin_url"`
	PortfolioURL    string `json:"portfolio_url"`
	GithubURL       string `json:"github_url"`
	PersonalWebsite string `json:"personal_website"`

	SalaryExpectation *float64   `json:"salary_expectation"`
	SalaryCurrency    string     `json:"salary_currency"`
	AvailabilityDate  *time.Time `json:"availability_date"`
	NoticePeriodDays  *int       `json:"notice_period_days"`

	InternalNotes string `json:"internal_notes"`
}

func (c CandidateData) Validate() error {
	if c.Email == "" {
		return models.NewValidationError("email", "email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return models.NewValidationError("email", "invalid email address")
	}
	if c.Name == "" {
		return models.NewValidationError("name", "name is required")
	}
	if c.ExperienceYears != nil && *c.ExperienceYears < 0 {
		return models.NewValidationError("experience_years", "must not be negative")
	}
	if c.SalaryExpectation != nil && *c.SalaryExpectation < 0 {
		return models.NewValidationError("salary_expectation", "must not be negative")
	}
	return nil
}

type CandidateFilter struct {
	apimodels.Pagination
	Search       string               `json:"search"`         // substring match on name and email
	HiringStatus *models.HiringStatus `json:"hiring_status"`  //
	Location     string               `json:"location"`       //
	MinScore     *float64             `json:"min_score"`      // minimal overall score
	SortBy       string               `json:"sort_by"`        // applied_at / overall_score / name
	SortDesc     bool                 `json:"sort_desc"`      //
}

func (f CandidateFilter) Validate() error {
	if f.HiringStatus != nil && !f.HiringStatus.IsValid() {
		return models.NewValidationErrorf("hiring_status", "unknown status (%v)", *f.HiringStatus)
	}
	switch f.SortBy {
	case "", "applied_at", "overall_score", "name":
	default:
		return models.NewValidationErrorf("sort_by", "unsupported sort field (%v)", f.SortBy)
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID           string              `json:"id"`
	HiringStatus models.HiringStatus `json:"hiring_status"`
	StatusName   string              `json:"status_name"`

	HRInterviewScore     *float64 `json:"hr_interview_score"`
	PortfolioReviewScore *float64 `json:"portfolio_review_score"`
	DesignTestScore      *float64 `json:"design_test_score"`
	OverallScore         *float64 `json:"overall_score"`

	SkillMatchPercentage *int `json:"skill_match_percentage"`
	MatchedSkillsCount   *int `json:"matched_skills_count"`
	TotalSkillsCount     *int `json:"total_skills_count"`

	AppliedAt time.Time `json:"applied_at"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			Email:               rec.Email,
			Name:                rec.Name,
			Phone:               rec.Phone,
			AlternativePhone:    rec.AlternativePhone,
			Location:            rec.Location,
			Address:             rec.Address,
			DateOfBirth:         rec.DateOfBirth,
			Nationality:         rec.Nationality,
			CurrentPosition:     rec.CurrentPosition,
			CurrentCompany:      rec.CurrentCompany,
			ProfessionalSummary: rec.ProfessionalSummary,
			ExperienceYears:     rec.ExperienceYears,
			ProfessionalSkills:  rec.ProfessionalSkills,
			TechnicalSkills:     rec.TechnicalSkills,
			SoftSkills:          rec.SoftSkills,
			Languages:           rec.Languages,
			Certifications:      rec.Certifications,
			LinkedinURL:         rec.LinkedinURL,
			PortfolioURL:        rec.PortfolioURL,
			GithubURL:           rec.GithubURL,
			PersonalWebsite:     rec.PersonalWebsite,
			SalaryExpectation:   rec.SalaryExpectation,
			SalaryCurrency:      rec.SalaryCurrency,
			AvailabilityDate:    rec.AvailabilityDate,
			NoticePeriodDays:    rec.NoticePeriodDays,
			InternalNotes:       rec.InternalNotes,
		},
		ID:                   rec.ID,
		HiringStatus:         rec.HiringStatus,
		StatusName:           rec.HiringStatus.ToHuman(),
		HRInterviewScore:     rec.HRInterviewScore,
		PortfolioReviewScore: rec.PortfolioReviewScore,
		DesignTestScore:      rec.DesignTestScore,
		OverallScore:         rec.OverallScore,
		SkillMatchPercentage: rec.SkillMatchPercentage,
		MatchedSkillsCount:   rec.MatchedSkillsCount,
		TotalSkillsCount:     rec.TotalSkillsCount,
		AppliedAt:            rec.AppliedAt,
	}
}

type StatusUpdateRequest struct {
	Status models.HiringStatus `json:"status"`
	Reason string              `json:"reason"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return models.NewValidationErrorf("status", "unknown status (%v)", r.Status)
	}
	return nil
}

type BulkStatusUpdateRequest struct {
	IDs []string `json:"ids"`
	StatusUpdateRequest
}

func (r BulkStatusUpdateRequest) Validate() error {
	if len(r.IDs) == 0 {
		return models.NewValidationError("ids", "candidate list is empty")
	}
	return r.StatusUpdateRequest.Validate()
}

type ScoreRequest struct {
	HRInterviewScore     *float64 `json:"hr_interview_score"`
	PortfolioReviewScore *float64 `json:"portfolio_review_score"`
	DesignTestScore      *float64 `json:"design_test_score"`
}

func (r ScoreRequest) Validate() error {
	for field, score := range map[string]*float64{
		"hr_interview_score":     r.HRInterviewScore,
		"portfolio_review_score": r.PortfolioReviewScore,
		"design_test_score":      r.DesignTestScore,
	} {
		if score != nil && (*score < 0 || *score > 5) {
			return models.NewValidationError(field, "score must be between 0 and 5")
		}
	}
	return nil
}

type StatusUpdateView struct {
	ID             string               `json:"id"`
	PreviousStatus *models.HiringStatus `json:"previous_status"`
	NewStatus      models.HiringStatus  `json:"new_status"`
	Reason         string               `json:"reason"`
	ActorName      string               `json:"actor_name"`
	CreatedAt      time.Time            `json:"created_at"`
}

func ConvertStatusUpdate(rec dbmodels.CandidateStatusUpdate) StatusUpdateView {
	return StatusUpdateView{
		ID:             rec.ID,
		PreviousStatus: rec.PreviousStatus,
		NewStatus:      rec.NewStatus,
		Reason:         rec.Reason,
		ActorName:      rec.ActorName,
		CreatedAt:      rec.CreatedAt,
	}
}

// CandidateSummary is the aggregated profile for the detail screen.
type CandidateSummary struct {
	Candidate      CandidateView       `json:"candidate"`
	StatusUpdates  []StatusUpdateView  `json:"status_updates"`
	Attachments    []AttachmentView    `json:"attachments"`
	Applications   []ApplicationView   `json:"applications"`
	InterviewCount int64               `json:"interview_count"`
}
