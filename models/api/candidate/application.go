package candidateapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type ApplicationData struct {
	MPRID            string `json:"mpr_id"`
	ApplicationNotes string `json:"application_notes"`
}

func (d ApplicationData) Validate() error {
	if d.MPRID == "" {
		return models.NewValidationError("mpr_id", "requisition id is required")
	}
	return nil
}

type ChangeStageRequest struct {
	Stage          models.ApplicationStage `json:"stage"`
	RecruiterNotes string                  `json:"recruiter_notes"`
}

func (r ChangeStageRequest) Validate() error {
	if !r.Stage.IsValid() {
		return models.NewValidationErrorf("stage", "unknown stage (%v)", r.Stage)
	}
	return nil
}

type SetApplicationCVRequest struct {
	AttachmentID string `json:"attachment_id"`
}

func (r SetApplicationCVRequest) Validate() error {
	if r.AttachmentID == "" {
		return models.NewValidationError("attachment_id", "attachment id is required")
	}
	return nil
}

type ApplicationView struct {
	ID               string                  `json:"id"`
	MPRID            string                  `json:"mpr_id"`
	MPRNumber        string                  `json:"mpr_number"`
	JobTitle         string                  `json:"job_title"`
	ApplicationStage models.ApplicationStage `json:"application_stage"`
	PrimaryCVID      *string                 `json:"primary_cv_id"`

	SkillMatchPercentage *int `json:"skill_match_percentage"`
	MatchedSkillsCount   *int `json:"matched_skills_count"`
	TotalSkillsCount     *int `json:"total_skills_count"`

	ApplicationNotes string    `json:"application_notes"`
	RecruiterNotes   string    `json:"recruiter_notes"`
	CreatedAt        time.Time `json:"created_at"`
}

func ConvertApplication(rec dbmodels.CandidateMPR) ApplicationView {
	result := ApplicationView{
		ID:                   rec.ID,
		MPRID:                rec.MPRID,
		ApplicationStage:     rec.ApplicationStage,
		PrimaryCVID:          rec.PrimaryCVID,
		SkillMatchPercentage: rec.SkillMatchPercentage,
		MatchedSkillsCount:   rec.MatchedSkillsCount,
		TotalSkillsCount:     rec.TotalSkillsCount,
		ApplicationNotes:     rec.ApplicationNotes,
		RecruiterNotes:       rec.RecruiterNotes,
		CreatedAt:            rec.CreatedAt,
	}
	if rec.MPR != nil {
		result.MPRNumber = rec.MPR.MPRNumber
		if rec.MPR.JobTitle != nil {
			result.JobTitle = rec.MPR.JobTitle.Title
		}
	}
	return result
}
