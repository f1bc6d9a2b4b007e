package interviewapimodels

import (
	"time"

	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type InterviewData struct {
	CandidateID     string    `json:"candidate_id"`
	MPRID           *string   `json:"mpr_id"`
	RoundID         string    `json:"round_id"`
	Title           string    `json:"title"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meeting_link"`
}

func (d InterviewData) Validate() error {
	if d.CandidateID == "" {
		return models.NewValidationError("candidate_id", "candidate id is required")
	}
	if d.RoundID == "" {
		return models.NewValidationError("round_id", "round id is required")
	}
	if d.ScheduledDate.IsZero() {
		return models.NewValidationError("scheduled_date", "scheduled date is required")
	}
	if d.DurationMinutes < 0 {
		return models.NewValidationError("duration_minutes", "must not be negative")
	}
	return nil
}

type InterviewFilter struct {
	apimodels.Pagination
	CandidateID string                  `json:"candidate_id"`
	MPRID       string                  `json:"mpr_id"`
	Status      *models.InterviewStatus `json:"status"`
	DateFrom    *time.Time              `json:"date_from"`
	DateTo      *time.Time              `json:"date_to"`
}

func (f InterviewFilter) Validate() error {
	if f.Status != nil && !f.Status.IsValid() {
		return models.NewValidationErrorf("status", "unknown status (%v)", *f.Status)
	}
	return nil
}

type StatusUpdateRequest struct {
	Status          models.InterviewStatus `json:"status"`
	Reason          string                 `json:"reason"`
	ActualStartTime *time.Time             `json:"actual_start_time"`
	ActualEndTime   *time.Time             `json:"actual_end_time"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return models.NewValidationErrorf("status", "unknown status (%v)", r.Status)
	}
	return nil
}

type RescheduleRequest struct {
	NewDate       time.Time                  `json:"new_date"`
	NewLocation   string                     `json:"new_location"`
	Reason        models.RescheduleReason    `json:"reason"`
	ReasonDetails string                     `json:"reason_details"`
	InitiatedBy   models.RescheduleInitiator `json:"initiated_by"`
}

func (r RescheduleRequest) Validate() error {
	if r.NewDate.IsZero() {
		return models.NewValidationError("new_date", "new date is required")
	}
	if !r.Reason.IsValid() {
		return models.NewValidationErrorf("reason", "unknown reason (%v)", r.Reason)
	}
	if !r.InitiatedBy.IsValid() {
		return models.NewValidationErrorf("initiated_by", "unknown initiator (%v)", r.InitiatedBy)
	}
	return nil
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type InterviewView struct {
	InterviewData
	ID            string                 `json:"id"`
	CandidateName string                 `json:"candidate_name"`
	MPRNumber     string                 `json:"mpr_number"`
	RoundName     string                 `json:"round_name"`
	Status        models.InterviewStatus `json:"status"`

	ActualStartTime *time.Time `json:"actual_start_time"`
	ActualEndTime   *time.Time `json:"actual_end_time"`

	OverallScore     *float64              `json:"overall_score"`
	Strengths        string                `json:"strengths"`
	Weaknesses       string                `json:"weaknesses"`
	DetailedFeedback string                `json:"detailed_feedback"`
	Recommendation   models.Recommendation `json:"recommendation"`

	Participants []ParticipantView `json:"participants,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	result := InterviewView{
		InterviewData: InterviewData{
			CandidateID:     rec.CandidateID,
			MPRID:           rec.MPRID,
			RoundID:         rec.RoundID,
			Title:           rec.Title,
			ScheduledDate:   rec.ScheduledDate,
			DurationMinutes: rec.DurationMinutes,
			Location:        rec.Location,
			MeetingLink:     rec.MeetingLink,
		},
		ID:               rec.ID,
		Status:           rec.Status,
		ActualStartTime:  rec.ActualStartTime,
		ActualEndTime:    rec.ActualEndTime,
		OverallScore:     rec.OverallScore,
		Strengths:        rec.Strengths,
		Weaknesses:       rec.Weaknesses,
		DetailedFeedback: rec.DetailedFeedback,
		Recommendation:   rec.Recommendation,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.Candidate != nil {
		result.CandidateName = rec.Candidate.Name
	}
	if rec.MPR != nil {
		result.MPRNumber = rec.MPR.MPRNumber
	}
	if rec.Round != nil {
		result.RoundName = rec.Round.Name
	}
	for _, participant := range rec.Participants {
		result.Participants = append(result.Participants, ConvertParticipant(participant))
	}
	return result
}

type RoundData struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	TypicalDurationMinutes int      `json:"typical_duration_minutes"`
	SequenceOrder          int      `json:"sequence_order"`
	MaxScore               float64  `json:"max_score"`
	EvaluationCriteria     []string `json:"evaluation_criteria"`
	IsActive               bool     `json:"is_active"`
}

func (d RoundData) Validate() error {
	if d.Name == "" {
		return models.NewValidationError("name", "round name is required")
	}
	if d.MaxScore <= 0 {
		return models.NewValidationError("max_score", "must be positive")
	}
	return nil
}

type RoundView struct {
	RoundData
	ID string `json:"id"`
}

func ConvertRound(rec dbmodels.InterviewRound) RoundView {
	return RoundView{
		RoundData: RoundData{
			Name:                   rec.Name,
			Description:            rec.Description,
			TypicalDurationMinutes: rec.TypicalDurationMinutes,
			SequenceOrder:          rec.SequenceOrder,
			MaxScore:               rec.MaxScore,
			EvaluationCriteria:     rec.EvaluationCriteria,
			IsActive:               rec.IsActive,
		},
		ID: rec.ID,
	}
}

type RescheduleView struct {
	ID               string                     `json:"id"`
	PreviousDate     time.Time                  `json:"previous_date"`
	NewDate          time.Time                  `json:"new_date"`
	PreviousLocation string                     `json:"previous_location"`
	NewLocation      string                     `json:"new_location"`
	Reason           models.RescheduleReason    `json:"reason"`
	ReasonDetails    string                     `json:"reason_details"`
	InitiatedBy      models.RescheduleInitiator `json:"initiated_by"`
	InitiatedByUser  string                     `json:"initiated_by_user"`
	CreatedAt        time.Time                  `json:"created_at"`
}

func ConvertReschedule(rec dbmodels.InterviewReschedule) RescheduleView {
	result := RescheduleView{
		ID:               rec.ID,
		PreviousDate:     rec.PreviousDate,
		NewDate:          rec.NewDate,
		PreviousLocation: rec.PreviousLocation,
		NewLocation:      rec.NewLocation,
		Reason:           rec.Reason,
		ReasonDetails:    rec.ReasonDetails,
		InitiatedBy:      rec.InitiatedBy,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.InitiatedByUser != nil {
		result.InitiatedByUser = rec.InitiatedByUser.GetFullName()
	}
	return result
}
