package interviewapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type ParticipantData struct {
	UserID string                 `json:"user_id"`
	Role   models.ParticipantRole `json:"role"`
}

func (d ParticipantData) Validate() error {
	if d.UserID == "" {
		return models.NewValidationError("user_id", "user id is required")
	}
	if !d.Role.IsValid() {
		return models.NewValidationErrorf("role", "unknown role (%v)", d.Role)
	}
	return nil
}

type AttendedRequest struct {
	Attended bool       `json:"attended"`
	JoinedAt *time.Time `json:"joined_at"`
	LeftAt   *time.Time `json:"left_at"`
}

type ParticipantView struct {
	ID                       string                 `json:"id"`
	UserID                   string                 `json:"user_id"`
	UserName                 string                 `json:"user_name"`
	Role                     models.ParticipantRole `json:"role"`
	IndividualScore          *float64               `json:"individual_score"`
	IndividualFeedback       string                 `json:"individual_feedback"`
	IndividualRecommendation models.Recommendation  `json:"individual_recommendation"`
	Attended                 bool                   `json:"attended"`
}

func ConvertParticipant(rec dbmodels.InterviewParticipant) ParticipantView {
	result := ParticipantView{
		ID:                       rec.ID,
		UserID:                   rec.UserID,
		Role:                     rec.Role,
		IndividualScore:          rec.IndividualScore,
		IndividualFeedback:       rec.IndividualFeedback,
		IndividualRecommendation: rec.IndividualRecommendation,
		Attended:                 rec.Attended,
	}
	if rec.User != nil {
		result.UserName = rec.User.GetFullName()
	}
	return result
}

type CriteriaScore struct {
	CriteriaName string  `json:"criteria_name"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Comments     string  `json:"comments"`
}

func (c CriteriaScore) Validate() error {
	if c.CriteriaName == "" {
		return models.NewValidationError("criteria_name", "criteria name is required")
	}
	if c.Score < 0 || c.Score > 5 {
		return models.NewValidationError("score", "score must be between 0 and 5")
	}
	if c.Weight < 0 || c.Weight > 1 {
		return models.NewValidationError("weight", "weight must be between 0 and 1")
	}
	return nil
}

// FeedbackRequest is one participant's submission for an interview.
type FeedbackRequest struct {
	Score          *float64              `json:"score"`
	Feedback       string                `json:"feedback"`
	Recommendation models.Recommendation `json:"recommendation"`
	CriteriaScores []CriteriaScore       `json:"criteria_scores"`
}

func (r FeedbackRequest) Validate() error {
	if r.Score != nil && (*r.Score < 0 || *r.Score > 5) {
		return models.NewValidationError("score", "score must be between 0 and 5")
	}
	if r.Recommendation != "" && !r.Recommendation.IsValid() {
		return models.NewValidationErrorf("recommendation", "unknown recommendation (%v)", r.Recommendation)
	}
	for _, criteria := range r.CriteriaScores {
		if err := criteria.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CriteriaSummaryItem is the weighted consolidated score of one criteria.
type CriteriaSummaryItem struct {
	CriteriaName  string  `json:"criteria_name"`
	WeightedScore float64 `json:"weighted_score"`
	TotalWeight   float64 `json:"total_weight"`
	Evaluations   int     `json:"evaluations"`
}

type FeedbackSummary struct {
	InterviewID    string                `json:"interview_id"`
	OverallScore   *float64              `json:"overall_score"`
	Criteria       []CriteriaSummaryItem `json:"criteria"`
	Participants   []ParticipantView     `json:"participants"`
	Recommendation models.Recommendation `json:"recommendation"`
}
