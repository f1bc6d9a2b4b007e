package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// InterviewParticipant is one interviewer on an interview. A user joins an
// interview at most once.
type InterviewParticipant struct {
	BaseModel
	InterviewID string     `gorm:"type:varchar(36);uniqueIndex:idx_interview_user"`
	Interview   *Interview `gorm:"foreignKey:InterviewID"`
	UserID      string     `gorm:"type:varchar(36);uniqueIndex:idx_interview_user"`
	User        *AppUser   `gorm:"foreignKey:UserID"`

	Role models.ParticipantRole `gorm:"type:varchar(30);default:interviewer"`

	IndividualScore          *float64
	IndividualFeedback       string
	IndividualRecommendation models.Recommendation `gorm:"type:varchar(20)"`

	Attended bool
	JoinedAt *time.Time
	LeftAt   *time.Time
}

// InterviewCriteriaEvaluation is a score for one criteria name by one
// participant. ParticipantID nil marks the consolidated row.
type InterviewCriteriaEvaluation struct {
	BaseModel
	InterviewID   string                `gorm:"type:varchar(36);uniqueIndex:idx_interview_criteria"`
	Interview     *Interview            `gorm:"foreignKey:InterviewID"`
	ParticipantID *string               `gorm:"type:varchar(36);uniqueIndex:idx_interview_criteria"`
	Participant   *InterviewParticipant `gorm:"foreignKey:ParticipantID"`

	CriteriaName string  `gorm:"type:varchar(100);uniqueIndex:idx_interview_criteria"`
	Score        float64 // 0..5
	Weight       float64 `gorm:"default:1"` // 0..1
	Comments     string
}
