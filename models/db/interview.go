package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"recruitment-backend/models"
)

// InterviewRound is a reusable stage template (HR screening, technical,
// final, ...). Interviews reference a round for defaults and ordering.
type InterviewRound struct {
	BaseModel
	Name                   string `gorm:"type:varchar(100);uniqueIndex"`
	Description            string
	TypicalDurationMinutes int            `gorm:"default:60"`
	SequenceOrder          int            `gorm:"index"`
	MaxScore               float64        `gorm:"default:5"`
	EvaluationCriteria     pq.StringArray `gorm:"type:text[]"`
	IsActive               bool           `gorm:"default:true"`
}

type Interview struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	MPRID       *string    `gorm:"type:varchar(36);index"`
	MPR         *MPR       `gorm:"foreignKey:MPRID"`
	RoundID     string     `gorm:"type:varchar(36);index"`
	Round       *InterviewRound `gorm:"foreignKey:RoundID"`

	Title           string    `gorm:"type:varchar(255)"`
	ScheduledDate   time.Time `gorm:"index"`
	DurationMinutes int       `gorm:"default:60"`
	Location        string    `gorm:"type:varchar(255)"`
	MeetingLink     string    `gorm:"type:varchar(500)"`

	Status models.InterviewStatus `gorm:"type:varchar(20);index;default:scheduled"`

	// Required before the interview may be marked completed.
	ActualStartTime *time.Time
	ActualEndTime   *time.Time

	// Mean of participant individual scores, recomputed on feedback
	// submission, never written directly.
	OverallScore *float64

	Strengths       string
	Weaknesses      string
	DetailedFeedback string
	Recommendation  models.Recommendation `gorm:"type:varchar(20)"`

	CreatedByID *string  `gorm:"type:varchar(36)"`
	CreatedBy   *AppUser `gorm:"foreignKey:CreatedByID"`

	Participants []InterviewParticipant `gorm:"foreignKey:InterviewID"`
	Evaluations  []InterviewCriteriaEvaluation `gorm:"foreignKey:InterviewID"`
	Reschedules  []InterviewReschedule  `gorm:"foreignKey:InterviewID"`
}
