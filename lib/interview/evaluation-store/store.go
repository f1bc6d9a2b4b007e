package interviewevaluationstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.InterviewCriteriaEvaluation) error
	List(interviewID string) ([]dbmodels.InterviewCriteriaEvaluation, error)
	ListByParticipant(interviewID, participantID string) ([]dbmodels.InterviewCriteriaEvaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

// Upsert keeps one row per interview, participant and criteria name.
// A repeated submission overwrites the previous score.
func (i impl) Upsert(rec dbmodels.InterviewCriteriaEvaluation) error {
	return i.db.
		Omit("Interview", "Participant").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "interview_id"},
				{Name: "participant_id"},
				{Name: "criteria_name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"score", "weight", "comments", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) List(interviewID string) ([]dbmodels.InterviewCriteriaEvaluation, error) {
	result := make([]dbmodels.InterviewCriteriaEvaluation, 0)
	err := i.db.
		Where("interview_id = ?", interviewID).
		Order("criteria_name").
		Find(&result).
		Error
	return result, err
}

func (i impl) ListByParticipant(interviewID, participantID string) ([]dbmodels.InterviewCriteriaEvaluation, error) {
	result := make([]dbmodels.InterviewCriteriaEvaluation, 0)
	err := i.db.
		Where("interview_id = ? and participant_id = ?", interviewID, participantID).
		Order("criteria_name").
		Find(&result).
		Error
	return result, err
}
