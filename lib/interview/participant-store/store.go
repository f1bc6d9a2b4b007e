package interviewparticipantstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewParticipant) (id string, err error)
	GetByID(id string) (*dbmodels.InterviewParticipant, error)
	GetByUser(interviewID, userID string) (*dbmodels.InterviewParticipant, error)
	List(interviewID string) ([]dbmodels.InterviewParticipant, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewParticipant) (id string, err error) {
	err = i.db.Omit("Interview", "User").Create(&rec).Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.InterviewParticipant, error) {
	rec := dbmodels.InterviewParticipant{}
	err := i.db.Preload("User").First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetByUser(interviewID, userID string) (*dbmodels.InterviewParticipant, error) {
	rec := dbmodels.InterviewParticipant{}
	err := i.db.
		First(&rec, "interview_id = ? and user_id = ?", interviewID, userID).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) List(interviewID string) ([]dbmodels.InterviewParticipant, error) {
	result := make([]dbmodels.InterviewParticipant, 0)
	err := i.db.
		Preload("User").
		Where("interview_id = ?", interviewID).
		Order("created_at").
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.InterviewParticipant{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.InterviewParticipant{}, "id = ?", id).Error
}
