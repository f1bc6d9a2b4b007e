package emaillinkstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateEmailLink) (id string, err error)
	Find(candidateID, emailMessageID string) (*dbmodels.CandidateEmailLink, error)
	ListByCandidate(candidateID string) ([]dbmodels.CandidateEmailLink, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateEmailLink) (id string, err error) {
	err = i.db.Omit("Candidate", "EmailMessage", "LinkedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) Find(candidateID, emailMessageID string) (*dbmodels.CandidateEmailLink, error) {
	rec := dbmodels.CandidateEmailLink{}
	err := i.db.
		First(&rec, "candidate_id = ? and email_message_id = ?", candidateID, emailMessageID).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.CandidateEmailLink, error) {
	result := make([]dbmodels.CandidateEmailLink, 0)
	err := i.db.
		Preload("EmailMessage").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&result).
		Error
	return result, err
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.CandidateEmailLink{}, "id = ?", id).Error
}
