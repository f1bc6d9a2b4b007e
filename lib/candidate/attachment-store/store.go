package candidateattachmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateAttachment) (id string, err error)
	GetByID(id string) (*dbmodels.CandidateAttachment, error)
	List(candidateID string) (list []dbmodels.CandidateAttachment, err error)
	Delete(id string) error
	// ClearPrimaryCV drops the primary flag on every attachment of the candidate.
	ClearPrimaryCV(candidateID string) error
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateAttachment) (id string, err error) {
	err = i.db.
		Omit("UploadedBy").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "attachment save error")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.CandidateAttachment, error) {
	rec := dbmodels.CandidateAttachment{}
	err := i.db.
		Model(dbmodels.CandidateAttachment{}).
		Preload("UploadedBy").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(candidateID string) (list []dbmodels.CandidateAttachment, err error) {
	list = []dbmodels.CandidateAttachment{}
	err = i.db.
		Model(dbmodels.CandidateAttachment{}).
		Preload("UploadedBy").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.CandidateAttachment{}).
		Error
}

func (i impl) ClearPrimaryCV(candidateID string) error {
	return i.db.
		Model(&dbmodels.CandidateAttachment{}).
		Where("candidate_id = ? AND is_primary_cv", candidateID).
		Update("is_primary_cv", false).
		Error
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.CandidateAttachment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "attachment update error")
	}
	return nil
}
