package candidateapplicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateMPR) (id string, err error)
	GetByID(id string) (*dbmodels.CandidateMPR, error)
	GetByPair(candidateID, mprID string) (*dbmodels.CandidateMPR, error)
	List(candidateID string) (list []dbmodels.CandidateMPR, err error)
	ListByMPR(mprID string) (list []dbmodels.CandidateMPR, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateMPR) (id string, err error) {
	err = i.db.
		Omit("Candidate", "MPR", "PrimaryCV", "UpdatedBy").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "application save error")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.CandidateMPR, error) {
	rec := dbmodels.CandidateMPR{}
	err := i.db.
		Model(dbmodels.CandidateMPR{}).
		Preload("MPR").
		Preload("MPR.JobTitle").
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

func (i impl) GetByPair(candidateID, mprID string) (*dbmodels.CandidateMPR, error) {
	rec := dbmodels.CandidateMPR{}
	err := i.db.
		Model(dbmodels.CandidateMPR{}).
		Where("candidate_id = ? AND mpr_id = ?", candidateID, mprID).
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

func (i impl) List(candidateID string) (list []dbmodels.CandidateMPR, err error) {
	list = []dbmodels.CandidateMPR{}
	err = i.db.
		Model(dbmodels.CandidateMPR{}).
		Preload("MPR").
		Preload("MPR.JobTitle").
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

func (i impl) ListByMPR(mprID string) (list []dbmodels.CandidateMPR, err error) {
	list = []dbmodels.CandidateMPR{}
	err = i.db.
		Model(dbmodels.CandidateMPR{}).
		Preload("Candidate").
		Where("mpr_id = ?", mprID).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.CandidateMPR{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "application update error")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.CandidateMPR{}).
		Error
}
