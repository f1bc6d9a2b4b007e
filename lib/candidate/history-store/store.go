package candidatehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateStatusUpdate) (id string, err error)
	List(candidateID string) (list []dbmodels.CandidateStatusUpdate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateStatusUpdate) (id string, err error) {
	err = i.db.
		Omit("UpdatedBy").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "status update save error")
	}
	return rec.ID, nil
}

func (i impl) List(candidateID string) (list []dbmodels.CandidateStatusUpdate, err error) {
	list = []dbmodels.CandidateStatusUpdate{}
	err = i.db.
		Model(dbmodels.CandidateStatusUpdate{}).
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
