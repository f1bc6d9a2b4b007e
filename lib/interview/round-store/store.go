package interviewroundstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewRound) (id string, err error)
	GetByID(id string) (*dbmodels.InterviewRound, error)
	GetByName(name string) (*dbmodels.InterviewRound, error)
	List(activeOnly bool) ([]dbmodels.InterviewRound, error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewRound) (id string, err error) {
	err = i.db.Create(&rec).Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.InterviewRound, error) {
	rec := dbmodels.InterviewRound{}
	err := i.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetByName(name string) (*dbmodels.InterviewRound, error) {
	rec := dbmodels.InterviewRound{}
	err := i.db.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) List(activeOnly bool) ([]dbmodels.InterviewRound, error) {
	result := make([]dbmodels.InterviewRound, 0)
	q := i.db.Order("sequence_order, name")
	if activeOnly {
		q = q.Where("is_active = true")
	}
	err := q.Find(&result).Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.InterviewRound{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
