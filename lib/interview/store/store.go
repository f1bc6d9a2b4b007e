package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	interviewapimodels "recruitment-backend/models/api/interview"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (*dbmodels.Interview, error)
	ListCount(filter interviewapimodels.InterviewFilter) (int64, error)
	List(filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit("Candidate", "MPR", "Round", "CreatedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Preload("Candidate").
		Preload("MPR").
		Preload("Round").
		Preload("Participants").
		Preload("Participants.User").
		First(&rec, "id = ?", id).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) ListCount(filter interviewapimodels.InterviewFilter) (int64, error) {
	var rowCount int64
	err := i.applyFilter(i.db.Model(dbmodels.Interview{}), filter).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) List(filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error) {
	result := make([]dbmodels.Interview, 0)
	err := i.applyFilter(i.db, filter).
		Preload("Candidate").
		Preload("MPR").
		Preload("Round").
		Order("scheduled_date").
		Scopes(setPage(filter)).
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.Interview{}, "id = ?", id).Error
}

func (i impl) applyFilter(q *gorm.DB, filter interviewapimodels.InterviewFilter) *gorm.DB {
	if filter.CandidateID != "" {
		q = q.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.MPRID != "" {
		q = q.Where("mpr_id = ?", filter.MPRID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		q = q.Where("scheduled_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("scheduled_date <= ?", *filter.DateTo)
	}
	return q
}

func setPage(filter interviewapimodels.InterviewFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := filter.GetPage()
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
