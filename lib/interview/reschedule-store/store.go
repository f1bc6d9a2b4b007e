package interviewreschedulestore

import (
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewReschedule) (id string, err error)
	List(interviewID string) ([]dbmodels.InterviewReschedule, error)
	CountByInterview(interviewID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewReschedule) (id string, err error) {
	err = i.db.Omit("Interview", "InitiatedByUser").Create(&rec).Error
	return rec.ID, err
}

func (i impl) List(interviewID string) ([]dbmodels.InterviewReschedule, error) {
	result := make([]dbmodels.InterviewReschedule, 0)
	err := i.db.
		Preload("InitiatedByUser").
		Where("interview_id = ?", interviewID).
		Order("created_at desc").
		Find(&result).
		Error
	return result, err
}

func (i impl) CountByInterview(interviewID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.InterviewReschedule{}).
		Where("interview_id = ?", interviewID).
		Count(&rowCount).
		Error
	return rowCount, err
}
