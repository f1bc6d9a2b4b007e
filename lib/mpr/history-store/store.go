package mprhistorystore

import (
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

// Append-only, history records are never updated or deleted.
type Provider interface {
	Create(rec dbmodels.MPRStatusHistory) (id string, err error)
	List(mprID string) ([]dbmodels.MPRStatusHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MPRStatusHistory) (id string, err error) {
	err = i.db.Omit("ChangedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) List(mprID string) ([]dbmodels.MPRStatusHistory, error) {
	result := make([]dbmodels.MPRStatusHistory, 0)
	err := i.db.
		Where("mpr_id = ?", mprID).
		Order("created_at desc").
		Find(&result).
		Error
	return result, err
}
