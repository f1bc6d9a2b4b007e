package mprcommentstore

import (
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MPRComment) (id string, err error)
	List(mprID string, includeInternal bool) ([]dbmodels.MPRComment, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MPRComment) (id string, err error) {
	err = i.db.Omit("User").Create(&rec).Error
	return rec.ID, err
}

func (i impl) List(mprID string, includeInternal bool) ([]dbmodels.MPRComment, error) {
	result := make([]dbmodels.MPRComment, 0)
	q := i.db.
		Preload("User").
		Where("mpr_id = ?", mprID)
	if !includeInternal {
		q = q.Where("is_internal = false")
	}
	err := q.Order("created_at").Find(&result).Error
	return result, err
}
