package emailsynclogstore

import (
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmailSyncLog) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	List(accountID string, limit int) ([]dbmodels.EmailSyncLog, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmailSyncLog) (id string, err error) {
	err = i.db.Omit("Account").Create(&rec).Error
	return rec.ID, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.EmailSyncLog{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List(accountID string, limit int) ([]dbmodels.EmailSyncLog, error) {
	result := make([]dbmodels.EmailSyncLog, 0)
	err := i.db.
		Where("account_id = ?", accountID).
		Order("started_at desc").
		Limit(limit).
		Find(&result).
		Error
	return result, err
}
