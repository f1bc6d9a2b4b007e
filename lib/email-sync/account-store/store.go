package emailaccountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmailAccount) (id string, err error)
	GetByID(id string) (*dbmodels.EmailAccount, error)
	GetByName(name string) (*dbmodels.EmailAccount, error)
	List() ([]dbmodels.EmailAccount, error)
	ListSyncable() ([]dbmodels.EmailAccount, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ClearDefault() error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmailAccount) (id string, err error) {
	err = i.db.Create(&rec).Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.EmailAccount, error) {
	rec := dbmodels.EmailAccount{}
	err := i.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetByName(name string) (*dbmodels.EmailAccount, error) {
	rec := dbmodels.EmailAccount{}
	err := i.db.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) List() ([]dbmodels.EmailAccount, error) {
	result := make([]dbmodels.EmailAccount, 0)
	err := i.db.Order("name").Find(&result).Error
	return result, err
}

// ListSyncable feeds the background sync worker.
func (i impl) ListSyncable() ([]dbmodels.EmailAccount, error) {
	result := make([]dbmodels.EmailAccount, 0)
	err := i.db.
		Where("is_active = true and sync_enabled = true").
		Order("name").
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.EmailAccount{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.EmailAccount{}, "id = ?", id).Error
}

func (i impl) ClearDefault() error {
	return i.db.
		Model(dbmodels.EmailAccount{}).
		Where("is_default = true").
		Update("is_default", false).
		Error
}
