package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AppUser) (id string, err error)
	GetByID(id string) (*dbmodels.AppUser, error)
	GetByEmail(email string) (*dbmodels.AppUser, error)
	List() (list []dbmodels.AppUser, err error)
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

func (i impl) Create(rec dbmodels.AppUser) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "user save error")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.AppUser, error) {
	rec := dbmodels.AppUser{}
	err := i.db.
		Model(dbmodels.AppUser{}).
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

func (i impl) GetByEmail(email string) (*dbmodels.AppUser, error) {
	rec := dbmodels.AppUser{}
	err := i.db.
		Model(dbmodels.AppUser{}).
		Where("email = ?", email).
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

func (i impl) List() (list []dbmodels.AppUser, err error) {
	list = []dbmodels.AppUser{}
	err = i.db.
		Model(dbmodels.AppUser{}).
		Where("is_active").
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.AppUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "user update error")
	}
	return nil
}
