package orgunitstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	orgapimodels "recruitment-backend/models/api/org"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OrganizationalUnit) (id string, err error)
	GetByID(id string) (*dbmodels.OrganizationalUnit, error)
	GetByCode(code string) (*dbmodels.OrganizationalUnit, error)
	ListCount(filter orgapimodels.UnitFilter) (int64, error)
	List(filter orgapimodels.UnitFilter) ([]dbmodels.OrganizationalUnit, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	HasChildren(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrganizationalUnit) (id string, err error) {
	err = i.db.
		Omit("Parent", "PrimaryRecruiter", "PrimaryManager",
			"PrimaryBudgetHolder", "PrimaryBudgetSponsor").
		Create(&rec).
		Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.OrganizationalUnit, error) {
	rec := dbmodels.OrganizationalUnit{}
	err := i.db.
		Preload("Parent").
		Preload("PrimaryRecruiter").
		Preload("PrimaryManager").
		Preload("PrimaryBudgetHolder").
		Preload("PrimaryBudgetSponsor").
		First(&rec, "id = ?", id).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetByCode(code string) (*dbmodels.OrganizationalUnit, error) {
	rec := dbmodels.OrganizationalUnit{}
	err := i.db.First(&rec, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) ListCount(filter orgapimodels.UnitFilter) (int64, error) {
	var rowCount int64
	err := i.applyFilter(i.db.Model(dbmodels.OrganizationalUnit{}), filter).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) List(filter orgapimodels.UnitFilter) ([]dbmodels.OrganizationalUnit, error) {
	result := make([]dbmodels.OrganizationalUnit, 0)
	err := i.applyFilter(i.db, filter).
		Preload("PrimaryRecruiter").
		Preload("PrimaryManager").
		Preload("PrimaryBudgetHolder").
		Preload("PrimaryBudgetSponsor").
		Order("name").
		Scopes(setPage(filter)).
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.OrganizationalUnit{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.OrganizationalUnit{}, "id = ?", id).Error
}

func (i impl) HasChildren(id string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.OrganizationalUnit{}).
		Where("parent_id = ?", id).
		Count(&rowCount).
		Error
	return rowCount > 0, err
}

func (i impl) applyFilter(q *gorm.DB, filter orgapimodels.UnitFilter) *gorm.DB {
	if filter.UnitType != nil {
		q = q.Where("unit_type = ?", *filter.UnitType)
	}
	if filter.ParentID != "" {
		q = q.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Search != "" {
		q = q.Where("name ilike ? or code ilike ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return q
}

func setPage(filter orgapimodels.UnitFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := filter.GetPage()
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
