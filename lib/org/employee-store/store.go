package orgemployeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	orgapimodels "recruitment-backend/models/api/org"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (*dbmodels.Employee, error)
	GetByEmployeeID(employeeID string) (*dbmodels.Employee, error)
	ListCount(filter orgapimodels.EmployeeFilter) (int64, error)
	List(filter orgapimodels.EmployeeFilter) ([]dbmodels.Employee, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountActive(departmentID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.Omit("Department", "Position").Create(&rec).Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Preload("Department").
		Preload("Position").
		First(&rec, "id = ?", id).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetByEmployeeID(employeeID string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.First(&rec, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) ListCount(filter orgapimodels.EmployeeFilter) (int64, error) {
	var rowCount int64
	err := i.applyFilter(i.db.Model(dbmodels.Employee{}), filter).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) List(filter orgapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	result := make([]dbmodels.Employee, 0)
	err := i.applyFilter(i.db, filter).
		Preload("Department").
		Preload("Position").
		Order("last_name, first_name").
		Scopes(setPage(filter)).
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.Employee{}, "id = ?", id).Error
}

// CountActive feeds the unit headcount recomputation.
func (i impl) CountActive(departmentID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Employee{}).
		Where("department_id = ? and is_active = true", departmentID).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) applyFilter(q *gorm.DB, filter orgapimodels.EmployeeFilter) *gorm.DB {
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = true")
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		q = q.Where("first_name ilike ? or last_name ilike ? or email ilike ? or employee_id ilike ?",
			search, search, search, search)
	}
	return q
}

func setPage(filter orgapimodels.EmployeeFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := filter.GetPage()
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
