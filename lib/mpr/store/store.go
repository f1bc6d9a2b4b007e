package mprstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruitment-backend/models"
	mprapimodels "recruitment-backend/models/api/mpr"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MPR) (id string, err error)
	GetByID(id string) (*dbmodels.MPR, error)
	LastNumber(prefix string) (string, error)
	ListCount(filter mprapimodels.MPRFilter) (int64, error)
	List(filter mprapimodels.MPRFilter) ([]dbmodels.MPR, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	StatusCounts() (map[models.MPRStatus]int64, error)

	GetJobByID(id string) (*dbmodels.Job, error)
	GetLocationByID(id string) (*dbmodels.Location, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MPR) (id string, err error) {
	err = i.db.
		Omit("JobTitle", "Department", "Division", "Unit", "Location",
			"Recruiter", "BudgetHolder", "CreatedBy", "UpdatedBy",
			"ApprovedBy", "RejectedBy").
		Create(&rec).
		Error
	return rec.ID, err
}

func (i impl) GetByID(id string) (*dbmodels.MPR, error) {
	rec := dbmodels.MPR{}
	err := i.db.
		Preload("JobTitle").
		Preload("Department").
		Preload("Location").
		Preload("Recruiter").
		Preload("CreatedBy").
		Preload("ApprovedBy").
		Preload("RejectedBy").
		First(&rec, "id = ?", id).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

// LastNumber returns the highest issued number with the given prefix,
// empty when none was issued yet.
func (i impl) LastNumber(prefix string) (string, error) {
	rec := dbmodels.MPR{}
	err := i.db.
		Where("mpr_number like ?", prefix+"%").
		Order("mpr_number desc").
		First(&rec).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return rec.MPRNumber, err
}

func (i impl) ListCount(filter mprapimodels.MPRFilter) (int64, error) {
	var rowCount int64
	err := i.applyFilter(i.db.Model(dbmodels.MPR{}), filter).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) List(filter mprapimodels.MPRFilter) ([]dbmodels.MPR, error) {
	result := make([]dbmodels.MPR, 0)
	err := i.applyFilter(i.db.Model(dbmodels.MPR{}), filter).
		Preload("JobTitle").
		Preload("Department").
		Preload("Location").
		Preload("Recruiter").
		Order("mprs.created_at desc").
		Scopes(setPage(filter)).
		Find(&result).
		Error
	return result, err
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(dbmodels.MPR{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Delete(dbmodels.MPR{}, "id = ?", id).Error
}

func (i impl) StatusCounts() (map[models.MPRStatus]int64, error) {
	type row struct {
		Status models.MPRStatus
		Total  int64
	}
	rows := make([]row, 0)
	err := i.db.
		Model(dbmodels.MPR{}).
		Select("status, count(*) as total").
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.MPRStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Total
	}
	return result, nil
}

func (i impl) GetJobByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) GetLocationByID(id string) (*dbmodels.Location, error) {
	rec := dbmodels.Location{}
	err := i.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) applyFilter(q *gorm.DB, filter mprapimodels.MPRFilter) *gorm.DB {
	if filter.Status != nil {
		q = q.Where("mprs.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("mprs.priority = ?", *filter.Priority)
	}
	if filter.DepartmentID != "" {
		q = q.Where("mprs.department_id = ?", filter.DepartmentID)
	}
	if filter.RecruiterID != "" {
		q = q.Where("mprs.recruiter_id = ?", filter.RecruiterID)
	}
	if filter.Search != "" {
		q = q.
			Joins("left join jobs on jobs.id = mprs.job_title_id").
			Where("mprs.mpr_number ilike ? or jobs.title ilike ?",
				"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return q
}

func setPage(filter mprapimodels.MPRFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := filter.GetPage()
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
