package candidatestore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	candidateapimodels "recruitment-backend/models/api/candidate"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (*dbmodels.Candidate, error)
	GetByEmail(email string) (*dbmodels.Candidate, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error)
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	ListByIDs(ids []string) (list []dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Omit("Attachments", "StatusUpdates", "Applications").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(dbmodels.Candidate{}).
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

func (i impl) GetByEmail(email string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(dbmodels.Candidate{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "candidate update error")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
}

func (i impl) ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Candidate{})
	i.applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("candidate count error")
		return 0, errors.New("candidate count error")
	}
	return rowCount, nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	i.applyFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order(orderClause(filter))
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) applyFilter(tx *gorm.DB, filter candidateapimodels.CandidateFilter) {
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}
	if filter.HiringStatus != nil {
		tx.Where("hiring_status = ?", *filter.HiringStatus)
	}
	if filter.Location != "" {
		tx.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinScore != nil {
		tx.Where("overall_score >= ?", *filter.MinScore)
	}
}

func orderClause(filter candidateapimodels.CandidateFilter) string {
	column := "applied_at"
	switch filter.SortBy {
	case "overall_score":
		column = "overall_score"
	case "name":
		column = "name"
	}
	if filter.SortDesc {
		return column + " desc"
	}
	return column
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
