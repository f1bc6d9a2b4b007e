package orgrolestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

// RoleRow is the type-independent projection of one assignment row, enough
// for existence checks and the primary flag machinery.
type RoleRow struct {
	ID                   string
	UserID               string
	OrganizationalUnitID string
	IsPrimary            bool
	IsActive             bool
}

type Provider interface {
	CreateRecruiter(rec dbmodels.Recruiter) (id string, err error)
	CreateManager(rec dbmodels.Manager) (id string, err error)
	CreateBudgetHolder(rec dbmodels.BudgetHolder) (id string, err error)
	CreateBudgetSponsor(rec dbmodels.BudgetSponsor) (id string, err error)

	ListRecruiters(unitID string) ([]dbmodels.Recruiter, error)
	ListManagers(unitID string) ([]dbmodels.Manager, error)
	ListBudgetHolders(unitID string) ([]dbmodels.BudgetHolder, error)
	ListBudgetSponsors(unitID string) ([]dbmodels.BudgetSponsor, error)

	GetRow(roleType models.RoleType, id string) (*RoleRow, error)
	FindRow(roleType models.RoleType, unitID, userID string) (*RoleRow, error)
	ClearPrimary(roleType models.RoleType, unitID string) error
	Update(roleType models.RoleType, id string, updMap map[string]interface{}) error
	Delete(roleType models.RoleType, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func modelFor(roleType models.RoleType) interface{} {
	switch roleType {
	case models.RoleTypeRecruiter:
		return &dbmodels.Recruiter{}
	case models.RoleTypeManager:
		return &dbmodels.Manager{}
	case models.RoleTypeBudgetHolder:
		return &dbmodels.BudgetHolder{}
	default:
		return &dbmodels.BudgetSponsor{}
	}
}

func (i impl) CreateRecruiter(rec dbmodels.Recruiter) (id string, err error) {
	err = i.db.Omit("User", "OrganizationalUnit", "AssignedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) CreateManager(rec dbmodels.Manager) (id string, err error) {
	err = i.db.Omit("User", "OrganizationalUnit", "AssignedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) CreateBudgetHolder(rec dbmodels.BudgetHolder) (id string, err error) {
	err = i.db.Omit("User", "OrganizationalUnit", "AssignedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) CreateBudgetSponsor(rec dbmodels.BudgetSponsor) (id string, err error) {
	err = i.db.Omit("User", "OrganizationalUnit", "AssignedBy").Create(&rec).Error
	return rec.ID, err
}

func (i impl) ListRecruiters(unitID string) ([]dbmodels.Recruiter, error) {
	result := make([]dbmodels.Recruiter, 0)
	err := i.listQuery(unitID).Find(&result).Error
	return result, err
}

func (i impl) ListManagers(unitID string) ([]dbmodels.Manager, error) {
	result := make([]dbmodels.Manager, 0)
	err := i.listQuery(unitID).Find(&result).Error
	return result, err
}

func (i impl) ListBudgetHolders(unitID string) ([]dbmodels.BudgetHolder, error) {
	result := make([]dbmodels.BudgetHolder, 0)
	err := i.listQuery(unitID).Find(&result).Error
	return result, err
}

func (i impl) ListBudgetSponsors(unitID string) ([]dbmodels.BudgetSponsor, error) {
	result := make([]dbmodels.BudgetSponsor, 0)
	err := i.listQuery(unitID).Find(&result).Error
	return result, err
}

func (i impl) listQuery(unitID string) *gorm.DB {
	// Primary first, then by the holder's display name. The name lives in
	// app_users, a correlated subquery keeps the clause valid for all four
	// assignment tables.
	return i.db.
		Preload("User").
		Where("organizational_unit_id = ? and is_active = true", unitID).
		Order("is_primary desc, (select first_name || ' ' || last_name from app_users where app_users.id = user_id)")
}

func (i impl) GetRow(roleType models.RoleType, id string) (*RoleRow, error) {
	row := RoleRow{}
	err := i.db.
		Model(modelFor(roleType)).
		Where("id = ?", id).
		Take(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (i impl) FindRow(roleType models.RoleType, unitID, userID string) (*RoleRow, error) {
	row := RoleRow{}
	err := i.db.
		Model(modelFor(roleType)).
		Where("organizational_unit_id = ? and user_id = ? and is_active = true", unitID, userID).
		Take(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

// ClearPrimary demotes every primary of one role type in one unit. The
// other role types of the unit are untouched.
func (i impl) ClearPrimary(roleType models.RoleType, unitID string) error {
	return i.db.
		Model(modelFor(roleType)).
		Where("organizational_unit_id = ? and is_primary = true", unitID).
		Update("is_primary", false).
		Error
}

func (i impl) Update(roleType models.RoleType, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(modelFor(roleType)).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(roleType models.RoleType, id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(modelFor(roleType)).
		Error
}
