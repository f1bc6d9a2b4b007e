package orghandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruitment-backend/db"
	orgemployeestore "recruitment-backend/lib/org/employee-store"
	orgrolestore "recruitment-backend/lib/org/role-store"
	orgunitstore "recruitment-backend/lib/org/store"
	usersstore "recruitment-backend/lib/users/store"
	"recruitment-backend/models"
	orgapimodels "recruitment-backend/models/api/org"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ListUnits(filter orgapimodels.UnitFilter) ([]orgapimodels.UnitView, int64, error)
	CreateUnit(data orgapimodels.UnitData) (id string, err error)
	GetUnitByID(id string) (*orgapimodels.UnitView, error)
	UpdateUnit(id string, data orgapimodels.UnitData) error
	DeleteUnit(id string) error
	GetHeadcount(id string) (*orgapimodels.HeadcountView, error)

	ListEmployees(filter orgapimodels.EmployeeFilter) ([]orgapimodels.EmployeeView, int64, error)
	CreateEmployee(data orgapimodels.EmployeeData) (id string, err error)
	UpdateEmployee(id string, data orgapimodels.EmployeeData) error
	DeleteEmployee(id string) error

	AssignRole(unitID string, req orgapimodels.AssignRoleRequest, actorID string) (assignmentID string, err error)
	RemoveRole(unitID string, roleType models.RoleType, assignmentID string) error
	SetPrimary(unitID string, roleType models.RoleType, assignmentID string) error
	ListRoles(unitID string) (*orgapimodels.UnitRoles, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		unitStore:     orgunitstore.NewInstance(db.DB),
		employeeStore: orgemployeestore.NewInstance(db.DB),
		roleStore:     orgrolestore.NewInstance(db.DB),
		userStore:     usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	unitStore     orgunitstore.Provider
	employeeStore orgemployeestore.Provider
	roleStore     orgrolestore.Provider
	userStore     usersstore.Provider
}

// primaryColumn maps a role type to the denormalized pointer column on
// the unit row.
func primaryColumn(roleType models.RoleType) string {
	switch roleType {
	case models.RoleTypeRecruiter:
		return "primary_recruiter_id"
	case models.RoleTypeManager:
		return "primary_manager_id"
	case models.RoleTypeBudgetHolder:
		return "primary_budget_holder_id"
	default:
		return "primary_budget_sponsor_id"
	}
}

// unitUpdateOnRemoval decides what happens to the unit's primary pointer
// when an assignment is removed. A removed primary leaves the slot empty,
// it never silently moves to another holder; a non-primary removal leaves
// the unit untouched (nil update).
func unitUpdateOnRemoval(roleType models.RoleType, wasPrimary bool) map[string]interface{} {
	if !wasPrimary {
		return nil
	}
	return map[string]interface{}{primaryColumn(roleType): nil}
}

func (i impl) ListUnits(filter orgapimodels.UnitFilter) ([]orgapimodels.UnitView, int64, error) {
	rowCount, err := i.unitStore.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.unitStore.List(filter)
	if err != nil {
		log.WithError(err).Error("unit list error")
		return nil, 0, errors.New("unit list error")
	}
	result := make([]orgapimodels.UnitView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.ConvertUnit(rec))
	}
	return result, rowCount, nil
}

func (i impl) CreateUnit(data orgapimodels.UnitData) (id string, err error) {
	existed, err := i.unitStore.GetByCode(data.Code)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("unit with code (%v) already exists", data.Code)
	}
	if data.ParentID != nil {
		parent, err := i.unitStore.GetByID(*data.ParentID)
		if err != nil {
			return "", err
		}
		if parent == nil {
			return "", models.NewNotFoundError("parent unit not found")
		}
	}
	id, err = i.unitStore.Create(dbmodels.OrganizationalUnit{
		Name:           data.Name,
		UnitType:       data.UnitType,
		Code:           data.Code,
		ParentID:       data.ParentID,
		CostCenter:     data.CostCenter,
		HeadcountLimit: data.HeadcountLimit,
		IsActive:       data.IsActive,
	})
	if err != nil {
		log.WithError(err).Error("unit creation error")
		return "", errors.New("unit creation error")
	}
	log.WithField("rec_id", id).Info("organizational unit created")
	return id, nil
}

func (i impl) GetUnitByID(id string) (*orgapimodels.UnitView, error) {
	rec, err := i.getUnitRec(id)
	if err != nil {
		return nil, err
	}
	view := orgapimodels.ConvertUnit(*rec)
	return &view, nil
}

func (i impl) UpdateUnit(id string, data orgapimodels.UnitData) error {
	rec, err := i.getUnitRec(id)
	if err != nil {
		return err
	}
	if data.Code != rec.Code {
		existed, err := i.unitStore.GetByCode(data.Code)
		if err != nil {
			return err
		}
		if existed != nil {
			return models.NewDuplicateError("unit with code (%v) already exists", data.Code)
		}
	}
	if data.ParentID != nil {
		if *data.ParentID == id {
			return models.NewValidationError("parent_id", "unit cannot be its own parent")
		}
		parent, err := i.unitStore.GetByID(*data.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return models.NewNotFoundError("parent unit not found")
		}
	}
	return i.unitStore.Update(id, map[string]interface{}{
		"name":            data.Name,
		"unit_type":       data.UnitType,
		"code":            data.Code,
		"parent_id":       data.ParentID,
		"cost_center":     data.CostCenter,
		"headcount_limit": data.HeadcountLimit,
		"is_active":       data.IsActive,
	})
}

func (i impl) DeleteUnit(id string) error {
	if _, err := i.getUnitRec(id); err != nil {
		return err
	}
	hasChildren, err := i.unitStore.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return models.NewInvalidStateError("unit with child units cannot be deleted")
	}
	return i.unitStore.Delete(id)
}

func (i impl) GetHeadcount(id string) (*orgapimodels.HeadcountView, error) {
	rec, err := i.getUnitRec(id)
	if err != nil {
		return nil, err
	}
	return &orgapimodels.HeadcountView{
		UnitID:           rec.ID,
		CurrentHeadcount: rec.CurrentHeadcount,
		HeadcountLimit:   rec.HeadcountLimit,
	}, nil
}

func (i impl) ListEmployees(filter orgapimodels.EmployeeFilter) ([]orgapimodels.EmployeeView, int64, error) {
	rowCount, err := i.employeeStore.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.employeeStore.List(filter)
	if err != nil {
		log.WithError(err).Error("employee list error")
		return nil, 0, errors.New("employee list error")
	}
	result := make([]orgapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.ConvertEmployee(rec))
	}
	return result, rowCount, nil
}

func (i impl) CreateEmployee(data orgapimodels.EmployeeData) (id string, err error) {
	existed, err := i.employeeStore.GetByEmployeeID(data.EmployeeID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("employee with id (%v) already exists", data.EmployeeID)
	}
	if data.DepartmentID != nil {
		unit, err := i.unitStore.GetByID(*data.DepartmentID)
		if err != nil {
			return "", err
		}
		if unit == nil {
			return "", models.NewNotFoundError("department not found")
		}
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		employeeStore := orgemployeestore.NewInstance(tx)
		id, err = employeeStore.Create(dbmodels.Employee{
			EmployeeID:   data.EmployeeID,
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			Email:        data.Email,
			DepartmentID: data.DepartmentID,
			PositionID:   data.PositionID,
			HireDate:     data.HireDate,
			IsActive:     data.IsActive,
		})
		if err != nil {
			return err
		}
		return i.recomputeHeadcountTx(tx, data.DepartmentID)
	})
	if err != nil {
		log.WithError(err).Error("employee creation error")
		return "", errors.New("employee creation error")
	}
	return id, nil
}

func (i impl) UpdateEmployee(id string, data orgapimodels.EmployeeData) error {
	rec, err := i.getEmployeeRec(id)
	if err != nil {
		return err
	}
	if data.EmployeeID != rec.EmployeeID {
		existed, err := i.employeeStore.GetByEmployeeID(data.EmployeeID)
		if err != nil {
			return err
		}
		if existed != nil {
			return models.NewDuplicateError("employee with id (%v) already exists", data.EmployeeID)
		}
	}
	if data.DepartmentID != nil {
		unit, err := i.unitStore.GetByID(*data.DepartmentID)
		if err != nil {
			return err
		}
		if unit == nil {
			return models.NewNotFoundError("department not found")
		}
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		employeeStore := orgemployeestore.NewInstance(tx)
		err := employeeStore.Update(id, map[string]interface{}{
			"employee_id":   data.EmployeeID,
			"first_name":    data.FirstName,
			"last_name":     data.LastName,
			"email":         data.Email,
			"department_id": data.DepartmentID,
			"position_id":   data.PositionID,
			"hire_date":     data.HireDate,
			"is_active":     data.IsActive,
		})
		if err != nil {
			return err
		}
		// both the previous and the new department counts may change
		if err := i.recomputeHeadcountTx(tx, rec.DepartmentID); err != nil {
			return err
		}
		return i.recomputeHeadcountTx(tx, data.DepartmentID)
	})
}

func (i impl) DeleteEmployee(id string) error {
	rec, err := i.getEmployeeRec(id)
	if err != nil {
		return err
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := orgemployeestore.NewInstance(tx).Delete(id); err != nil {
			return err
		}
		return i.recomputeHeadcountTx(tx, rec.DepartmentID)
	})
}

// recomputeHeadcountTx refreshes the derived employee count of one unit
// from the employee table, full recount on every write.
func (i impl) recomputeHeadcountTx(tx *gorm.DB, unitID *string) error {
	if unitID == nil {
		return nil
	}
	rowCount, err := orgemployeestore.NewInstance(tx).CountActive(*unitID)
	if err != nil {
		return err
	}
	return orgunitstore.NewInstance(tx).
		Update(*unitID, map[string]interface{}{"current_headcount": rowCount})
}

func (i impl) AssignRole(unitID string, req orgapimodels.AssignRoleRequest, actorID string) (assignmentID string, err error) {
	if _, err := i.getUnitRec(unitID); err != nil {
		return "", err
	}
	user, err := i.userStore.GetByID(req.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewNotFoundError("user not found")
	}
	existed, err := i.roleStore.FindRow(req.RoleType, unitID, req.UserID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("user (%v) already holds the (%v) role in this unit",
			user.GetFullName(), req.RoleType)
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		roleStore := orgrolestore.NewInstance(tx)
		if req.IsPrimary {
			if err := roleStore.ClearPrimary(req.RoleType, unitID); err != nil {
				return err
			}
		}
		assignmentID, err = i.createAssignmentTx(roleStore, unitID, req, actorID)
		if err != nil {
			return err
		}
		if req.IsPrimary {
			return orgunitstore.NewInstance(tx).
				Update(unitID, map[string]interface{}{primaryColumn(req.RoleType): req.UserID})
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("role assignment error")
		return "", errors.New("role assignment error")
	}
	log.
		WithField("rec_id", assignmentID).
		WithField("role_type", req.RoleType).
		Info("role assigned")
	return assignmentID, nil
}

func (i impl) createAssignmentTx(roleStore orgrolestore.Provider, unitID string, req orgapimodels.AssignRoleRequest, actorID string) (string, error) {
	var assignedBy *string
	if actorID != "" {
		assignedBy = &actorID
	}
	now := time.Now()
	switch req.RoleType {
	case models.RoleTypeRecruiter:
		rec := dbmodels.Recruiter{
			UserID:               req.UserID,
			OrganizationalUnitID: unitID,
			Specialization:       req.Specialization,
		}
		rec.IsPrimary = req.IsPrimary
		rec.IsActive = true
		rec.AssignedByID = assignedBy
		rec.AssignedAt = now
		return roleStore.CreateRecruiter(rec)
	case models.RoleTypeManager:
		rec := dbmodels.Manager{
			UserID:               req.UserID,
			OrganizationalUnitID: unitID,
			ManagerType:          req.ManagerType,
		}
		rec.IsPrimary = req.IsPrimary
		rec.IsActive = true
		rec.AssignedByID = assignedBy
		rec.AssignedAt = now
		return roleStore.CreateManager(rec)
	case models.RoleTypeBudgetHolder:
		rec := dbmodels.BudgetHolder{
			UserID:               req.UserID,
			OrganizationalUnitID: unitID,
			BudgetLimit:          req.BudgetLimit,
			BudgetType:           req.BudgetType,
		}
		rec.IsPrimary = req.IsPrimary
		rec.IsActive = true
		rec.AssignedByID = assignedBy
		rec.AssignedAt = now
		return roleStore.CreateBudgetHolder(rec)
	default:
		rec := dbmodels.BudgetSponsor{
			UserID:               req.UserID,
			OrganizationalUnitID: unitID,
			ApprovalLimit:        req.ApprovalLimit,
			SponsorLevel:         req.SponsorLevel,
		}
		rec.IsPrimary = req.IsPrimary
		rec.IsActive = true
		rec.AssignedByID = assignedBy
		rec.AssignedAt = now
		return roleStore.CreateBudgetSponsor(rec)
	}
}

// RemoveRole deletes an assignment. When the removed holder was primary
// the unit pointer is cleared, it never silently moves to someone else.
func (i impl) RemoveRole(unitID string, roleType models.RoleType, assignmentID string) error {
	if !roleType.IsValid() {
		return models.NewValidationErrorf("role_type", "unknown role type (%v)", roleType)
	}
	row, err := i.getRoleRow(unitID, roleType, assignmentID)
	if err != nil {
		return err
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := orgrolestore.NewInstance(tx).Delete(roleType, assignmentID); err != nil {
			return err
		}
		if updMap := unitUpdateOnRemoval(roleType, row.IsPrimary); updMap != nil {
			return orgunitstore.NewInstance(tx).Update(unitID, updMap)
		}
		return nil
	})
}

func (i impl) SetPrimary(unitID string, roleType models.RoleType, assignmentID string) error {
	if !roleType.IsValid() {
		return models.NewValidationErrorf("role_type", "unknown role type (%v)", roleType)
	}
	row, err := i.getRoleRow(unitID, roleType, assignmentID)
	if err != nil {
		return err
	}
	if !row.IsActive {
		return models.NewInvalidStateError("inactive assignment cannot be primary")
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		roleStore := orgrolestore.NewInstance(tx)
		if err := roleStore.ClearPrimary(roleType, unitID); err != nil {
			return err
		}
		if err := roleStore.Update(roleType, assignmentID, map[string]interface{}{"is_primary": true}); err != nil {
			return err
		}
		return orgunitstore.NewInstance(tx).
			Update(unitID, map[string]interface{}{primaryColumn(roleType): row.UserID})
	})
}

func (i impl) ListRoles(unitID string) (*orgapimodels.UnitRoles, error) {
	if _, err := i.getUnitRec(unitID); err != nil {
		return nil, err
	}
	result := orgapimodels.UnitRoles{
		Recruiters:     []orgapimodels.RoleAssignmentView{},
		Managers:       []orgapimodels.RoleAssignmentView{},
		BudgetHolders:  []orgapimodels.RoleAssignmentView{},
		BudgetSponsors: []orgapimodels.RoleAssignmentView{},
	}
	recruiters, err := i.roleStore.ListRecruiters(unitID)
	if err != nil {
		return nil, err
	}
	for _, rec := range recruiters {
		result.Recruiters = append(result.Recruiters, orgapimodels.ConvertRecruiter(rec))
	}
	managers, err := i.roleStore.ListManagers(unitID)
	if err != nil {
		return nil, err
	}
	for _, rec := range managers {
		result.Managers = append(result.Managers, orgapimodels.ConvertManager(rec))
	}
	budgetHolders, err := i.roleStore.ListBudgetHolders(unitID)
	if err != nil {
		return nil, err
	}
	for _, rec := range budgetHolders {
		result.BudgetHolders = append(result.BudgetHolders, orgapimodels.ConvertBudgetHolder(rec))
	}
	budgetSponsors, err := i.roleStore.ListBudgetSponsors(unitID)
	if err != nil {
		return nil, err
	}
	for _, rec := range budgetSponsors {
		result.BudgetSponsors = append(result.BudgetSponsors, orgapimodels.ConvertBudgetSponsor(rec))
	}
	return &result, nil
}

func (i impl) getUnitRec(id string) (*dbmodels.OrganizationalUnit, error) {
	rec, err := i.unitStore.GetByID(id)
	if err != nil {
		log.WithError(err).Error("unit lookup error")
		return nil, errors.New("unit lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("organizational unit not found")
	}
	return rec, nil
}

func (i impl) getEmployeeRec(id string) (*dbmodels.Employee, error) {
	rec, err := i.employeeStore.GetByID(id)
	if err != nil {
		log.WithError(err).Error("employee lookup error")
		return nil, errors.New("employee lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("employee not found")
	}
	return rec, nil
}

func (i impl) getRoleRow(unitID string, roleType models.RoleType, assignmentID string) (*orgrolestore.RoleRow, error) {
	row, err := i.roleStore.GetRow(roleType, assignmentID)
	if err != nil {
		log.WithError(err).Error("role assignment lookup error")
		return nil, errors.New("role assignment lookup error")
	}
	if row == nil || row.OrganizationalUnitID != unitID {
		return nil, models.NewNotFoundError("role assignment not found")
	}
	return row, nil
}
