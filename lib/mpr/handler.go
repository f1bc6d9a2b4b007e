package mprhandler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruitment-backend/db"
	xlsexport "recruitment-backend/lib/export/xls"
	gpthandler "recruitment-backend/lib/gpt"
	mprcommentstore "recruitment-backend/lib/mpr/comment-store"
	mprhistorystore "recruitment-backend/lib/mpr/history-store"
	mprstore "recruitment-backend/lib/mpr/store"
	"recruitment-backend/lib/notify"
	usersstore "recruitment-backend/lib/users/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	gptmodels "recruitment-backend/models/api/gpt"
	mprapimodels "recruitment-backend/models/api/mpr"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	List(filter mprapimodels.MPRFilter) ([]mprapimodels.MPRView, int64, error)
	Create(data mprapimodels.MPRData, actorID string) (id string, err error)
	GetByID(id string) (*mprapimodels.MPRView, error)
	Update(id string, data mprapimodels.MPRData, actorID string) error
	Delete(id string) error

	Submit(id string, actorID string) error
	Approve(id string, req mprapimodels.DecisionRequest, actorID string) error
	Reject(id string, req mprapimodels.RejectRequest, actorID string) error
	Hold(id string, req mprapimodels.DecisionRequest, actorID string) error
	Close(id string, req mprapimodels.DecisionRequest, actorID string) error

	AddComment(id string, data mprapimodels.CommentData, actorID string) (commentID string, err error)
	ListComments(id string, includeInternal bool) ([]mprapimodels.CommentView, error)
	ListStatusHistory(id string) ([]mprapimodels.StatusHistoryView, error)
	Dashboard() (*mprapimodels.DashboardStats, error)
	GenerateDescription(id string) (gptmodels.GenJobPostingResponse, error)
	ExportXls(filter mprapimodels.MPRFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"gpt", gpthandler.Instance,
		"notify", notify.Instance,
		"xls export", xlsexport.Instance,
	)
	Instance = impl{
		store:        mprstore.NewInstance(db.DB),
		historyStore: mprhistorystore.NewInstance(db.DB),
		commentStore: mprcommentstore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        mprstore.Provider
	historyStore mprhistorystore.Provider
	commentStore mprcommentstore.Provider
	userStore    usersstore.Provider
}

func (i impl) List(filter mprapimodels.MPRFilter) ([]mprapimodels.MPRView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("requisition list error")
		return nil, 0, errors.New("requisition list error")
	}
	result := make([]mprapimodels.MPRView, 0, len(list))
	for _, rec := range list {
		result = append(result, mprapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Create(data mprapimodels.MPRData, actorID string) (id string, err error) {
	if err := i.checkRefs(data); err != nil {
		return "", err
	}
	// Number generation and insert share a transaction, two concurrent
	// creates cannot issue the same number, the second one retries on
	// the unique index.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := mprstore.NewInstance(tx)
		year := time.Now().Year()
		lastNumber, err := store.LastNumber(fmt.Sprintf("%d-", year))
		if err != nil {
			return err
		}
		rec := mprRec(data)
		rec.MPRNumber = nextMPRNumber(lastNumber, year)
		rec.Status = models.MPRStatusDraft
		if actorID != "" {
			rec.CreatedByID = &actorID
		}
		id, err = store.Create(rec)
		return err
	})
	if err != nil {
		log.WithError(err).Error("requisition creation error")
		return "", errors.New("requisition creation error")
	}
	log.WithField("rec_id", id).Info("requisition created")
	return id, nil
}

func (i impl) GetByID(id string) (*mprapimodels.MPRView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	view := mprapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) Update(id string, data mprapimodels.MPRData, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MPRStatusDraft && rec.Status != models.MPRStatusPending {
		return models.NewInvalidStateError("requisition in status (%v) is read-only", rec.Status)
	}
	if err := i.checkRefs(data); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"priority":                data.Priority,
		"job_title_id":            data.JobTitleID,
		"department_id":           data.DepartmentID,
		"division_id":             data.DivisionID,
		"unit_id":                 data.UnitID,
		"location_id":             data.LocationID,
		"desired_start_date":      data.DesiredStartDate,
		"employment_type":         data.EmploymentType,
		"hiring_reason":           data.HiringReason,
		"business_justification":  data.BusinessJustification,
		"education_requirements":  data.EducationRequirements,
		"required_skills":         pq.StringArray(data.RequiredSkills),
		"assessment_requirements": data.AssessmentRequirements,
		"recruiter_id":            data.RecruiterID,
		"budget_holder_id":        data.BudgetHolderID,
		"proposed_candidate":      data.ProposedCandidate,
	}
	if actorID != "" {
		updMap["updated_by_id"] = actorID
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MPRStatusDraft {
		return models.NewInvalidStateError("only draft requisitions can be deleted")
	}
	return i.store.Delete(id)
}

func (i impl) Submit(id string, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowSubmit() {
		return models.NewInvalidStateError("requisition in status (%v) cannot be submitted for approval", rec.Status)
	}
	return i.changeStatus(rec, models.MPRStatusPending, "", actorID, nil)
}

func (i impl) Approve(id string, req mprapimodels.DecisionRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowDecision() {
		return models.NewInvalidStateError("requisition in status (%v) cannot be approved", rec.Status)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"approved_at": now,
	}
	if actorID != "" {
		updMap["approved_by_id"] = actorID
	}
	if err := i.changeStatus(rec, models.MPRStatusApproved, req.Reason, actorID, updMap); err != nil {
		return err
	}
	i.notifyDecision(rec, models.MPRStatusApproved, req.Reason)
	return nil
}

func (i impl) Reject(id string, req mprapimodels.RejectRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowDecision() {
		return models.NewInvalidStateError("requisition in status (%v) cannot be rejected", rec.Status)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"rejected_at":      now,
		"rejection_reason": req.Reason,
	}
	if actorID != "" {
		updMap["rejected_by_id"] = actorID
	}
	if err := i.changeStatus(rec, models.MPRStatusRejected, req.Reason, actorID, updMap); err != nil {
		return err
	}
	i.notifyDecision(rec, models.MPRStatusRejected, req.Reason)
	return nil
}

func (i impl) Hold(id string, req mprapimodels.DecisionRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MPRStatusPending && rec.Status != models.MPRStatusApproved {
		return models.NewInvalidStateError("requisition in status (%v) cannot be put on hold", rec.Status)
	}
	return i.changeStatus(rec, models.MPRStatusOnHold, req.Reason, actorID, nil)
}

func (i impl) Close(id string, req mprapimodels.DecisionRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == models.MPRStatusClosed {
		return models.NewInvalidStateError("requisition is already closed")
	}
	return i.changeStatus(rec, models.MPRStatusClosed, req.Reason, actorID, nil)
}

// changeStatus updates the status together with extraUpd and appends the
// history record in one transaction.
func (i impl) changeStatus(rec *dbmodels.MPR, newStatus models.MPRStatus, reason, actorID string, extraUpd map[string]interface{}) error {
	actorName, actorRef, err := i.resolveActor(actorID)
	if err != nil {
		return err
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := mprstore.NewInstance(tx)
		historyStore := mprhistorystore.NewInstance(tx)

		updMap := map[string]interface{}{"status": newStatus}
		for column, value := range extraUpd {
			updMap[column] = value
		}
		if err := store.Update(rec.ID, updMap); err != nil {
			return err
		}
		previous := rec.Status
		history := dbmodels.MPRStatusHistory{
			MPRID:       rec.ID,
			FromStatus:  &previous,
			ToStatus:    newStatus,
			Reason:      reason,
			ChangedByID: actorRef,
			ActorName:   actorName,
		}
		if _, err := historyStore.Create(history); err != nil {
			return err
		}
		log.
			WithField("rec_id", rec.ID).
			WithField("new_status", newStatus).
			Info("requisition status changed")
		return nil
	})
}

func (i impl) notifyDecision(rec *dbmodels.MPR, status models.MPRStatus, reason string) {
	if rec.CreatedBy == nil || rec.CreatedBy.Email == "" {
		return
	}
	notify.Instance.MPRDecision(rec.CreatedBy.Email, rec.MPRNumber, status, reason)
}

func (i impl) AddComment(id string, data mprapimodels.CommentData, actorID string) (commentID string, err error) {
	if _, err := i.getRec(id); err != nil {
		return "", err
	}
	rec := dbmodels.MPRComment{
		MPRID:      id,
		Comment:    data.Comment,
		IsInternal: data.IsInternal,
	}
	if actorID != "" {
		rec.UserID = &actorID
	}
	commentID, err = i.commentStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("comment save error")
		return "", errors.New("comment save error")
	}
	return commentID, nil
}

func (i impl) ListComments(id string, includeInternal bool) ([]mprapimodels.CommentView, error) {
	if _, err := i.getRec(id); err != nil {
		return nil, err
	}
	list, err := i.commentStore.List(id, includeInternal)
	if err != nil {
		log.WithError(err).Error("comment list error")
		return nil, errors.New("comment list error")
	}
	result := make([]mprapimodels.CommentView, 0, len(list))
	for _, rec := range list {
		result = append(result, mprapimodels.ConvertComment(rec))
	}
	return result, nil
}

func (i impl) ListStatusHistory(id string) ([]mprapimodels.StatusHistoryView, error) {
	if _, err := i.getRec(id); err != nil {
		return nil, err
	}
	list, err := i.historyStore.List(id)
	if err != nil {
		log.WithError(err).Error("status history list error")
		return nil, errors.New("status history list error")
	}
	result := make([]mprapimodels.StatusHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, mprapimodels.ConvertStatusHistory(rec))
	}
	return result, nil
}

func (i impl) Dashboard() (*mprapimodels.DashboardStats, error) {
	counts, err := i.store.StatusCounts()
	if err != nil {
		log.WithError(err).Error("dashboard stats error")
		return nil, errors.New("dashboard stats error")
	}
	stats := mprapimodels.DashboardStats{ByStatus: counts}
	for _, total := range counts {
		stats.Total += total
	}
	return &stats, nil
}

func (i impl) GenerateDescription(id string) (gptmodels.GenJobPostingResponse, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return gptmodels.GenJobPostingResponse{}, err
	}
	parts := []string{}
	if rec.JobTitle != nil {
		parts = append(parts, fmt.Sprintf("Position: %v", rec.JobTitle.Title))
	}
	if rec.Department != nil {
		parts = append(parts, fmt.Sprintf("Department: %v", rec.Department.Name))
	}
	if rec.Location != nil {
		parts = append(parts, fmt.Sprintf("Location: %v", rec.Location.Name))
	}
	if rec.EmploymentType != "" {
		parts = append(parts, fmt.Sprintf("Employment type: %v", rec.EmploymentType))
	}
	if len(rec.RequiredSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Required skills: %v", strings.Join(rec.RequiredSkills, ", ")))
	}
	if rec.EducationRequirements != "" {
		parts = append(parts, fmt.Sprintf("Education: %v", rec.EducationRequirements))
	}
	if len(parts) == 0 {
		return gptmodels.GenJobPostingResponse{}, models.NewValidationError("id", "requisition has no details to generate from")
	}
	resp, err := gpthandler.Instance.GenerateJobPosting(strings.Join(parts, "\n"))
	if err != nil {
		return gptmodels.GenJobPostingResponse{}, models.NewExternalError("description generation is unavailable")
	}
	return resp, nil
}

func (i impl) ExportXls(filter mprapimodels.MPRFilter) (*bytes.Buffer, error) {
	filter.Limit = 100
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("requisition list error")
		return nil, errors.New("requisition list error")
	}
	return xlsexport.Instance.ExportMPRList(list)
}

func (i impl) getRec(id string) (*dbmodels.MPR, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).Error("requisition lookup error")
		return nil, errors.New("requisition lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("requisition not found")
	}
	return rec, nil
}

func (i impl) resolveActor(actorID string) (name string, ref *string, err error) {
	if actorID == "" {
		return models.SystemUser, nil, nil
	}
	user, err := i.userStore.GetByID(actorID)
	if err != nil {
		log.WithError(err).Error("actor lookup error")
		return "", nil, errors.New("actor lookup error")
	}
	if user == nil {
		return "", nil, models.NewNotFoundError("actor not found")
	}
	return user.GetFullName(), &actorID, nil
}

func (i impl) checkRefs(data mprapimodels.MPRData) error {
	job, err := i.store.GetJobByID(data.JobTitleID)
	if err != nil {
		return err
	}
	if job == nil {
		return models.NewNotFoundError("job title not found")
	}
	if data.LocationID != nil {
		location, err := i.store.GetLocationByID(*data.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return models.NewNotFoundError("location not found")
		}
	}
	return nil
}

func mprRec(data mprapimodels.MPRData) dbmodels.MPR {
	rec := dbmodels.MPR{
		Priority:               data.Priority,
		JobTitleID:             data.JobTitleID,
		DepartmentID:           data.DepartmentID,
		DivisionID:             data.DivisionID,
		UnitID:                 data.UnitID,
		LocationID:             data.LocationID,
		DesiredStartDate:       data.DesiredStartDate,
		EmploymentType:         data.EmploymentType,
		HiringReason:           data.HiringReason,
		BusinessJustification:  data.BusinessJustification,
		EducationRequirements:  data.EducationRequirements,
		RequiredSkills:         data.RequiredSkills,
		AssessmentRequirements: data.AssessmentRequirements,
		RecruiterID:            data.RecruiterID,
		BudgetHolderID:         data.BudgetHolderID,
		ProposedCandidate:      data.ProposedCandidate,
	}
	if rec.Priority == "" {
		rec.Priority = models.MPRPriorityMedium
	}
	return rec
}
