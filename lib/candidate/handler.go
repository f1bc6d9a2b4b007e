package candidatehandler

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruitment-backend/db"
	candidateapplicationstore "recruitment-backend/lib/candidate/application-store"
	candidateattachmentstore "recruitment-backend/lib/candidate/attachment-store"
	candidatehistorystore "recruitment-backend/lib/candidate/history-store"
	candidatestore "recruitment-backend/lib/candidate/store"
	xlsexport "recruitment-backend/lib/export/xls"
	filestorage "recruitment-backend/lib/file-storage"
	mprstore "recruitment-backend/lib/mpr/store"
	"recruitment-backend/lib/notify"
	usersstore "recruitment-backend/lib/users/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	candidateapimodels "recruitment-backend/models/api/candidate"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error)
	Create(data candidateapimodels.CandidateData) (id string, err error)
	GetByID(id string) (*candidateapimodels.CandidateView, error)
	Update(id string, data candidateapimodels.CandidateData) error
	Delete(id string) error

	ChangeStatus(id string, req candidateapimodels.StatusUpdateRequest, actorID string) error
	BulkChangeStatus(req candidateapimodels.BulkStatusUpdateRequest, actorID string) error
	SetScores(id string, req candidateapimodels.ScoreRequest) (*candidateapimodels.CandidateView, error)
	GetSummary(id string) (*candidateapimodels.CandidateSummary, error)
	ListStatusUpdates(id string) ([]candidateapimodels.StatusUpdateView, error)

	UploadAttachment(ctx context.Context, candidateID, fileName, mimeType string, body []byte, data candidateapimodels.AttachmentUploadData, actorID string) (id string, err error)
	ListAttachments(candidateID string) ([]candidateapimodels.AttachmentView, error)
	GetAttachmentFile(ctx context.Context, attachmentID string) (*dbmodels.CandidateAttachment, []byte, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
	SetPrimaryCV(candidateID, attachmentID string) error

	CreateApplication(candidateID string, data candidateapimodels.ApplicationData, actorID string) (id string, err error)
	ListApplications(candidateID string) ([]candidateapimodels.ApplicationView, error)
	ChangeApplicationStage(candidateID, applicationID string, req candidateapimodels.ChangeStageRequest, actorID string) error
	SetApplicationCV(candidateID, applicationID, attachmentID string) error
	ApplySkillMatch(candidateID, applicationID string) (*candidateapimodels.ApplicationView, error)

	ExportXls(filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"file storage", filestorage.Instance,
		"notify", notify.Instance,
		"xls export", xlsexport.Instance,
	)
	Instance = impl{
		store:            candidatestore.NewInstance(db.DB),
		historyStore:     candidatehistorystore.NewInstance(db.DB),
		attachmentStore:  candidateattachmentstore.NewInstance(db.DB),
		applicationStore: candidateapplicationstore.NewInstance(db.DB),
		mprStore:         mprstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            candidatestore.Provider
	historyStore     candidatehistorystore.Provider
	attachmentStore  candidateattachmentstore.Provider
	applicationStore candidateapplicationstore.Provider
	mprStore         mprstore.Provider
	userStore        usersstore.Provider
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}

	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("candidate list error")
		return nil, 0, errors.New("candidate list error")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	existed, err := i.store.GetByEmail(data.Email)
	if err != nil {
		log.WithError(err).Error("candidate lookup error")
		return "", errors.New("candidate lookup error")
	}
	if existed != nil {
		return "", models.NewDuplicateError("candidate with email (%v) already exists", data.Email)
	}
	rec := candidateRec(data)
	rec.HiringStatus = models.HiringStatusApplied
	rec.AppliedAt = time.Now()
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("candidate creation error")
		return "", errors.New("candidate creation error")
	}
	log.WithField("rec_id", id).Info("candidate created")
	return id, nil
}

func (i impl) GetByID(id string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	view := candidateapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if data.Email != rec.Email {
		existed, err := i.store.GetByEmail(data.Email)
		if err != nil {
			return err
		}
		if existed != nil && existed.ID != id {
			return models.NewDuplicateError("candidate with email (%v) already exists", data.Email)
		}
	}
	updMap := map[string]interface{}{
		"email":                 data.Email,
		"name":                  data.Name,
		"phone":                 data.Phone,
		"alternative_phone":     data.AlternativePhone,
		"location":              data.Location,
		"address":               data.Address,
		"date_of_birth":         data.DateOfBirth,
		"nationality":           data.Nationality,
		"current_position":      data.CurrentPosition,
		"current_company":       data.CurrentCompany,
		"professional_summary":  data.ProfessionalSummary,
		"experience_years":      data.ExperienceYears,
		"professional_skills":   pq.StringArray(data.ProfessionalSkills),
		"technical_skills":      pq.StringArray(data.TechnicalSkills),
		"soft_skills":           pq.StringArray(data.SoftSkills),
		"languages":             pq.StringArray(data.Languages),
		"certifications":        pq.StringArray(data.Certifications),
		"linkedin_url":          data.LinkedinURL,
		"portfolio_url":         data.PortfolioURL,
		"github_url":            data.GithubURL,
		"personal_website":      data.PersonalWebsite,
		"salary_expectation":    data.SalaryExpectation,
		"salary_currency":       data.SalaryCurrency,
		"availability_date":     data.AvailabilityDate,
		"notice_period_days":    data.NoticePeriodDays,
		"internal_notes":        data.InternalNotes,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	if _, err := i.getRec(id); err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) ChangeStatus(id string, req candidateapimodels.StatusUpdateRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	actorName, actorRef, err := i.resolveActor(actorID)
	if err != nil {
		return err
	}
	changed := false
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		changed, err = i.changeStatusTx(tx, *rec, req.Status, req.Reason, actorRef, actorName)
		return err
	})
	if err != nil {
		return err
	}
	if changed {
		notify.Instance.CandidateStatusChanged(rec.Email, rec.Name, req.Status)
	}
	return nil
}

func (i impl) BulkChangeStatus(req candidateapimodels.BulkStatusUpdateRequest, actorID string) error {
	list, err := i.store.ListByIDs(req.IDs)
	if err != nil {
		log.WithError(err).Error("candidate list error")
		return errors.New("candidate list error")
	}
	if len(list) != len(req.IDs) {
		return models.NewNotFoundError("some candidates were not found")
	}
	actorName, actorRef, err := i.resolveActor(actorID)
	if err != nil {
		return err
	}
	notified := make([]dbmodels.Candidate, 0, len(list))
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		for _, rec := range list {
			changed, err := i.changeStatusTx(tx, rec, req.Status, req.Reason, actorRef, actorName)
			if err != nil {
				return err
			}
			if changed {
				notified = append(notified, rec)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, rec := range notified {
		notify.Instance.CandidateStatusChanged(rec.Email, rec.Name, req.Status)
	}
	return nil
}

// changeStatusTx applies one status transition inside the caller's
// transaction. The history record and the entity update commit together.
func (i impl) changeStatusTx(tx *gorm.DB, rec dbmodels.Candidate, newStatus models.HiringStatus, reason string, actorRef *string, actorName string) (changed bool, err error) {
	decision := decideTransition(rec.HiringStatus, newStatus)
	if !decision.Record {
		return false, nil
	}
	store := candidatestore.NewInstance(tx)
	historyStore := candidatehistorystore.NewInstance(tx)
	if err := store.Update(rec.ID, map[string]interface{}{"hiring_status": newStatus}); err != nil {
		return false, err
	}
	history := dbmodels.CandidateStatusUpdate{
		CandidateID:    rec.ID,
		PreviousStatus: decision.PreviousStatus,
		NewStatus:      newStatus,
		Reason:         reason,
		UpdatedByID:    actorRef,
		ActorName:      actorName,
	}
	if _, err := historyStore.Create(history); err != nil {
		return false, err
	}
	log.
		WithField("rec_id", rec.ID).
		WithField("new_status", newStatus).
		Info("candidate status changed")
	return true, nil
}

func (i impl) SetScores(id string, req candidateapimodels.ScoreRequest) (*candidateapimodels.CandidateView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	hrScore := rec.HRInterviewScore
	portfolioScore := rec.PortfolioReviewScore
	designScore := rec.DesignTestScore
	if req.HRInterviewScore != nil {
		hrScore = req.HRInterviewScore
	}
	if req.PortfolioReviewScore != nil {
		portfolioScore = req.PortfolioReviewScore
	}
	if req.DesignTestScore != nil {
		designScore = req.DesignTestScore
	}
	updMap := map[string]interface{}{
		"hr_interview_score":     hrScore,
		"portfolio_review_score": portfolioScore,
		"design_test_score":      designScore,
		"overall_score":          overallScore(hrScore, portfolioScore, designScore),
	}
	if err := i.store.Update(id, updMap); err != nil {
		return nil, err
	}
	return i.GetByID(id)
}

func (i impl) GetSummary(id string) (*candidateapimodels.CandidateSummary, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	summary := candidateapimodels.CandidateSummary{
		Candidate: candidateapimodels.Convert(*rec),
	}
	summary.StatusUpdates, err = i.ListStatusUpdates(id)
	if err != nil {
		return nil, err
	}
	summary.Attachments, err = i.ListAttachments(id)
	if err != nil {
		return nil, err
	}
	summary.Applications, err = i.ListApplications(id)
	if err != nil {
		return nil, err
	}
	err = db.DB.
		Model(dbmodels.Interview{}).
		Where("candidate_id = ?", id).
		Count(&summary.InterviewCount).
		Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (i impl) ListStatusUpdates(id string) ([]candidateapimodels.StatusUpdateView, error) {
	list, err := i.historyStore.List(id)
	if err != nil {
		log.WithError(err).Error("status update list error")
		return nil, errors.New("status update list error")
	}
	result := make([]candidateapimodels.StatusUpdateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertStatusUpdate(rec))
	}
	return result, nil
}

func (i impl) UploadAttachment(ctx context.Context, candidateID, fileName, mimeType string, body []byte, data candidateapimodels.AttachmentUploadData, actorID string) (id string, err error) {
	if _, err := i.getRec(candidateID); err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", models.NewValidationError("file", "file is empty")
	}
	objectKey := fmt.Sprintf("candidate/%v/%v%v", candidateID, uuid.NewString(), filepath.Ext(fileName))
	if err := filestorage.Instance.Upload(ctx, objectKey, body, mimeType); err != nil {
		log.WithError(err).Error("attachment upload error")
		return "", models.NewExternalError("file storage is unavailable")
	}
	rec := dbmodels.CandidateAttachment{
		CandidateID:            candidateID,
		FileName:               filepath.Base(objectKey),
		OriginalFileName:       fileName,
		FileSize:               int64(len(body)),
		FileType:               data.FileType,
		MimeType:               mimeType,
		ObjectKey:              objectKey,
		IsVisibleToLineManager: data.IsVisibleToLineManager,
		Description:            data.Description,
	}
	if actorID != "" {
		rec.UploadedByID = &actorID
	}
	id, err = i.attachmentStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("attachment save error")
		return "", errors.New("attachment save error")
	}
	return id, nil
}

func (i impl) ListAttachments(candidateID string) ([]candidateapimodels.AttachmentView, error) {
	list, err := i.attachmentStore.List(candidateID)
	if err != nil {
		log.WithError(err).Error("attachment list error")
		return nil, errors.New("attachment list error")
	}
	result := make([]candidateapimodels.AttachmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertAttachment(rec))
	}
	return result, nil
}

func (i impl) GetAttachmentFile(ctx context.Context, attachmentID string) (*dbmodels.CandidateAttachment, []byte, error) {
	rec, err := i.attachmentStore.GetByID(attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.NewNotFoundError("attachment not found")
	}
	body, err := filestorage.Instance.Get(ctx, rec.ObjectKey)
	if err != nil {
		log.WithError(err).Error("attachment download error")
		return nil, nil, models.NewExternalError("file storage is unavailable")
	}
	return rec, body, nil
}

func (i impl) DeleteAttachment(ctx context.Context, attachmentID string) error {
	rec, err := i.attachmentStore.GetByID(attachmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("attachment not found")
	}
	if err := i.attachmentStore.Delete(attachmentID); err != nil {
		return err
	}
	// metadata row is gone, a dangling object is acceptable
	if err := filestorage.Instance.Delete(ctx, rec.ObjectKey); err != nil {
		log.WithError(err).Error("attachment object delete error")
	}
	return nil
}

func (i impl) SetPrimaryCV(candidateID, attachmentID string) error {
	rec, err := i.attachmentStore.GetByID(attachmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("attachment not found")
	}
	if rec.CandidateID != candidateID {
		return models.NewValidationError("attachment_id", "attachment belongs to another candidate")
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := candidateattachmentstore.NewInstance(tx)
		if err := store.ClearPrimaryCV(candidateID); err != nil {
			return err
		}
		// a primary CV is always visible to the line manager
		return store.Update(attachmentID, map[string]interface{}{
			"is_primary_cv":              true,
			"is_visible_to_line_manager": true,
		})
	})
}

func (i impl) CreateApplication(candidateID string, data candidateapimodels.ApplicationData, actorID string) (id string, err error) {
	if _, err := i.getRec(candidateID); err != nil {
		return "", err
	}
	mprRec, err := i.mprStore.GetByID(data.MPRID)
	if err != nil {
		return "", err
	}
	if mprRec == nil {
		return "", models.NewNotFoundError("requisition not found")
	}
	existed, err := i.applicationStore.GetByPair(candidateID, data.MPRID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("candidate already applied to requisition (%v)", mprRec.MPRNumber)
	}
	rec := dbmodels.CandidateMPR{
		CandidateID:      candidateID,
		MPRID:            data.MPRID,
		ApplicationStage: models.StageApplied,
		ApplicationNotes: data.ApplicationNotes,
	}
	if actorID != "" {
		rec.UpdatedByID = &actorID
	}
	id, err = i.applicationStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("application save error")
		return "", errors.New("application save error")
	}
	return id, nil
}

func (i impl) ListApplications(candidateID string) ([]candidateapimodels.ApplicationView, error) {
	list, err := i.applicationStore.List(candidateID)
	if err != nil {
		log.WithError(err).Error("application list error")
		return nil, errors.New("application list error")
	}
	result := make([]candidateapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertApplication(rec))
	}
	return result, nil
}

func (i impl) ChangeApplicationStage(candidateID, applicationID string, req candidateapimodels.ChangeStageRequest, actorID string) error {
	rec, err := i.getApplicationRec(candidateID, applicationID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"application_stage": req.Stage,
		"recruiter_notes":   req.RecruiterNotes,
	}
	if actorID != "" {
		updMap["updated_by_id"] = actorID
	}
	return i.applicationStore.Update(rec.ID, updMap)
}

func (i impl) SetApplicationCV(candidateID, applicationID, attachmentID string) error {
	rec, err := i.getApplicationRec(candidateID, applicationID)
	if err != nil {
		return err
	}
	attachment, err := i.attachmentStore.GetByID(attachmentID)
	if err != nil {
		return err
	}
	if attachment == nil {
		return models.NewNotFoundError("attachment not found")
	}
	if attachment.CandidateID != candidateID {
		return models.NewValidationError("attachment_id", "attachment belongs to another candidate")
	}
	return i.applicationStore.Update(rec.ID, map[string]interface{}{"primary_cv_id": attachmentID})
}

// ApplySkillMatch recomputes the match of the candidate's combined skills
// against the requisition's required skills, full recompute on every call.
func (i impl) ApplySkillMatch(candidateID, applicationID string) (*candidateapimodels.ApplicationView, error) {
	rec, err := i.getApplicationRec(candidateID, applicationID)
	if err != nil {
		return nil, err
	}
	candidateRec, err := i.getRec(candidateID)
	if err != nil {
		return nil, err
	}
	mprRec, err := i.mprStore.GetByID(rec.MPRID)
	if err != nil {
		return nil, err
	}
	if mprRec == nil {
		return nil, models.NewNotFoundError("requisition not found")
	}
	candidateSkills := append([]string{}, candidateRec.ProfessionalSkills...)
	candidateSkills = append(candidateSkills, candidateRec.TechnicalSkills...)
	candidateSkills = append(candidateSkills, candidateRec.SoftSkills...)
	match := computeSkillMatch(mprRec.RequiredSkills, candidateSkills)
	if match != nil {
		updMap := map[string]interface{}{
			"skill_match_percentage": match.Percentage,
			"matched_skills_count":   match.Matched,
			"total_skills_count":     match.Total,
		}
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			if err := candidateapplicationstore.NewInstance(tx).Update(rec.ID, updMap); err != nil {
				return err
			}
			return candidatestore.NewInstance(tx).Update(candidateID, updMap)
		})
		if err != nil {
			return nil, err
		}
	}
	updated, err := i.applicationStore.GetByID(rec.ID)
	if err != nil {
		return nil, err
	}
	view := candidateapimodels.ConvertApplication(*updated)
	return &view, nil
}

func (i impl) ExportXls(filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error) {
	filter.Limit = 100
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("candidate list error")
		return nil, errors.New("candidate list error")
	}
	return xlsexport.Instance.ExportCandidateList(list)
}

func (i impl) getRec(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).Error("candidate lookup error")
		return nil, errors.New("candidate lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("candidate not found")
	}
	return rec, nil
}

func (i impl) getApplicationRec(candidateID, applicationID string) (*dbmodels.CandidateMPR, error) {
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		log.WithError(err).Error("application lookup error")
		return nil, errors.New("application lookup error")
	}
	if rec == nil || rec.CandidateID != candidateID {
		return nil, models.NewNotFoundError("application not found")
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

func candidateRec(data candidateapimodels.CandidateData) dbmodels.Candidate {
	return dbmodels.Candidate{
		Email:               data.Email,
		Name:                data.Name,
		Phone:               data.Phone,
		AlternativePhone:    data.AlternativePhone,
		Location:            data.Location,
		Address:             data.Address,
		DateOfBirth:         data.DateOfBirth,
		Nationality:         data.Nationality,
		CurrentPosition:     data.CurrentPosition,
		CurrentCompany:      data.CurrentCompany,
		ProfessionalSummary: data.ProfessionalSummary,
		ExperienceYears:     data.ExperienceYears,
		ProfessionalSkills:  data.ProfessionalSkills,
		TechnicalSkills:     data.TechnicalSkills,
		SoftSkills:          data.SoftSkills,
		Languages:           data.Languages,
		Certifications:      data.Certifications,
		LinkedinURL:         data.LinkedinURL,
		PortfolioURL:        data.PortfolioURL,
		GithubURL:           data.GithubURL,
		PersonalWebsite:     data.PersonalWebsite,
		SalaryExpectation:   data.SalaryExpectation,
		SalaryCurrency:      data.SalaryCurrency,
		AvailabilityDate:    data.AvailabilityDate,
		NoticePeriodDays:    data.NoticePeriodDays,
		InternalNotes:       data.InternalNotes,
	}
}
