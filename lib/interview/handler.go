package interviewhandler

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruitment-backend/db"
	candidatestore "recruitment-backend/lib/candidate/store"
	interviewevaluationstore "recruitment-backend/lib/interview/evaluation-store"
	interviewparticipantstore "recruitment-backend/lib/interview/participant-store"
	interviewreschedulestore "recruitment-backend/lib/interview/reschedule-store"
	interviewroundstore "recruitment-backend/lib/interview/round-store"
	interviewstore "recruitment-backend/lib/interview/store"
	usersstore "recruitment-backend/lib/users/store"
	"recruitment-backend/models"
	interviewapimodels "recruitment-backend/models/api/interview"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	List(filter interviewapimodels.InterviewFilter) ([]interviewapimodels.InterviewView, int64, error)
	Create(data interviewapimodels.InterviewData, actorID string) (id string, err error)
	GetByID(id string) (*interviewapimodels.InterviewView, error)
	Update(id string, data interviewapimodels.InterviewData) error
	Delete(id string) error

	ChangeStatus(id string, req interviewapimodels.StatusUpdateRequest) error
	Reschedule(id string, req interviewapimodels.RescheduleRequest, actorID string) error
	Cancel(id string, req interviewapimodels.CancelRequest) error
	ListReschedules(id string) ([]interviewapimodels.RescheduleView, error)

	AddParticipant(interviewID string, data interviewapimodels.ParticipantData) (id string, err error)
	RemoveParticipant(interviewID, participantID string) error
	SetAttended(interviewID, participantID string, req interviewapimodels.AttendedRequest) error
	SubmitFeedback(interviewID, participantID string, req interviewapimodels.FeedbackRequest) error
	GetFeedbackSummary(interviewID string) (*interviewapimodels.FeedbackSummary, error)

	ListRounds(activeOnly bool) ([]interviewapimodels.RoundView, error)
	CreateRound(data interviewapimodels.RoundData) (id string, err error)
	UpdateRound(id string, data interviewapimodels.RoundData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            interviewstore.NewInstance(db.DB),
		roundStore:       interviewroundstore.NewInstance(db.DB),
		participantStore: interviewparticipantstore.NewInstance(db.DB),
		evaluationStore:  interviewevaluationstore.NewInstance(db.DB),
		rescheduleStore:  interviewreschedulestore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            interviewstore.Provider
	roundStore       interviewroundstore.Provider
	participantStore interviewparticipantstore.Provider
	evaluationStore  interviewevaluationstore.Provider
	rescheduleStore  interviewreschedulestore.Provider
	candidateStore   candidatestore.Provider
	userStore        usersstore.Provider
}

func (i impl) List(filter interviewapimodels.InterviewFilter) ([]interviewapimodels.InterviewView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("interview list error")
		return nil, 0, errors.New("interview list error")
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Create(data interviewapimodels.InterviewData, actorID string) (id string, err error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", models.NewNotFoundError("candidate not found")
	}
	round, err := i.roundStore.GetByID(data.RoundID)
	if err != nil {
		return "", err
	}
	if round == nil {
		return "", models.NewNotFoundError("interview round not found")
	}
	rec := dbmodels.Interview{
		CandidateID:     data.CandidateID,
		MPRID:           data.MPRID,
		RoundID:         data.RoundID,
		Title:           data.Title,
		ScheduledDate:   data.ScheduledDate,
		DurationMinutes: data.DurationMinutes,
		Location:        data.Location,
		MeetingLink:     data.MeetingLink,
		Status:          models.InterviewStatusScheduled,
	}
	if rec.Title == "" {
		rec.Title = round.Name
	}
	if rec.DurationMinutes == 0 {
		rec.DurationMinutes = round.TypicalDurationMinutes
	}
	if actorID != "" {
		rec.CreatedByID = &actorID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("interview creation error")
		return "", errors.New("interview creation error")
	}
	log.WithField("rec_id", id).Info("interview scheduled")
	return id, nil
}

func (i impl) GetByID(id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	view := interviewapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) Update(id string, data interviewapimodels.InterviewData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == models.InterviewStatusCompleted || rec.Status == models.InterviewStatusCancelled {
		return models.NewInvalidStateError("interview in status (%v) is read-only", rec.Status)
	}
	return i.store.Update(id, map[string]interface{}{
		"title":            data.Title,
		"scheduled_date":   data.ScheduledDate,
		"duration_minutes": data.DurationMinutes,
		"location":         data.Location,
		"meeting_link":     data.MeetingLink,
	})
}

func (i impl) Delete(id string) error {
	if _, err := i.getRec(id); err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) ChangeStatus(id string, req interviewapimodels.StatusUpdateRequest) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{"status": req.Status}
	if req.ActualStartTime != nil {
		updMap["actual_start_time"] = req.ActualStartTime
	}
	if req.ActualEndTime != nil {
		updMap["actual_end_time"] = req.ActualEndTime
	}
	if req.Status == models.InterviewStatusCompleted {
		start := rec.ActualStartTime
		end := rec.ActualEndTime
		if req.ActualStartTime != nil {
			start = req.ActualStartTime
		}
		if req.ActualEndTime != nil {
			end = req.ActualEndTime
		}
		if err := validateCompletion(start, end); err != nil {
			return err
		}
	}
	return i.store.Update(id, updMap)
}

func (i impl) Reschedule(id string, req interviewapimodels.RescheduleRequest, actorID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.CanBeRescheduled() {
		return models.NewInvalidStateError("interview in status (%v) cannot be rescheduled", rec.Status)
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := interviewstore.NewInstance(tx)
		rescheduleStore := interviewreschedulestore.NewInstance(tx)

		history := dbmodels.InterviewReschedule{
			InterviewID:      id,
			PreviousDate:     rec.ScheduledDate,
			NewDate:          req.NewDate,
			PreviousLocation: rec.Location,
			NewLocation:      req.NewLocation,
			Reason:           req.Reason,
			ReasonDetails:    req.ReasonDetails,
			InitiatedBy:      req.InitiatedBy,
		}
		if actorID != "" {
			history.InitiatedByUserID = &actorID
		}
		if _, err := rescheduleStore.Create(history); err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"scheduled_date": req.NewDate,
			"status":         models.InterviewStatusRescheduled,
		}
		if req.NewLocation != "" {
			updMap["location"] = req.NewLocation
		}
		return store.Update(id, updMap)
	})
}

func (i impl) Cancel(id string, req interviewapimodels.CancelRequest) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.CanBeCancelled() {
		return models.NewInvalidStateError("interview in status (%v) cannot be cancelled", rec.Status)
	}
	return i.store.Update(id, map[string]interface{}{
		"status":            models.InterviewStatusCancelled,
		"detailed_feedback": req.Reason,
	})
}

func (i impl) ListReschedules(id string) ([]interviewapimodels.RescheduleView, error) {
	if _, err := i.getRec(id); err != nil {
		return nil, err
	}
	list, err := i.rescheduleStore.List(id)
	if err != nil {
		log.WithError(err).Error("reschedule list error")
		return nil, errors.New("reschedule list error")
	}
	result := make([]interviewapimodels.RescheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.ConvertReschedule(rec))
	}
	return result, nil
}

func (i impl) AddParticipant(interviewID string, data interviewapimodels.ParticipantData) (id string, err error) {
	if _, err := i.getRec(interviewID); err != nil {
		return "", err
	}
	user, err := i.userStore.GetByID(data.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewNotFoundError("user not found")
	}
	existed, err := i.participantStore.GetByUser(interviewID, data.UserID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("user (%v) already participates in this interview", user.GetFullName())
	}
	id, err = i.participantStore.Create(dbmodels.InterviewParticipant{
		InterviewID: interviewID,
		UserID:      data.UserID,
		Role:        data.Role,
	})
	if err != nil {
		log.WithError(err).Error("participant save error")
		return "", errors.New("participant save error")
	}
	return id, nil
}

func (i impl) RemoveParticipant(interviewID, participantID string) error {
	if _, err := i.getParticipantRec(interviewID, participantID); err != nil {
		return err
	}
	return i.participantStore.Delete(participantID)
}

func (i impl) SetAttended(interviewID, participantID string, req interviewapimodels.AttendedRequest) error {
	if _, err := i.getParticipantRec(interviewID, participantID); err != nil {
		return err
	}
	return i.participantStore.Update(participantID, map[string]interface{}{
		"attended":  req.Attended,
		"joined_at": req.JoinedAt,
		"left_at":   req.LeftAt,
	})
}

// SubmitFeedback stores one participant's scores and recomputes the
// interview overall score in the same transaction.
func (i impl) SubmitFeedback(interviewID, participantID string, req interviewapimodels.FeedbackRequest) error {
	if _, err := i.getParticipantRec(interviewID, participantID); err != nil {
		return err
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := interviewstore.NewInstance(tx)
		participantStore := interviewparticipantstore.NewInstance(tx)
		evaluationStore := interviewevaluationstore.NewInstance(tx)

		updMap := map[string]interface{}{
			"individual_feedback": req.Feedback,
		}
		if req.Score != nil {
			updMap["individual_score"] = req.Score
		}
		if req.Recommendation != "" {
			updMap["individual_recommendation"] = req.Recommendation
		}
		if err := participantStore.Update(participantID, updMap); err != nil {
			return err
		}
		for _, criteria := range req.CriteriaScores {
			evaluation := dbmodels.InterviewCriteriaEvaluation{
				InterviewID:   interviewID,
				ParticipantID: &participantID,
				CriteriaName:  criteria.CriteriaName,
				Score:         criteria.Score,
				Weight:        criteria.Weight,
				Comments:      criteria.Comments,
			}
			if err := evaluationStore.Upsert(evaluation); err != nil {
				return err
			}
		}
		participants, err := participantStore.List(interviewID)
		if err != nil {
			return err
		}
		return store.Update(interviewID, map[string]interface{}{
			"overall_score": participantsOverallScore(participants),
		})
	})
}

func (i impl) GetFeedbackSummary(interviewID string) (*interviewapimodels.FeedbackSummary, error) {
	rec, err := i.getRec(interviewID)
	if err != nil {
		return nil, err
	}
	evaluations, err := i.evaluationStore.List(interviewID)
	if err != nil {
		log.WithError(err).Error("evaluation list error")
		return nil, errors.New("evaluation list error")
	}
	summary := interviewapimodels.FeedbackSummary{
		InterviewID:    interviewID,
		OverallScore:   rec.OverallScore,
		Criteria:       consolidateCriteria(evaluations),
		Recommendation: rec.Recommendation,
	}
	for _, participant := range rec.Participants {
		summary.Participants = append(summary.Participants, interviewapimodels.ConvertParticipant(participant))
	}
	return &summary, nil
}

func (i impl) ListRounds(activeOnly bool) ([]interviewapimodels.RoundView, error) {
	list, err := i.roundStore.List(activeOnly)
	if err != nil {
		log.WithError(err).Error("round list error")
		return nil, errors.New("round list error")
	}
	result := make([]interviewapimodels.RoundView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.ConvertRound(rec))
	}
	return result, nil
}

func (i impl) CreateRound(data interviewapimodels.RoundData) (id string, err error) {
	existed, err := i.roundStore.GetByName(data.Name)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("round with name (%v) already exists", data.Name)
	}
	id, err = i.roundStore.Create(dbmodels.InterviewRound{
		Name:                   data.Name,
		Description:            data.Description,
		TypicalDurationMinutes: data.TypicalDurationMinutes,
		SequenceOrder:          data.SequenceOrder,
		MaxScore:               data.MaxScore,
		EvaluationCriteria:     data.EvaluationCriteria,
		IsActive:               data.IsActive,
	})
	if err != nil {
		log.WithError(err).Error("round creation error")
		return "", errors.New("round creation error")
	}
	return id, nil
}

func (i impl) UpdateRound(id string, data interviewapimodels.RoundData) error {
	rec, err := i.roundStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("interview round not found")
	}
	if data.Name != rec.Name {
		existed, err := i.roundStore.GetByName(data.Name)
		if err != nil {
			return err
		}
		if existed != nil {
			return models.NewDuplicateError("round with name (%v) already exists", data.Name)
		}
	}
	return i.roundStore.Update(id, map[string]interface{}{
		"name":                     data.Name,
		"description":              data.Description,
		"typical_duration_minutes": data.TypicalDurationMinutes,
		"sequence_order":           data.SequenceOrder,
		"max_score":                data.MaxScore,
		"evaluation_criteria":      pq.StringArray(data.EvaluationCriteria),
		"is_active":                data.IsActive,
	})
}

func (i impl) getRec(id string) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).Error("interview lookup error")
		return nil, errors.New("interview lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("interview not found")
	}
	return rec, nil
}

func (i impl) getParticipantRec(interviewID, participantID string) (*dbmodels.InterviewParticipant, error) {
	rec, err := i.participantStore.GetByID(participantID)
	if err != nil {
		log.WithError(err).Error("participant lookup error")
		return nil, errors.New("participant lookup error")
	}
	if rec == nil || rec.InterviewID != interviewID {
		return nil, models.NewNotFoundError("participant not found")
	}
	return rec, nil
}
