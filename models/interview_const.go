package models

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusConfirmed   InterviewStatus = "confirmed"
	InterviewStatusInProgress  InterviewStatus = "in_progress"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
	InterviewStatusNoShow      InterviewStatus = "no_show"
)

var interviewStatusSet = map[InterviewStatus]struct{}{
	InterviewStatusScheduled:   {},
	InterviewStatusConfirmed:   {},
	InterviewStatusInProgress:  {},
	InterviewStatusCompleted:   {},
	InterviewStatusCancelled:   {},
	InterviewStatusRescheduled: {},
	InterviewStatusNoShow:      {},
}

func (s InterviewStatus) IsValid() bool {
	_, exist := interviewStatusSet[s]
	return exist
}

// CanBeRescheduled and CanBeCancelled guard the named actions,
// not plain status updates.
func (s InterviewStatus) CanBeRescheduled() bool {
	return s == InterviewStatusScheduled || s == InterviewStatusConfirmed || s == InterviewStatusRescheduled
}

func (s InterviewStatus) CanBeCancelled() bool {
	return s == InterviewStatusScheduled || s == InterviewStatusConfirmed || s == InterviewStatusRescheduled
}

type ParticipantRole string

const (
	RolePrimaryInterviewer   ParticipantRole = "primary_interviewer"
	RoleSecondaryInterviewer ParticipantRole = "secondary_interviewer"
	RoleObserver             ParticipantRole = "observer"
	RoleTechnicalInterviewer ParticipantRole = "technical_interviewer"
	RoleHRInterviewer        ParticipantRole = "hr_interviewer"
	RoleHiringManager        ParticipantRole = "hiring_manager"
)

func (r ParticipantRole) IsValid() bool {
	switch r {
	case RolePrimaryInterviewer, RoleSecondaryInterviewer, RoleObserver,
		RoleTechnicalInterviewer, RoleHRInterviewer, RoleHiringManager:
		return true
	}
	return false
}

type Recommendation string

const (
	RecommendationStrongHire   Recommendation = "strong_hire"
	RecommendationHire         Recommendation = "hire"
	RecommendationMaybe        Recommendation = "maybe"
	RecommendationNoHire       Recommendation = "no_hire"
	RecommendationStrongNoHire Recommendation = "strong_no_hire"
)

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationStrongHire, RecommendationHire, RecommendationMaybe,
		RecommendationNoHire, RecommendationStrongNoHire:
		return true
	}
	return false
}

type RescheduleReason string

const (
	RescheduleCandidateRequest       RescheduleReason = "candidate_request"
	RescheduleInterviewerUnavailable RescheduleReason = "interviewer_unavailable"
	RescheduleTechnicalIssues        RescheduleReason = "technical_issues"
	RescheduleEmergency              RescheduleReason = "emergency"
	RescheduleSchedulingConflict     RescheduleReason = "scheduling_conflict"
	RescheduleOther                  RescheduleReason = "other"
)

func (r RescheduleReason) IsValid() bool {
	switch r {
	case RescheduleCandidateRequest, RescheduleInterviewerUnavailable,
		RescheduleTechnicalIssues, RescheduleEmergency,
		RescheduleSchedulingConflict, RescheduleOther:
		return true
	}
	return false
}

type RescheduleInitiator string

const (
	InitiatedByCandidate   RescheduleInitiator = "candidate"
	InitiatedByRecruiter   RescheduleInitiator = "recruiter"
	InitiatedByInterviewer RescheduleInitiator = "interviewer"
	InitiatedByHR          RescheduleInitiator = "hr"
	InitiatedBySystem      RescheduleInitiator = "system"
)

func (r RescheduleInitiator) IsValid() bool {
	switch r {
	case InitiatedByCandidate, InitiatedByRecruiter, InitiatedByInterviewer,
		InitiatedByHR, InitiatedBySystem:
		return true
	}
	return false
}
