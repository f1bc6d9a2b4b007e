package models

type HiringStatus string

const (
	HiringStatusApplied            HiringStatus = "applied"
	HiringStatusScreening          HiringStatus = "screening"
	HiringStatusPortfolioReview    HiringStatus = "portfolio_review"
	HiringStatusPhoneInterview     HiringStatus = "phone_interview"
	HiringStatusTechnicalInterview HiringStatus = "technical_interview"
	HiringStatusFinalInterview     HiringStatus = "final_interview"
	HiringStatusReferenceCheck     HiringStatus = "reference_check"
	HiringStatusOfferPending       HiringStatus = "offer_pending"
	HiringStatusOfferAccepted      HiringStatus = "offer_accepted"
	HiringStatusOfferDeclined      HiringStatus = "offer_declined"
	HiringStatusRejected           HiringStatus = "rejected"
	HiringStatusOnHold             HiringStatus = "on_hold"
	HiringStatusWithdrawn          HiringStatus = "withdrawn"
)

var hiringStatusHumanName = map[HiringStatus]string{
	HiringStatusApplied:            "Applied",
	HiringStatusScreening:          "Initial Screening",
	HiringStatusPortfolioReview:    "Portfolio Review",
	HiringStatusPhoneInterview:     "Phone Interview",
	HiringStatusTechnicalInterview: "Technical Interview",
	HiringStatusFinalInterview:     "Final Interview",
	HiringStatusReferenceCheck:     "Reference Check",
	HiringStatusOfferPending:       "Offer Pending",
	HiringStatusOfferAccepted:      "Offer Accepted",
	HiringStatusOfferDeclined:      "Offer Declined",
	HiringStatusRejected:           "Rejected",
	HiringStatusOnHold:             "On Hold",
	HiringStatusWithdrawn:          "Withdrawn",
}

// IsValid reports membership in the declared set.
// Any member may be set from any other, there is no transition graph.
func (s HiringStatus) IsValid() bool {
	_, exist := hiringStatusHumanName[s]
	return exist
}

func (s HiringStatus) ToHuman() string {
	if human, exist := hiringStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func HiringStatusList() []HiringStatus {
	return []HiringStatus{
		HiringStatusApplied,
		HiringStatusScreening,
		HiringStatusPortfolioReview,
		HiringStatusPhoneInterview,
		HiringStatusTechnicalInterview,
		HiringStatusFinalInterview,
		HiringStatusReferenceCheck,
		HiringStatusOfferPending,
		HiringStatusOfferAccepted,
		HiringStatusOfferDeclined,
		HiringStatusRejected,
		HiringStatusOnHold,
		HiringStatusWithdrawn,
	}
}

type ApplicationStage string

const (
	StageApplied            ApplicationStage = "applied"
	StageUnderReview        ApplicationStage = "under_review"
	StageShortlisted        ApplicationStage = "shortlisted"
	StageInterviewScheduled ApplicationStage = "interview_scheduled"
	StageInterviewed        ApplicationStage = "interviewed"
	StageFinalReview        ApplicationStage = "final_review"
	StageOfferMade          ApplicationStage = "offer_made"
	StageHired              ApplicationStage = "hired"
	StageRejected           ApplicationStage = "rejected"
	StageWithdrawn          ApplicationStage = "withdrawn"
)

var applicationStageSet = map[ApplicationStage]struct{}{
	StageApplied:            {},
	StageUnderReview:        {},
	StageShortlisted:        {},
	StageInterviewScheduled: {},
	StageInterviewed:        {},
	StageFinalReview:        {},
	StageOfferMade:          {},
	StageHired:              {},
	StageRejected:           {},
	StageWithdrawn:          {},
}

func (s ApplicationStage) IsValid() bool {
	_, exist := applicationStageSet[s]
	return exist
}

type AttachmentFileType string

const (
	FileTypeCV          AttachmentFileType = "cv"
	FileTypeCoverLetter AttachmentFileType = "cover_letter"
	FileTypePortfolio   AttachmentFileType = "portfolio"
	FileTypeCertificate AttachmentFileType = "certificate"
	FileTypeTranscript  AttachmentFileType = "transcript"
	FileTypePhoto       AttachmentFileType = "photo"
	FileTypeOther       AttachmentFileType = "other"
)

func (t AttachmentFileType) IsValid() bool {
	switch t {
	case FileTypeCV, FileTypeCoverLetter, FileTypePortfolio, FileTypeCertificate,
		FileTypeTranscript, FileTypePhoto, FileTypeOther:
		return true
	}
	return false
}
