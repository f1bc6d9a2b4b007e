package models

type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

type EmailType string

const (
	EmailTypeApplication   EmailType = "application"
	EmailTypeInterview     EmailType = "interview"
	EmailTypeOffer         EmailType = "offer"
	EmailTypeRejection     EmailType = "rejection"
	EmailTypeFollowUp      EmailType = "follow_up"
	EmailTypeOther         EmailType = "other"
)

var emailTypeSet = map[EmailType]struct{}{
	EmailTypeApplication: {},
	EmailTypeInterview:   {},
	EmailTypeOffer:       {},
	EmailTypeRejection:   {},
	EmailTypeFollowUp:    {},
	EmailTypeOther:       {},
}

func (t EmailType) IsValid() bool {
	_, ok := emailTypeSet[t]
	return ok
}
