package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// EmailAccount is a mailbox synchronized through the Graph API.
// ClientSecret is write-only at the API surface.
type EmailAccount struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);uniqueIndex"`
	EmailAddress string `gorm:"type:varchar(255)"`

	TenantID     string `gorm:"type:varchar(100)"`
	ClientID     string `gorm:"type:varchar(100)"`
	ClientSecret string `gorm:"type:varchar(255)" json:"-"`

	IsActive  bool `gorm:"default:true"`
	IsDefault bool `gorm:"index"`

	SyncEnabled         bool `gorm:"default:true"`
	SyncIntervalMinutes int  `gorm:"default:15"`
	LastSyncedAt        *time.Time
}

type EmailMessage struct {
	BaseModel
	AccountID string        `gorm:"type:varchar(36);uniqueIndex:idx_account_message"`
	Account   *EmailAccount `gorm:"foreignKey:AccountID"`

	// Graph message id, unique within an account so re-syncs upsert.
	MessageID string `gorm:"type:varchar(255);uniqueIndex:idx_account_message"`

	Subject        string `gorm:"type:varchar(500)"`
	Sender         string `gorm:"type:varchar(255);index"`
	Recipients     string
	BodyPreview    string
	Folder         string `gorm:"type:varchar(100)"`
	ReceivedAt     time.Time `gorm:"index"`
	IsRead         bool
	HasAttachments bool

	Attachments []EmailAttachment `gorm:"foreignKey:EmailMessageID"`
}

type EmailAttachment struct {
	BaseModel
	EmailMessageID string        `gorm:"type:varchar(36);index"`
	Message        *EmailMessage `gorm:"foreignKey:EmailMessageID"`

	Name        string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
	ObjectKey   string `gorm:"type:varchar(500)"`
}

type EmailSyncLog struct {
	BaseModel
	AccountID string        `gorm:"type:varchar(36);index"`
	Account   *EmailAccount `gorm:"foreignKey:AccountID"`

	StartedAt  time.Time
	FinishedAt *time.Time
	Status     models.SyncStatus `gorm:"type:varchar(20)"`

	MessagesFetched int
	MessagesCreated int
	MessagesUpdated int
	ErrorText       string
}

// CandidateEmailLink ties a synchronized message to a candidate.
type CandidateEmailLink struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_message"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`

	EmailMessageID string        `gorm:"type:varchar(36);uniqueIndex:idx_candidate_message"`
	EmailMessage   *EmailMessage `gorm:"foreignKey:EmailMessageID"`

	EmailType        models.EmailType `gorm:"type:varchar(30)"`
	IsInbound        bool
	RequiresResponse bool
	IsResponded      bool

	LinkedByID *string  `gorm:"type:varchar(36)"`
	LinkedBy   *AppUser `gorm:"foreignKey:LinkedByID"`
}
