package emailapimodels

import (
	"time"

	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type AccountData struct {
	Name         string `json:"name"`
	EmailAddress string `json:"email_address"`
	TenantID     string `json:"tenant_id"`
	ClientID     string `json:"client_id"`
	// Write-only, never echoed back in views.
	ClientSecret string `json:"client_secret"`

	IsActive            bool `json:"is_active"`
	IsDefault           bool `json:"is_default"`
	SyncEnabled         bool `json:"sync_enabled"`
	SyncIntervalMinutes int  `json:"sync_interval_minutes"`
}

func (d AccountData) Validate() error {
	if d.Name == "" {
		return models.NewValidationError("name", "account name is required")
	}
	if d.EmailAddress == "" {
		return models.NewValidationError("email_address", "email address is required")
	}
	if d.TenantID == "" || d.ClientID == "" {
		return models.NewValidationError("tenant_id", "tenant and client ids are required")
	}
	if d.SyncIntervalMinutes < 0 {
		return models.NewValidationError("sync_interval_minutes", "must not be negative")
	}
	return nil
}

type AccountView struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	EmailAddress        string     `json:"email_address"`
	TenantID            string     `json:"tenant_id"`
	ClientID            string     `json:"client_id"`
	IsActive            bool       `json:"is_active"`
	IsDefault           bool       `json:"is_default"`
	SyncEnabled         bool       `json:"sync_enabled"`
	SyncIntervalMinutes int        `json:"sync_interval_minutes"`
	LastSyncedAt        *time.Time `json:"last_synced_at"`
}

func ConvertAccount(rec dbmodels.EmailAccount) AccountView {
	return AccountView{
		ID:                  rec.ID,
		Name:                rec.Name,
		EmailAddress:        rec.EmailAddress,
		TenantID:            rec.TenantID,
		ClientID:            rec.ClientID,
		IsActive:            rec.IsActive,
		IsDefault:           rec.IsDefault,
		SyncEnabled:         rec.SyncEnabled,
		SyncIntervalMinutes: rec.SyncIntervalMinutes,
		LastSyncedAt:        rec.LastSyncedAt,
	}
}

type MessageFilter struct {
	apimodels.Pagination
	AccountID string `json:"account_id"`
	Sender    string `json:"sender"`
	Search    string `json:"search"` // substring match on subject
	Folder    string `json:"folder"`
}

type MessageView struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	Subject        string    `json:"subject"`
	Sender         string    `json:"sender"`
	Recipients     string    `json:"recipients"`
	BodyPreview    string    `json:"body_preview"`
	Folder         string    `json:"folder"`
	ReceivedAt     time.Time `json:"received_at"`
	IsRead         bool      `json:"is_read"`
	HasAttachments bool      `json:"has_attachments"`
}

func ConvertMessage(rec dbmodels.EmailMessage) MessageView {
	return MessageView{
		ID:             rec.ID,
		AccountID:      rec.AccountID,
		Subject:        rec.Subject,
		Sender:         rec.Sender,
		Recipients:     rec.Recipients,
		BodyPreview:    rec.BodyPreview,
		Folder:         rec.Folder,
		ReceivedAt:     rec.ReceivedAt,
		IsRead:         rec.IsRead,
		HasAttachments: rec.HasAttachments,
	}
}

type LinkCandidateRequest struct {
	CandidateID      string           `json:"candidate_id"`
	EmailType        models.EmailType `json:"email_type"`
	IsInbound        bool             `json:"is_inbound"`
	RequiresResponse bool             `json:"requires_response"`
}

func (r LinkCandidateRequest) Validate() error {
	if r.CandidateID == "" {
		return models.NewValidationError("candidate_id", "candidate id is required")
	}
	if !r.EmailType.IsValid() {
		return models.NewValidationErrorf("email_type", "unknown email type (%v)", r.EmailType)
	}
	return nil
}

type SyncLogView struct {
	ID              string            `json:"id"`
	StartedAt       time.Time         `json:"started_at"`
	FinishedAt      *time.Time        `json:"finished_at"`
	Status          models.SyncStatus `json:"status"`
	MessagesFetched int               `json:"messages_fetched"`
	MessagesCreated int               `json:"messages_created"`
	MessagesUpdated int               `json:"messages_updated"`
	ErrorText       string            `json:"error_text"`
}

func ConvertSyncLog(rec dbmodels.EmailSyncLog) SyncLogView {
	return SyncLogView{
		ID:              rec.ID,
		StartedAt:       rec.StartedAt,
		FinishedAt:      rec.FinishedAt,
		Status:          rec.Status,
		MessagesFetched: rec.MessagesFetched,
		MessagesCreated: rec.MessagesCreated,
		MessagesUpdated: rec.MessagesUpdated,
		ErrorText:       rec.ErrorText,
	}
}
