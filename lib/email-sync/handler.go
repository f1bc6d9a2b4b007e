package emailsynchandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/config"
	"recruitment-backend/db"
	candidatestore "recruitment-backend/lib/candidate/store"
	emailaccountstore "recruitment-backend/lib/email-sync/account-store"
	graphclient "recruitment-backend/lib/email-sync/client"
	emaillinkstore "recruitment-backend/lib/email-sync/link-store"
	emailmessagestore "recruitment-backend/lib/email-sync/message-store"
	emailsynclogstore "recruitment-backend/lib/email-sync/synclog-store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	emailapimodels "recruitment-backend/models/api/email"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ListAccounts() ([]emailapimodels.AccountView, error)
	CreateAccount(data emailapimodels.AccountData) (id string, err error)
	UpdateAccount(id string, data emailapimodels.AccountData) error
	DeleteAccount(id string) error

	SyncAccount(ctx context.Context, id string) (*emailapimodels.SyncLogView, error)
	SyncAll(ctx context.Context)
	ListSyncLogs(accountID string) ([]emailapimodels.SyncLogView, error)

	ListMessages(filter emailapimodels.MessageFilter) ([]emailapimodels.MessageView, int64, error)
	GetMessageByID(id string) (*emailapimodels.MessageView, error)
	LinkCandidate(messageID string, req emailapimodels.LinkCandidateRequest, actorID string) (linkID string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"graph client", graphclient.Instance,
	)
	Instance = impl{
		accountStore:   emailaccountstore.NewInstance(db.DB),
		messageStore:   emailmessagestore.NewInstance(db.DB),
		syncLogStore:   emailsynclogstore.NewInstance(db.DB),
		linkStore:      emaillinkstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	accountStore   emailaccountstore.Provider
	messageStore   emailmessagestore.Provider
	syncLogStore   emailsynclogstore.Provider
	linkStore      emaillinkstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) ListAccounts() ([]emailapimodels.AccountView, error) {
	list, err := i.accountStore.List()
	if err != nil {
		log.WithError(err).Error("email account list error")
		return nil, errors.New("email account list error")
	}
	result := make([]emailapimodels.AccountView, 0, len(list))
	for _, rec := range list {
		result = append(result, emailapimodels.ConvertAccount(rec))
	}
	return result, nil
}

func (i impl) CreateAccount(data emailapimodels.AccountData) (id string, err error) {
	existed, err := i.accountStore.GetByName(data.Name)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("email account with name (%v) already exists", data.Name)
	}
	if data.IsDefault {
		if err := i.accountStore.ClearDefault(); err != nil {
			return "", err
		}
	}
	rec := dbmodels.EmailAccount{
		Name:                data.Name,
		EmailAddress:        data.EmailAddress,
		TenantID:            data.TenantID,
		ClientID:            data.ClientID,
		ClientSecret:        data.ClientSecret,
		IsActive:            data.IsActive,
		IsDefault:           data.IsDefault,
		SyncEnabled:         data.SyncEnabled,
		SyncIntervalMinutes: data.SyncIntervalMinutes,
	}
	if rec.SyncIntervalMinutes == 0 {
		rec.SyncIntervalMinutes = 15
	}
	id, err = i.accountStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("email account creation error")
		return "", errors.New("email account creation error")
	}
	log.WithField("rec_id", id).Info("email account created")
	return id, nil
}

func (i impl) UpdateAccount(id string, data emailapimodels.AccountData) error {
	rec, err := i.getAccountRec(id)
	if err != nil {
		return err
	}
	if data.Name != rec.Name {
		existed, err := i.accountStore.GetByName(data.Name)
		if err != nil {
			return err
		}
		if existed != nil {
			return models.NewDuplicateError("email account with name (%v) already exists", data.Name)
		}
	}
	if data.IsDefault && !rec.IsDefault {
		if err := i.accountStore.ClearDefault(); err != nil {
			return err
		}
	}
	updMap := map[string]interface{}{
		"name":                  data.Name,
		"email_address":         data.EmailAddress,
		"tenant_id":             data.TenantID,
		"client_id":             data.ClientID,
		"is_active":             data.IsActive,
		"is_default":            data.IsDefault,
		"sync_enabled":          data.SyncEnabled,
		"sync_interval_minutes": data.SyncIntervalMinutes,
	}
	// an empty secret keeps the stored one
	if data.ClientSecret != "" {
		updMap["client_secret"] = data.ClientSecret
	}
	return i.accountStore.Update(id, updMap)
}

func (i impl) DeleteAccount(id string) error {
	if _, err := i.getAccountRec(id); err != nil {
		return err
	}
	return i.accountStore.Delete(id)
}

// SyncAccount pulls the mailbox through the Graph API and upserts the
// messages. Every run leaves a sync log row regardless of outcome.
func (i impl) SyncAccount(ctx context.Context, id string) (*emailapimodels.SyncLogView, error) {
	rec, err := i.getAccountRec(id)
	if err != nil {
		return nil, err
	}
	if !rec.IsActive {
		return nil, models.NewInvalidStateError("email account is inactive")
	}
	startedAt := time.Now()
	logID, err := i.syncLogStore.Create(dbmodels.EmailSyncLog{
		AccountID: rec.ID,
		StartedAt: startedAt,
		Status:    models.SyncStatusRunning,
	})
	if err != nil {
		log.WithError(err).Error("sync log creation error")
		return nil, errors.New("sync log creation error")
	}
	fetched, created, updated, syncErr := i.runSync(ctx, rec)

	now := time.Now()
	updMap := map[string]interface{}{
		"finished_at":      now,
		"messages_fetched": fetched,
		"messages_created": created,
		"messages_updated": updated,
	}
	status := models.SyncStatusSuccess
	if syncErr != nil {
		status = models.SyncStatusFailed
		if fetched > 0 {
			status = models.SyncStatusPartial
		}
		updMap["error_text"] = syncErr.Error()
	}
	updMap["status"] = status
	if err := i.syncLogStore.Update(logID, updMap); err != nil {
		log.WithError(err).Error("sync log update error")
	}
	if syncErr == nil {
		if err := i.accountStore.Update(rec.ID, map[string]interface{}{"last_synced_at": now}); err != nil {
			log.WithError(err).Error("account sync stamp update error")
		}
	}
	view := emailapimodels.SyncLogView{
		ID:              logID,
		StartedAt:       startedAt,
		FinishedAt:      &now,
		Status:          status,
		MessagesFetched: fetched,
		MessagesCreated: created,
		MessagesUpdated: updated,
	}
	if syncErr != nil {
		view.ErrorText = syncErr.Error()
		return &view, models.NewExternalError("mailbox synchronization failed: %v", syncErr)
	}
	return &view, nil
}

func (i impl) runSync(ctx context.Context, rec *dbmodels.EmailAccount) (fetched, created, updated int, err error) {
	token, err := graphclient.Instance.RequestToken(ctx, rec.TenantID, rec.ClientID, rec.ClientSecret)
	if err != nil {
		return 0, 0, 0, err
	}
	messages, err := graphclient.Instance.ListMessages(ctx, token.AccessToken, rec.EmailAddress, config.Conf.Graph.PageSize)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, message := range messages {
		fetched++
		receivedAt, parseErr := time.Parse(time.RFC3339, message.ReceivedDateTime)
		if parseErr != nil {
			receivedAt = time.Now()
		}
		recipients := ""
		for idx, recipient := range message.ToRecipients {
			if idx > 0 {
				recipients += ", "
			}
			recipients += recipient.EmailAddress.Address
		}
		isNew, upsertErr := i.messageStore.Upsert(dbmodels.EmailMessage{
			AccountID:      rec.ID,
			MessageID:      message.ID,
			Subject:        message.Subject,
			Sender:         message.From.EmailAddress.Address,
			Recipients:     recipients,
			BodyPreview:    message.BodyPreview,
			Folder:         message.ParentFolderID,
			ReceivedAt:     receivedAt,
			IsRead:         message.IsRead,
			HasAttachments: message.HasAttachments,
		})
		if upsertErr != nil {
			return fetched, created, updated, upsertErr
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return fetched, created, updated, nil
}

// SyncAll is the worker entry point, it walks every syncable account and
// honors the per-account interval.
func (i impl) SyncAll(ctx context.Context) {
	list, err := i.accountStore.ListSyncable()
	if err != nil {
		log.WithError(err).Error("syncable account list error")
		return
	}
	for _, rec := range list {
		if ctx.Err() != nil {
			return
		}
		if rec.LastSyncedAt != nil {
			due := rec.LastSyncedAt.Add(time.Duration(rec.SyncIntervalMinutes) * time.Minute)
			if time.Now().Before(due) {
				continue
			}
		}
		if _, err := i.SyncAccount(ctx, rec.ID); err != nil {
			log.
				WithField("rec_id", rec.ID).
				WithError(err).
				Error("mailbox synchronization error")
		}
	}
}

func (i impl) ListSyncLogs(accountID string) ([]emailapimodels.SyncLogView, error) {
	if _, err := i.getAccountRec(accountID); err != nil {
		return nil, err
	}
	list, err := i.syncLogStore.List(accountID, 50)
	if err != nil {
		log.WithError(err).Error("sync log list error")
		return nil, errors.New("sync log list error")
	}
	result := make([]emailapimodels.SyncLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, emailapimodels.ConvertSyncLog(rec))
	}
	return result, nil
}

func (i impl) ListMessages(filter emailapimodels.MessageFilter) ([]emailapimodels.MessageView, int64, error) {
	rowCount, err := i.messageStore.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.messageStore.List(filter)
	if err != nil {
		log.WithError(err).Error("message list error")
		return nil, 0, errors.New("message list error")
	}
	result := make([]emailapimodels.MessageView, 0, len(list))
	for _, rec := range list {
		result = append(result, emailapimodels.ConvertMessage(rec))
	}
	return result, rowCount, nil
}

func (i impl) GetMessageByID(id string) (*emailapimodels.MessageView, error) {
	rec, err := i.messageStore.GetByID(id)
	if err != nil {
		log.WithError(err).Error("message lookup error")
		return nil, errors.New("message lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("email message not found")
	}
	view := emailapimodels.ConvertMessage(*rec)
	return &view, nil
}

func (i impl) LinkCandidate(messageID string, req emailapimodels.LinkCandidateRequest, actorID string) (linkID string, err error) {
	message, err := i.messageStore.GetByID(messageID)
	if err != nil {
		return "", err
	}
	if message == nil {
		return "", models.NewNotFoundError("email message not found")
	}
	candidate, err := i.candidateStore.GetByID(req.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", models.NewNotFoundError("candidate not found")
	}
	existed, err := i.linkStore.Find(req.CandidateID, messageID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", models.NewDuplicateError("message is already linked to candidate (%v)", candidate.Name)
	}
	rec := dbmodels.CandidateEmailLink{
		CandidateID:      req.CandidateID,
		EmailMessageID:   messageID,
		EmailType:        req.EmailType,
		IsInbound:        req.IsInbound,
		RequiresResponse: req.RequiresResponse,
	}
	if actorID != "" {
		rec.LinkedByID = &actorID
	}
	linkID, err = i.linkStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("candidate link error")
		return "", errors.New("candidate link error")
	}
	return linkID, nil
}

func (i impl) getAccountRec(id string) (*dbmodels.EmailAccount, error) {
	rec, err := i.accountStore.GetByID(id)
	if err != nil {
		log.WithError(err).Error("email account lookup error")
		return nil, errors.New("email account lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("email account not found")
	}
	return rec, nil
}
