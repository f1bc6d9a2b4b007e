package emailmessagestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	emailapimodels "recruitment-backend/models/api/email"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.EmailMessage) (created bool, err error)
	GetByID(id string) (*dbmodels.EmailMessage, error)
	ListCount(filter emailapimodels.MessageFilter) (int64, error)
	List(filter emailapimodels.MessageFilter) ([]dbmodels.EmailMessage, error)
	SaveAttachment(rec dbmodels.EmailAttachment) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

// Upsert keys on (account_id, message_id) so repeated syncs refresh the
// mutable fields instead of duplicating rows.
func (i impl) Upsert(rec dbmodels.EmailMessage) (created bool, err error) {
	existed := dbmodels.EmailMessage{}
	err = i.db.
		First(&existed, "account_id = ? and message_id = ?", rec.AccountID, rec.MessageID).
		Error
	if err == nil {
		err = i.db.
			Model(dbmodels.EmailMessage{}).
			Where("id = ?", existed.ID).
			Updates(map[string]interface{}{
				"subject":         rec.Subject,
				"body_preview":    rec.BodyPreview,
				"is_read":         rec.IsRead,
				"has_attachments": rec.HasAttachments,
				"folder":          rec.Folder,
			}).
			Error
		return false, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	err = i.db.Omit("Account", "Attachments").Create(&rec).Error
	return true, err
}

func (i impl) GetByID(id string) (*dbmodels.EmailMessage, error) {
	rec := dbmodels.EmailMessage{}
	err := i.db.
		Preload("Attachments").
		First(&rec, "id = ?", id).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (i impl) ListCount(filter emailapimodels.MessageFilter) (int64, error) {
	var rowCount int64
	err := i.applyFilter(i.db.Model(dbmodels.EmailMessage{}), filter).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) List(filter emailapimodels.MessageFilter) ([]dbmodels.EmailMessage, error) {
	result := make([]dbmodels.EmailMessage, 0)
	err := i.applyFilter(i.db, filter).
		Order("received_at desc").
		Scopes(setPage(filter)).
		Find(&result).
		Error
	return result, err
}

func (i impl) SaveAttachment(rec dbmodels.EmailAttachment) error {
	return i.db.
		Omit("Message").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
}

func (i impl) applyFilter(q *gorm.DB, filter emailapimodels.MessageFilter) *gorm.DB {
	if filter.AccountID != "" {
		q = q.Where("account_id = ?", filter.AccountID)
	}
	if filter.Sender != "" {
		q = q.Where("sender ilike ?", "%"+filter.Sender+"%")
	}
	if filter.Search != "" {
		q = q.Where("subject ilike ?", "%"+filter.Search+"%")
	}
	if filter.Folder != "" {
		q = q.Where("folder = ?", filter.Folder)
	}
	return q
}

func setPage(filter emailapimodels.MessageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := filter.GetPage()
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
