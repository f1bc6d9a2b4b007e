package dbmodels

import (
	"recruitment-backend/models"
)

type CandidateAttachment struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`

	FileName         string `gorm:"type:varchar(255)"`
	OriginalFileName string `gorm:"type:varchar(255)"`
	FileSize         int64
	FileType         models.AttachmentFileType `gorm:"type:varchar(50);index"`
	MimeType         string                    `gorm:"type:varchar(100)"`

	// Object key in the S3 bucket, uuid-based so uploads never collide.
	ObjectKey string `gorm:"type:varchar(500)"`

	IsPrimaryCV             bool `gorm:"index"`
	IsVisibleToLineManager  bool
	Description             string
	UploadedByID            *string  `gorm:"type:varchar(36)"`
	UploadedBy              *AppUser `gorm:"foreignKey:UploadedByID"`
}
