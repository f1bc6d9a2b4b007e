package candidateapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type AttachmentUploadData struct {
	FileType               models.AttachmentFileType `json:"file_type"`
	Description            string                    `json:"description"`
	IsVisibleToLineManager bool                      `json:"is_visible_to_line_manager"`
}

func (d AttachmentUploadData) Validate() error {
	if !d.FileType.IsValid() {
		return models.NewValidationErrorf("file_type", "unknown file type (%v)", d.FileType)
	}
	return nil
}

type AttachmentView struct {
	ID                     string                    `json:"id"`
	FileName               string                    `json:"file_name"`
	OriginalFileName       string                    `json:"original_file_name"`
	FileSize               int64                     `json:"file_size"`
	FileType               models.AttachmentFileType `json:"file_type"`
	MimeType               string                    `json:"mime_type"`
	IsPrimaryCV            bool                      `json:"is_primary_cv"`
	IsVisibleToLineManager bool                      `json:"is_visible_to_line_manager"`
	Description            string                    `json:"description"`
	UploadedBy             string                    `json:"uploaded_by"`
	CreatedAt              time.Time                 `json:"created_at"`
}

func ConvertAttachment(rec dbmodels.CandidateAttachment) AttachmentView {
	result := AttachmentView{
		ID:                     rec.ID,
		FileName:               rec.FileName,
		OriginalFileName:       rec.OriginalFileName,
		FileSize:               rec.FileSize,
		FileType:               rec.FileType,
		MimeType:               rec.MimeType,
		IsPrimaryCV:            rec.IsPrimaryCV,
		IsVisibleToLineManager: rec.IsVisibleToLineManager,
		Description:            rec.Description,
		CreatedAt:              rec.CreatedAt,
	}
	if rec.UploadedBy != nil {
		result.UploadedBy = rec.UploadedBy.GetFullName()
	}
	return result
}
