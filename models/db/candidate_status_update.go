package dbmodels

import (
	"recruitment-backend/models"
)

// CandidateStatusUpdate is the append-only hiring status audit log.
// PreviousStatus is nil only for records written against entities whose
// prior state is unknown; creation of a candidate writes no record at all.
type CandidateStatusUpdate struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`

	PreviousStatus *models.HiringStatus `gorm:"type:varchar(20)"`
	NewStatus      models.HiringStatus  `gorm:"type:varchar(20)"`
	Reason         string

	// Nil actor = system-initiated change.
	UpdatedByID *string  `gorm:"type:varchar(36)"`
	UpdatedBy   *AppUser `gorm:"foreignKey:UpdatedByID"`
	ActorName   string   `gorm:"type:varchar(255)"`
}
