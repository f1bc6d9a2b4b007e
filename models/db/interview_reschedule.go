package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// InterviewReschedule is the append-only reschedule history of an interview.
type InterviewReschedule struct {
	BaseModel
	InterviewID string     `gorm:"type:varchar(36);index"`
	Interview   *Interview `gorm:"foreignKey:InterviewID"`

	PreviousDate     time.Time
	NewDate          time.Time
	PreviousLocation string `gorm:"type:varchar(255)"`
	NewLocation      string `gorm:"type:varchar(255)"`

	Reason        models.RescheduleReason    `gorm:"type:varchar(30)"`
	ReasonDetails string
	InitiatedBy   models.RescheduleInitiator `gorm:"type:varchar(20)"`

	InitiatedByUserID *string  `gorm:"type:varchar(36)"`
	InitiatedByUser   *AppUser `gorm:"foreignKey:InitiatedByUserID"`
}
