package dbmodels

import (
	"fmt"
	"recruitment-backend/models"
)

// AppUser mirrors an account in the external identity provider.
// Authentication happens upstream, the backend only needs the actor
// identity and role for audit fields and permission checks.
type AppUser struct {
	BaseModel
	Email         string `gorm:"type:varchar(255);uniqueIndex"`
	FirstName     string `gorm:"type:varchar(100)"`
	LastName      string `gorm:"type:varchar(100)"`
	Role          models.UserRole `gorm:"type:varchar(50)"`
	AzureObjectID string `gorm:"type:varchar(100);index"`
	IsActive      bool
}

func (u AppUser) GetFullName() string {
	return fmt.Sprintf("%v %v", u.FirstName, u.LastName)
}
