package models

import "github.com/google/uuid"

// BugReport is feedback filed from the dashboard
type BugReport struct {
	BaseModel
	ReporterID    uuid.UUID  `json:"reporter_id" gorm:"type:uuid;not null;index"`
	CompanyID     *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	Title         string     `json:"title" gorm:"not null;size:200"`
	Description   string     `json:"description" gorm:"type:text;not null"`
	Severity      Priority   `json:"severity" gorm:"type:varchar(20);not null"`
	Status        BugStatus  `json:"status" gorm:"type:varchar(20);not null;index"`
	PageURL       string     `json:"page_url" gorm:"size:500"`
	ScreenshotKey string     `json:"screenshot_key,omitempty" gorm:"size:500"`

	// Relationships
	Reporter *Profile `json:"reporter,omitempty" gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE"`
}
