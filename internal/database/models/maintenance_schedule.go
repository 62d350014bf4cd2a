package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceSchedule is a recurring maintenance reminder for one machine
type MaintenanceSchedule struct {
	BaseModel
	CompanyID       uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	MachineryID     uuid.UUID  `json:"machinery_id" gorm:"type:uuid;not null;index"`
	Title           string     `json:"title" gorm:"not null;size:200"`
	Description     string     `json:"description" gorm:"type:text"`
	Frequency       Frequency  `json:"frequency" gorm:"type:varchar(20);not null"`
	NextDueDate     time.Time  `json:"next_due_date" gorm:"not null;index"`
	LastPerformedAt *time.Time `json:"last_performed_at,omitempty"`
	AssigneeID      *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid"`
	IsActive        bool       `json:"is_active" gorm:"not null"`

	// Relationships
	Machinery *Machinery `json:"machinery,omitempty" gorm:"foreignKey:MachineryID;constraint:OnDelete:CASCADE"`
}
