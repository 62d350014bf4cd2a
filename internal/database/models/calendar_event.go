package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is an entry on the company calendar
type CalendarEvent struct {
	BaseModel
	CompanyID      uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" gorm:"not null;size:200"`
	Description    string     `json:"description" gorm:"type:text"`
	Start          time.Time  `json:"start" gorm:"column:starts_at;not null;index"`
	End            time.Time  `json:"end" gorm:"column:ends_at;not null"`
	AllDay         bool       `json:"all_day" gorm:"not null"`
	Type           EventType  `json:"type" gorm:"type:varchar(20);not null"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty" gorm:"type:uuid"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID    *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
}
