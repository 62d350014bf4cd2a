package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a kanban card
type Task struct {
	BaseModel
	CompanyID      uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" gorm:"not null;size:200"`
	Description    string     `json:"description" gorm:"type:text"`
	Status         TaskStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	Priority       Priority   `json:"priority" gorm:"type:varchar(20);not null"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty" gorm:"type:uuid;index"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty" gorm:"type:uuid"`
}
