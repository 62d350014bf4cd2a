package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServiceOrder is a maintenance work request
type ServiceOrder struct {
	BaseModel
	CompanyID      uuid.UUID          `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_service_orders_company_seq"`
	OrderSeq       int                `json:"-" gorm:"not null;uniqueIndex:idx_service_orders_company_seq"`
	OrderNumber    string             `json:"order_number" gorm:"not null;size:20"`
	Title          string             `json:"title" gorm:"not null;size:200"`
	Description    string             `json:"description" gorm:"type:text"`
	MachineryID    *uuid.UUID         `json:"machinery_id,omitempty" gorm:"type:uuid;index"`
	Type           MaintenanceType    `json:"type" gorm:"type:varchar(20);not null"`
	Priority       Priority           `json:"priority" gorm:"type:varchar(20);not null;index"`
	Status         ServiceOrderStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AssigneeID     *uuid.UUID         `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	RequestedByID  *uuid.UUID         `json:"requested_by_id,omitempty" gorm:"type:uuid"`
	ScheduledStart *time.Time         `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time         `json:"scheduled_end,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	EstimatedCost  float64            `json:"estimated_cost" gorm:"not null"`
	ActualCost     float64            `json:"actual_cost" gorm:"not null"`

	// Relationships
	Machinery *Machinery `json:"machinery,omitempty" gorm:"foreignKey:MachineryID;constraint:OnDelete:SET NULL"`
	Assignee  *Profile   `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// ServiceOrderCounter holds the last order sequence issued in a company.
// It only grows, so deleting an order never frees its number.
type ServiceOrderCounter struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastSeq   int       `gorm:"not null"`

	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default table name
func (ServiceOrderCounter) TableName() string {
	return "service_order_counters"
}

// FormatOrderNumber renders the human order number for a per-company sequence
func FormatOrderNumber(seq int) string {
	return fmt.Sprintf("SO-%06d", seq)
}
