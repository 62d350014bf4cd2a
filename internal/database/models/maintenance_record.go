package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord is one performed maintenance in a machine's history
type MaintenanceRecord struct {
	BaseModel
	CompanyID      uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	MachineryID    uuid.UUID       `json:"machinery_id" gorm:"type:uuid;not null;index"`
	ScheduleID     *uuid.UUID      `json:"schedule_id,omitempty" gorm:"type:uuid"`
	ServiceOrderID *uuid.UUID      `json:"service_order_id,omitempty" gorm:"type:uuid"`
	PerformedAt    time.Time       `json:"performed_at" gorm:"not null;index"`
	PerformedByID  *uuid.UUID      `json:"performed_by_id,omitempty" gorm:"type:uuid"`
	Type           MaintenanceType `json:"type" gorm:"type:varchar(20);not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Cost           float64         `json:"cost" gorm:"not null"`
	DowntimeHours  float64         `json:"downtime_hours" gorm:"not null"`

	// Relationships
	Machinery *Machinery `json:"machinery,omitempty" gorm:"foreignKey:MachineryID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the dashboard's table name
func (MaintenanceRecord) TableName() string {
	return "maintenance_history"
}
