package models

import (
	"time"

	"github.com/google/uuid"
)

// Machinery is a piece of equipment maintained by a company
type Machinery struct {
	BaseModel
	CompanyID       uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_machinery_company_serial;index"`
	Name            string          `json:"name" gorm:"not null;size:200"`
	Model           string          `json:"model" gorm:"size:100"`
	Manufacturer    string          `json:"manufacturer" gorm:"size:100"`
	SerialNumber    string          `json:"serial_number" gorm:"not null;size:100;uniqueIndex:idx_machinery_company_serial"`
	Category        string          `json:"category" gorm:"size:100;index"`
	Location        string          `json:"location" gorm:"size:200"`
	Status          MachineryStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AcquisitionDate *time.Time      `json:"acquisition_date,omitempty"`
	AcquisitionCost float64         `json:"acquisition_cost" gorm:"not null"`
	HourMeter       float64         `json:"hour_meter" gorm:"not null"`
	Notes           string          `json:"notes" gorm:"type:text"`
	ImageKey        string          `json:"image_key,omitempty" gorm:"size:500"`

	// Relationships
	Company *Company `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the dashboard's table name
func (Machinery) TableName() string {
	return "machinery"
}
