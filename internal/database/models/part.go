package models

import "github.com/google/uuid"

// Part is a stocked spare part
type Part struct {
	BaseModel
	CompanyID         uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_parts_company_number"`
	PartNumber        string     `json:"part_number" gorm:"not null;size:100;uniqueIndex:idx_parts_company_number"`
	Name              string     `json:"name" gorm:"not null;size:200"`
	Category          string     `json:"category" gorm:"size:100"`
	Quantity          int        `json:"quantity" gorm:"not null"`
	MinimumQuantity   int        `json:"minimum_quantity" gorm:"not null"`
	UnitPrice         float64    `json:"unit_price" gorm:"not null"`
	PreviousUnitPrice float64    `json:"previous_unit_price" gorm:"not null"`
	Supplier          string     `json:"supplier" gorm:"size:200"`
	Location          string     `json:"location" gorm:"size:200"`
	MachineryID       *uuid.UUID `json:"machinery_id,omitempty" gorm:"type:uuid"`
}

// TableName keeps the dashboard's table name
func (Part) TableName() string {
	return "parts_inventory"
}

// IsLowStock reports whether the quantity reached the reorder threshold
func (p *Part) IsLowStock() bool {
	return p.Quantity <= p.MinimumQuantity
}
