package models

// Company is the tenant partition; most rows belong to exactly one company
type Company struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	TaxID    string `json:"tax_id" gorm:"size:50" validate:"max=50"`
	Email    string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone" gorm:"size:30" validate:"max=30"`
	Address  string `json:"address" gorm:"size:500" validate:"max=500"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}
