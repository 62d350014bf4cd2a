package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is an authenticated person. The role lives in a separate UserRole row
// and is loaded on every request.
type Profile struct {
	BaseModel
	CompanyID    *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName     string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Phone        string     `json:"phone" gorm:"size:30" validate:"max=30"`
	JobTitle     string     `json:"job_title" gorm:"size:100" validate:"max=100"`
	PasswordHash string     `json:"-" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"not null"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Company *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
	Role    *UserRole `json:"role,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserRole holds the single role row of a profile
type UserRole struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Role   Role      `json:"role" gorm:"type:varchar(20);not null"`
}
