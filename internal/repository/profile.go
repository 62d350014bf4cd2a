package repository

import (
	"strings"
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	return r.db.Omit("Role", "Company").Create(profile).Error
}

// GetByID retrieves a profile with its role row
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Role").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email, case-insensitively
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Role").First(&profile, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByCompanyID retrieves the profiles of a company with pagination
func (r *ProfileRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Profile, int64, error) {
	query := r.db.Model(&models.Profile{}).Where("company_id = ?", companyID)
	return paginate[models.Profile](query, "full_name ASC", limit, offset, "Role")
}

// Update updates a profile's own columns
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Omit("Role", "Company").Save(profile).Error
}

// UpdateLastLogin stamps the last successful login
func (r *ProfileRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Profile{}, "id = ?", id).Error
}
