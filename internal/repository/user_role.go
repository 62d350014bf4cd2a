package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleRepository handles the role rows of profiles
type UserRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository creates a new user role repository
func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// Create creates a role row
func (r *UserRoleRepository) Create(role *models.UserRole) error {
	return r.db.Create(role).Error
}

// GetByUserID retrieves the role row of a user
func (r *UserRoleRepository) GetByUserID(userID uuid.UUID) (*models.UserRole, error) {
	var role models.UserRole
	err := r.db.First(&role, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// SetRole changes the role of a user
func (r *UserRoleRepository) SetRole(userID uuid.UUID, role models.Role) error {
	result := r.db.Model(&models.UserRole{}).Where("user_id = ?", userID).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByUserID removes the role row of a user
func (r *UserRoleRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Delete(&models.UserRole{}, "user_id = ?", userID).Error
}
