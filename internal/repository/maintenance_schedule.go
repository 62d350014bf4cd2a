package repository

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceScheduleRepository handles database operations for maintenance schedules
type MaintenanceScheduleRepository struct {
	db *gorm.DB
}

// NewMaintenanceScheduleRepository creates a new maintenance schedule repository
func NewMaintenanceScheduleRepository(db *gorm.DB) *MaintenanceScheduleRepository {
	return &MaintenanceScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *MaintenanceScheduleRepository) Create(schedule *models.MaintenanceSchedule) error {
	return r.db.Omit("Machinery").Create(schedule).Error
}

// GetByID retrieves a schedule with its machine
func (r *MaintenanceScheduleRepository) GetByID(id uuid.UUID) (*models.MaintenanceSchedule, error) {
	var schedule models.MaintenanceSchedule
	err := r.db.Preload("Machinery").First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// List retrieves schedules matching the filter ordered by due date
func (r *MaintenanceScheduleRepository) List(filter ScheduleFilter, limit, offset int) ([]models.MaintenanceSchedule, int64, error) {
	query := r.db.Model(&models.MaintenanceSchedule{}).Where("company_id = ?", filter.CompanyID)
	if filter.MachineryID != nil {
		query = query.Where("machinery_id = ?", *filter.MachineryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.DueBefore != nil {
		query = query.Where("next_due_date <= ?", *filter.DueBefore)
	}
	return paginate[models.MaintenanceSchedule](query, "next_due_date ASC", limit, offset, "Machinery")
}

// Update updates a schedule
func (r *MaintenanceScheduleRepository) Update(schedule *models.MaintenanceSchedule) error {
	return r.db.Omit("Machinery").Save(schedule).Error
}

// Delete deletes a schedule
func (r *MaintenanceScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenanceSchedule{}, "id = ?", id).Error
}

// CountOverdue counts active schedules whose due date passed
func (r *MaintenanceScheduleRepository) CountOverdue(companyID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.MaintenanceSchedule{}).
		Where("company_id = ? AND is_active = ? AND next_due_date < ?", companyID, true, now).
		Count(&count).Error
	return count, err
}
