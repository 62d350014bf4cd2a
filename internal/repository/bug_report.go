package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BugReportRepository handles database operations for bug reports
type BugReportRepository struct {
	db *gorm.DB
}

// NewBugReportRepository creates a new bug report repository
func NewBugReportRepository(db *gorm.DB) *BugReportRepository {
	return &BugReportRepository{db: db}
}

// Create creates a new bug report
func (r *BugReportRepository) Create(report *models.BugReport) error {
	return r.db.Omit("Reporter").Create(report).Error
}

// GetByID retrieves a bug report with its reporter
func (r *BugReportRepository) GetByID(id uuid.UUID) (*models.BugReport, error) {
	var report models.BugReport
	err := r.db.Preload("Reporter").First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List retrieves bug reports matching the filter, newest first
func (r *BugReportRepository) List(filter BugReportFilter, limit, offset int) ([]models.BugReport, int64, error) {
	query := r.db.Model(&models.BugReport{})
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return paginate[models.BugReport](query, "created_at DESC", limit, offset, "Reporter")
}

// UpdateStatus moves a bug report to another triage state
func (r *BugReportRepository) UpdateStatus(id uuid.UUID, status models.BugStatus) error {
	result := r.db.Model(&models.BugReport{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a bug report
func (r *BugReportRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BugReport{}, "id = ?", id).Error
}
