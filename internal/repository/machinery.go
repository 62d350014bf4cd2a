package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineryRepository handles database operations for machinery
type MachineryRepository struct {
	db *gorm.DB
}

// NewMachineryRepository creates a new machinery repository
func NewMachineryRepository(db *gorm.DB) *MachineryRepository {
	return &MachineryRepository{db: db}
}

// Create creates a new machine
func (r *MachineryRepository) Create(machinery *models.Machinery) error {
	return r.db.Omit("Company").Create(machinery).Error
}

// GetByID retrieves a machine by ID
func (r *MachineryRepository) GetByID(id uuid.UUID) (*models.Machinery, error) {
	var machinery models.Machinery
	err := r.db.First(&machinery, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &machinery, nil
}

// GetBySerialNumber retrieves a machine by its serial number within a company
func (r *MachineryRepository) GetBySerialNumber(companyID uuid.UUID, serial string) (*models.Machinery, error) {
	var machinery models.Machinery
	err := r.db.First(&machinery, "company_id = ? AND serial_number = ?", companyID, serial).Error
	if err != nil {
		return nil, err
	}
	return &machinery, nil
}

// List retrieves machinery matching the filter with pagination
func (r *MachineryRepository) List(filter MachineryFilter, limit, offset int) ([]models.Machinery, int64, error) {
	query := r.db.Model(&models.Machinery{}).Where("company_id = ?", filter.CompanyID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(serial_number) LIKE ? OR LOWER(model) LIKE ?)", pattern, pattern, pattern)
	}
	return paginate[models.Machinery](query, "name ASC", limit, offset)
}

// Update updates a machine
func (r *MachineryRepository) Update(machinery *models.Machinery) error {
	return r.db.Omit("Company").Save(machinery).Error
}

// Delete deletes a machine
func (r *MachineryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Machinery{}, "id = ?", id).Error
}

// CountByStatus counts the machines of a company per status
func (r *MachineryRepository) CountByStatus(companyID uuid.UUID) (map[models.MachineryStatus]int64, error) {
	var rows []struct {
		Status models.MachineryStatus
		Count  int64
	}
	err := r.db.Model(&models.Machinery{}).
		Select("status, COUNT(*) AS count").
		Where("company_id = ?", companyID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.MachineryStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
