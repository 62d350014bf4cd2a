package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceRecordRepository handles database operations for maintenance history
type MaintenanceRecordRepository struct {
	db *gorm.DB
}

// NewMaintenanceRecordRepository creates a new maintenance history repository
func NewMaintenanceRecordRepository(db *gorm.DB) *MaintenanceRecordRepository {
	return &MaintenanceRecordRepository{db: db}
}

// Create creates a new history entry
func (r *MaintenanceRecordRepository) Create(record *models.MaintenanceRecord) error {
	return r.db.Omit("Machinery").Create(record).Error
}

// GetByID retrieves a history entry with its machine
func (r *MaintenanceRecordRepository) GetByID(id uuid.UUID) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := r.db.Preload("Machinery").First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRecordRepository) filtered(filter HistoryFilter) *gorm.DB {
	query := r.db.Model(&models.MaintenanceRecord{}).Where("company_id = ?", filter.CompanyID)
	if filter.MachineryID != nil {
		query = query.Where("machinery_id = ?", *filter.MachineryID)
	}
	if filter.From != nil {
		query = query.Where("performed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("performed_at < ?", *filter.To)
	}
	return query
}

// List retrieves history entries matching the filter, most recent first
func (r *MaintenanceRecordRepository) List(filter HistoryFilter, limit, offset int) ([]models.MaintenanceRecord, int64, error) {
	return paginate[models.MaintenanceRecord](r.filtered(filter), "performed_at DESC", limit, offset, "Machinery")
}

// ListAll retrieves every history entry matching the filter in chronological order
func (r *MaintenanceRecordRepository) ListAll(filter HistoryFilter) ([]models.MaintenanceRecord, error) {
	records := make([]models.MaintenanceRecord, 0)
	err := r.filtered(filter).Preload("Machinery").Order("performed_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update updates a history entry
func (r *MaintenanceRecordRepository) Update(record *models.MaintenanceRecord) error {
	return r.db.Omit("Machinery").Save(record).Error
}

// Delete deletes a history entry
func (r *MaintenanceRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenanceRecord{}, "id = ?", id).Error
}
