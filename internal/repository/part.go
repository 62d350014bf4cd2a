package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartRepository handles database operations for the parts inventory
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetByPartNumber retrieves a part by number within a company
func (r *PartRepository) GetByPartNumber(companyID uuid.UUID, partNumber string) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "company_id = ? AND part_number = ?", companyID, partNumber).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *PartRepository) filtered(filter PartFilter) *gorm.DB {
	query := r.db.Model(&models.Part{}).Where("company_id = ?", filter.CompanyID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(part_number) LIKE ?)", pattern, pattern)
	}
	if filter.LowStockOnly {
		query = query.Where("quantity <= minimum_quantity")
	}
	return query
}

// List retrieves parts matching the filter with pagination
func (r *PartRepository) List(filter PartFilter, limit, offset int) ([]models.Part, int64, error) {
	return paginate[models.Part](r.filtered(filter), "name ASC", limit, offset)
}

// ListAll retrieves every part matching the filter
func (r *PartRepository) ListAll(filter PartFilter) ([]models.Part, error) {
	parts := make([]models.Part, 0)
	if err := r.filtered(filter).Order("name ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Update updates a part
func (r *PartRepository) Update(part *models.Part) error {
	return r.db.Save(part).Error
}

// AdjustQuantity adds delta to the stock unless the result would be negative.
// It returns the number of rows changed.
func (r *PartRepository) AdjustQuantity(id uuid.UUID, delta int) (int64, error) {
	result := r.db.Model(&models.Part{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return result.RowsAffected, result.Error
}

// Delete deletes a part
func (r *PartRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Part{}, "id = ?", id).Error
}

// CountLowStock counts parts at or below their minimum quantity
func (r *PartRepository) CountLowStock(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Part{}).
		Where("company_id = ? AND quantity <= minimum_quantity", companyID).
		Count(&count).Error
	return count, err
}
