package repository

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOrderRepository handles database operations for service orders
type ServiceOrderRepository struct {
	db *gorm.DB
}

// NewServiceOrderRepository creates a new service order repository
func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

// Create creates a new service order
func (r *ServiceOrderRepository) Create(order *models.ServiceOrder) error {
	return r.db.Omit("Machinery", "Assignee").Create(order).Error
}

// GetByID retrieves a service order with its machine and assignee
func (r *ServiceOrderRepository) GetByID(id uuid.UUID) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := r.db.Preload("Machinery").Preload("Assignee").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List retrieves service orders matching the filter, newest first
func (r *ServiceOrderRepository) List(filter ServiceOrderFilter, limit, offset int) ([]models.ServiceOrder, int64, error) {
	query := r.db.Model(&models.ServiceOrder{}).Where("company_id = ?", filter.CompanyID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.MachineryID != nil {
		query = query.Where("machinery_id = ?", *filter.MachineryID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	return paginate[models.ServiceOrder](query, "order_seq DESC", limit, offset, "Machinery", "Assignee")
}

// Update updates a service order
func (r *ServiceOrderRepository) Update(order *models.ServiceOrder) error {
	return r.db.Omit("Machinery", "Assignee").Save(order).Error
}

// UpdateStatus writes a new status and completion stamp
func (r *ServiceOrderRepository) UpdateStatus(id uuid.UUID, status models.ServiceOrderStatus, completedAt *time.Time) error {
	result := r.db.Model(&models.ServiceOrder{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": completedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a service order
func (r *ServiceOrderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceOrder{}, "id = ?", id).Error
}

// NextSequence reserves the next order sequence of a company. The counter row
// is locked until the surrounding transaction ends, so concurrent creates in
// one company are serialized. A company without a counter starts after its
// highest existing order.
func (r *ServiceOrderRepository) NextSequence(companyID uuid.UUID) (int, error) {
	err := r.db.Exec(`INSERT INTO service_order_counters (company_id, last_seq)
		VALUES (?, (SELECT COALESCE(MAX(order_seq), 0) + 1 FROM service_orders WHERE company_id = ?))
		ON CONFLICT (company_id) DO UPDATE SET last_seq = service_order_counters.last_seq + 1`,
		companyID, companyID).Error
	if err != nil {
		return 0, err
	}

	var counter models.ServiceOrderCounter
	if err := r.db.First(&counter, "company_id = ?", companyID).Error; err != nil {
		return 0, err
	}
	return counter.LastSeq, nil
}

// CountByStatus counts the service orders of a company per status
func (r *ServiceOrderRepository) CountByStatus(companyID uuid.UUID) (map[models.ServiceOrderStatus]int64, error) {
	var rows []struct {
		Status models.ServiceOrderStatus
		Count  int64
	}
	err := r.db.Model(&models.ServiceOrder{}).
		Select("status, COUNT(*) AS count").
		Where("company_id = ?", companyID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ServiceOrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountOpenByPriority counts pending or in-progress orders with one of the priorities
func (r *ServiceOrderRepository) CountOpenByPriority(companyID uuid.UUID, priorities []models.Priority) (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceOrder{}).
		Where("company_id = ?", companyID).
		Where("status IN ?", []models.ServiceOrderStatus{models.ServiceOrderStatusPending, models.ServiceOrderStatusInProgress}).
		Where("priority IN ?", priorities).
		Count(&count).Error
	return count, err
}
