package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) filtered(filter TaskFilter) *gorm.DB {
	query := r.db.Model(&models.Task{}).Where("company_id = ?", filter.CompanyID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ServiceOrderID != nil {
		query = query.Where("service_order_id = ?", *filter.ServiceOrderID)
	}
	return query
}

// List retrieves tasks matching the filter with pagination
func (r *TaskRepository) List(filter TaskFilter, limit, offset int) ([]models.Task, int64, error) {
	return paginate[models.Task](r.filtered(filter), "created_at DESC", limit, offset)
}

// ListAll retrieves every task matching the filter
func (r *TaskRepository) ListAll(filter TaskFilter) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := r.filtered(filter).Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// UpdateStatus moves a task to another column
func (r *TaskRepository) UpdateStatus(id uuid.UUID, status models.TaskStatus) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// DeleteByServiceOrderID removes the tasks attached to a service order
func (r *TaskRepository) DeleteByServiceOrderID(orderID uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "service_order_id = ?", orderID).Error
}

// CountByStatus counts the tasks of a company per column
func (r *TaskRepository) CountByStatus(companyID uuid.UUID) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("company_id = ?", companyID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
