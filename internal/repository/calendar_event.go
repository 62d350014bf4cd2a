package repository

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEventRepository handles database operations for calendar events
type CalendarEventRepository struct {
	db *gorm.DB
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

// Create creates a new event
func (r *CalendarEventRepository) Create(event *models.CalendarEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *CalendarEventRepository) GetByID(id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListRange retrieves the events overlapping [from, to)
func (r *CalendarEventRepository) ListRange(companyID uuid.UUID, from, to time.Time) ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	err := r.db.
		Where("company_id = ? AND starts_at < ? AND ends_at >= ?", companyID, to, from).
		Order("starts_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Update updates an event
func (r *CalendarEventRepository) Update(event *models.CalendarEvent) error {
	return r.db.Save(event).Error
}

// Delete deletes an event
func (r *CalendarEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CalendarEvent{}, "id = ?", id).Error
}

// DeleteByServiceOrderID removes the events attached to a service order
func (r *CalendarEventRepository) DeleteByServiceOrderID(orderID uuid.UUID) error {
	return r.db.Delete(&models.CalendarEvent{}, "service_order_id = ?", orderID).Error
}
