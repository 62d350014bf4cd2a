package repository

import (
	"strings"
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineryFilter narrows machinery listings
type MachineryFilter struct {
	CompanyID uuid.UUID
	Status    models.MachineryStatus
	Category  string
	Search    string
}

// ServiceOrderFilter narrows service order listings
type ServiceOrderFilter struct {
	CompanyID   uuid.UUID
	Status      models.ServiceOrderStatus
	Priority    models.Priority
	MachineryID *uuid.UUID
	AssigneeID  *uuid.UUID
}

// ScheduleFilter narrows maintenance schedule listings
type ScheduleFilter struct {
	CompanyID   uuid.UUID
	MachineryID *uuid.UUID
	ActiveOnly  bool
	DueBefore   *time.Time
}

// HistoryFilter narrows maintenance history listings
type HistoryFilter struct {
	CompanyID   uuid.UUID
	MachineryID *uuid.UUID
	From        *time.Time
	To          *time.Time
}

// PartFilter narrows parts inventory listings
type PartFilter struct {
	CompanyID    uuid.UUID
	Category     string
	Search       string
	LowStockOnly bool
}

// TaskFilter narrows task listings
type TaskFilter struct {
	CompanyID      uuid.UUID
	Status         models.TaskStatus
	AssigneeID     *uuid.UUID
	ServiceOrderID *uuid.UUID
}

// BugReportFilter narrows bug report listings
type BugReportFilter struct {
	ReporterID *uuid.UUID
	Status     models.BugStatus
}

// likePattern builds a case-insensitive containment pattern
func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}

// paginate counts the query and loads one page of it
func paginate[T any](query *gorm.DB, order string, limit, offset int, preloads ...string) ([]T, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := query.Order(order).Limit(limit).Offset(offset)
	for _, p := range preloads {
		page = page.Preload(p)
	}

	items := make([]T, 0)
	if err := page.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
