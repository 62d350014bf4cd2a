package repository

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Profile, int64, error)
	Update(profile *models.Profile) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// UserRoleRepositoryInterface defines the interface for role row operations
type UserRoleRepositoryInterface interface {
	Create(role *models.UserRole) error
	GetByUserID(userID uuid.UUID) (*models.UserRole, error)
	SetRole(userID uuid.UUID, role models.Role) error
	DeleteByUserID(userID uuid.UUID) error
}

// MachineryRepositoryInterface defines the interface for machinery repository operations
type MachineryRepositoryInterface interface {
	Create(machinery *models.Machinery) error
	GetByID(id uuid.UUID) (*models.Machinery, error)
	GetBySerialNumber(companyID uuid.UUID, serial string) (*models.Machinery, error)
	List(filter MachineryFilter, limit, offset int) ([]models.Machinery, int64, error)
	Update(machinery *models.Machinery) error
	Delete(id uuid.UUID) error
	CountByStatus(companyID uuid.UUID) (map[models.MachineryStatus]int64, error)
}

// ServiceOrderRepositoryInterface defines the interface for service order repository operations
type ServiceOrderRepositoryInterface interface {
	Create(order *models.ServiceOrder) error
	GetByID(id uuid.UUID) (*models.ServiceOrder, error)
	List(filter ServiceOrderFilter, limit, offset int) ([]models.ServiceOrder, int64, error)
	Update(order *models.ServiceOrder) error
	UpdateStatus(id uuid.UUID, status models.ServiceOrderStatus, completedAt *time.Time) error
	Delete(id uuid.UUID) error
	NextSequence(companyID uuid.UUID) (int, error)
	CountByStatus(companyID uuid.UUID) (map[models.ServiceOrderStatus]int64, error)
	CountOpenByPriority(companyID uuid.UUID, priorities []models.Priority) (int64, error)
}

// MaintenanceScheduleRepositoryInterface defines the interface for schedule repository operations
type MaintenanceScheduleRepositoryInterface interface {
	Create(schedule *models.MaintenanceSchedule) error
	GetByID(id uuid.UUID) (*models.MaintenanceSchedule, error)
	List(filter ScheduleFilter, limit, offset int) ([]models.MaintenanceSchedule, int64, error)
	Update(schedule *models.MaintenanceSchedule) error
	Delete(id uuid.UUID) error
	CountOverdue(companyID uuid.UUID, now time.Time) (int64, error)
}

// MaintenanceRecordRepositoryInterface defines the interface for maintenance history operations
type MaintenanceRecordRepositoryInterface interface {
	Create(record *models.MaintenanceRecord) error
	GetByID(id uuid.UUID) (*models.MaintenanceRecord, error)
	List(filter HistoryFilter, limit, offset int) ([]models.MaintenanceRecord, int64, error)
	ListAll(filter HistoryFilter) ([]models.MaintenanceRecord, error)
	Update(record *models.MaintenanceRecord) error
	Delete(id uuid.UUID) error
}

// PartRepositoryInterface defines the interface for parts inventory operations
type PartRepositoryInterface interface {
	Create(part *models.Part) error
	GetByID(id uuid.UUID) (*models.Part, error)
	GetByPartNumber(companyID uuid.UUID, partNumber string) (*models.Part, error)
	List(filter PartFilter, limit, offset int) ([]models.Part, int64, error)
	ListAll(filter PartFilter) ([]models.Part, error)
	Update(part *models.Part) error
	AdjustQuantity(id uuid.UUID, delta int) (int64, error)
	Delete(id uuid.UUID) error
	CountLowStock(companyID uuid.UUID) (int64, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	List(filter TaskFilter, limit, offset int) ([]models.Task, int64, error)
	ListAll(filter TaskFilter) ([]models.Task, error)
	Update(task *models.Task) error
	UpdateStatus(id uuid.UUID, status models.TaskStatus) error
	Delete(id uuid.UUID) error
	DeleteByServiceOrderID(orderID uuid.UUID) error
	CountByStatus(companyID uuid.UUID) (map[models.TaskStatus]int64, error)
}

// CalendarEventRepositoryInterface defines the interface for calendar event operations
type CalendarEventRepositoryInterface interface {
	Create(event *models.CalendarEvent) error
	GetByID(id uuid.UUID) (*models.CalendarEvent, error)
	ListRange(companyID uuid.UUID, from, to time.Time) ([]models.CalendarEvent, error)
	Update(event *models.CalendarEvent) error
	Delete(id uuid.UUID) error
	DeleteByServiceOrderID(orderID uuid.UUID) error
}

// BugReportRepositoryInterface defines the interface for bug report operations
type BugReportRepositoryInterface interface {
	Create(report *models.BugReport) error
	GetByID(id uuid.UUID) (*models.BugReport, error)
	List(filter BugReportFilter, limit, offset int) ([]models.BugReport, int64, error)
	UpdateStatus(id uuid.UUID, status models.BugStatus) error
	Delete(id uuid.UUID) error
}

// TutorialVideoRepositoryInterface defines the interface for tutorial video operations
type TutorialVideoRepositoryInterface interface {
	Create(video *models.TutorialVideo) error
	GetByID(id uuid.UUID) (*models.TutorialVideo, error)
	List(publishedOnly bool, category string) ([]models.TutorialVideo, error)
	Update(video *models.TutorialVideo) error
	Delete(id uuid.UUID) error
}

// TransactorInterface runs a function against repositories bound to one transaction
type TransactorInterface interface {
	Transaction(fn func(repos *Repositories) error) error
}
