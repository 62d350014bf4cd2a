package service

import (
	"context"
	"io"
	"time"

	"maintenance-hub-backend/internal/notify"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Mailer delivers transactional email
type Mailer interface {
	Send(ctx context.Context, msg *notify.Message) error
}

// ObjectStorage keeps uploaded files
type ObjectStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	GetOwn(actor *Actor) (*CompanyResponse, error)
	GetAll(page, pageSize int) (*CompanyListResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(actor *Actor, companyID *uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Get(actor *Actor, id uuid.UUID) (*UserResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	UpdateRole(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error)
	Invite(ctx context.Context, actor *Actor, req *InviteUserRequest) (*InviteUserResponse, error)
	Attach(ctx context.Context, actor *Actor, req *AttachUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	LookupEmail(actor *Actor, email string) (*EmailLookupResponse, error)
	SendWelcomeEmail(ctx context.Context, actor *Actor, id uuid.UUID, req *WelcomeEmailRequest) (*WelcomeEmailResponse, error)
	GetMe(actor *Actor) (*UserResponse, error)
	UpdateMe(actor *Actor, req *UpdateMeRequest) (*UserResponse, error)
	ChangePassword(actor *Actor, req *ChangePasswordRequest) error
}

// MachineryServiceInterface defines the interface for machinery service
type MachineryServiceInterface interface {
	Create(actor *Actor, req *CreateMachineryRequest) (*MachineryResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*MachineryResponse, error)
	List(actor *Actor, q *MachineryQuery) (*MachineryListResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateMachineryRequest) (*MachineryResponse, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	UploadPhoto(ctx context.Context, actor *Actor, id uuid.UUID, upload *Upload) (*MachineryResponse, error)
	PhotoURL(ctx context.Context, actor *Actor, id uuid.UUID) (*FileURLResponse, error)
}

// ServiceOrderServiceInterface defines the interface for service order service
type ServiceOrderServiceInterface interface {
	Create(ctx context.Context, actor *Actor, req *CreateServiceOrderRequest) (*ServiceOrderResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*ServiceOrderResponse, error)
	List(actor *Actor, q *ServiceOrderQuery) (*ServiceOrderListResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateServiceOrderRequest) (*ServiceOrderResponse, error)
	UpdateStatus(actor *Actor, id uuid.UUID, req *StatusMoveRequest) (*ServiceOrderResponse, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
}

// ScheduleServiceInterface defines the interface for maintenance schedule service
type ScheduleServiceInterface interface {
	Create(actor *Actor, req *CreateScheduleRequest) (*ScheduleResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*ScheduleResponse, error)
	List(actor *Actor, q *ScheduleQuery) (*ScheduleListResponse, error)
	DueWithin(actor *Actor, companyID *uuid.UUID, days, page, pageSize int) (*ScheduleListResponse, error)
	Overdue(actor *Actor, companyID *uuid.UUID, page, pageSize int) (*ScheduleListResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error)
	Delete(actor *Actor, id uuid.UUID) error
	Complete(ctx context.Context, actor *Actor, id uuid.UUID, req *CompleteScheduleRequest) (*CompleteScheduleResponse, error)
}

// HistoryServiceInterface defines the interface for maintenance history service
type HistoryServiceInterface interface {
	Create(actor *Actor, req *CreateRecordRequest) (*MaintenanceRecordResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*MaintenanceRecordResponse, error)
	List(actor *Actor, q *HistoryQuery) (*HistoryListResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateRecordRequest) (*MaintenanceRecordResponse, error)
	Delete(actor *Actor, id uuid.UUID) error
	Monthly(actor *Actor, companyID *uuid.UUID, machineryID *uuid.UUID, months int) (*MonthlyHistoryResponse, error)
	CostSummary(actor *Actor, q *HistoryQuery) (*CostSummary, error)
	Export(actor *Actor, q *HistoryQuery) ([]byte, error)
}

// PartServiceInterface defines the interface for parts inventory service
type PartServiceInterface interface {
	Create(actor *Actor, req *CreatePartRequest) (*PartResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*PartResponse, error)
	List(actor *Actor, q *PartQuery) (*PartListResponse, error)
	LowStock(actor *Actor, companyID *uuid.UUID) ([]PartResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdatePartRequest) (*PartResponse, error)
	AdjustStock(ctx context.Context, actor *Actor, id uuid.UUID, req *AdjustStockRequest) (*PartResponse, error)
	Delete(actor *Actor, id uuid.UUID) error
	PriceTicker(actor *Actor, companyID *uuid.UUID) (*PriceTickerResponse, error)
	Export(actor *Actor, q *PartQuery) ([]byte, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(actor *Actor, req *CreateTaskRequest) (*TaskResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*TaskResponse, error)
	List(actor *Actor, q *TaskQuery) (*TaskListResponse, error)
	Board(actor *Actor, q *TaskQuery) (*BoardResponse, error)
	Update(actor *Actor, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	Move(actor *Actor, id uuid.UUID, req *StatusMoveRequest) (*TaskResponse, error)
	Delete(actor *Actor, id uuid.UUID) error
}

// CalendarEventServiceInterface defines the interface for calendar event service
type CalendarEventServiceInterface interface {
	Create(actor *Actor, req *CalendarEventRequest) (*CalendarEventResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*CalendarEventResponse, error)
	Range(actor *Actor, companyID *uuid.UUID, from, to time.Time) (*CalendarRangeResponse, error)
	Update(actor *Actor, id uuid.UUID, req *CalendarEventRequest) (*CalendarEventResponse, error)
	Delete(actor *Actor, id uuid.UUID) error
}

// BugReportServiceInterface defines the interface for bug report service
type BugReportServiceInterface interface {
	Create(ctx context.Context, actor *Actor, req *CreateBugReportRequest, screenshot *Upload) (*BugReportResponse, error)
	ListOwn(actor *Actor, status string, page, pageSize int) (*BugReportListResponse, error)
	ListAll(actor *Actor, status string, page, pageSize int) (*BugReportListResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*BugReportResponse, error)
	UpdateStatus(ctx context.Context, actor *Actor, id uuid.UUID, req *BugStatusRequest) (*BugReportResponse, error)
	ScreenshotURL(ctx context.Context, actor *Actor, id uuid.UUID) (*FileURLResponse, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
}

// TutorialVideoServiceInterface defines the interface for tutorial video service
type TutorialVideoServiceInterface interface {
	List(actor *Actor, category string) ([]TutorialVideoResponse, error)
	GetByID(actor *Actor, id uuid.UUID) (*TutorialVideoResponse, error)
	Create(req *TutorialVideoRequest) (*TutorialVideoResponse, error)
	Update(id uuid.UUID, req *TutorialVideoRequest) (*TutorialVideoResponse, error)
	Delete(id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Summary(actor *Actor, companyID *uuid.UUID) (*DashboardResponse, error)
}
