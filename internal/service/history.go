package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/export"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultHistoryMonths = 12
	maxHistoryMonths     = 36
)

// HistoryService handles the maintenance history and its aggregations
type HistoryService struct {
	repo      repository.MaintenanceRecordRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	schedules repository.MaintenanceScheduleRepositoryInterface
	orders    repository.ServiceOrderRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewHistoryService creates a new maintenance history service
func NewHistoryService(
	repo repository.MaintenanceRecordRepositoryInterface,
	machinery repository.MachineryRepositoryInterface,
	schedules repository.MaintenanceScheduleRepositoryInterface,
	orders repository.ServiceOrderRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	validator *validator.Validate,
) *HistoryService {
	return &HistoryService{
		repo:      repo,
		machinery: machinery,
		schedules: schedules,
		orders:    orders,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateRecordRequest represents a maintenance history entry
type CreateRecordRequest struct {
	CompanyID      *uuid.UUID `json:"company_id,omitempty"`
	MachineryID    uuid.UUID  `json:"machinery_id" validate:"required"`
	ScheduleID     *uuid.UUID `json:"schedule_id,omitempty"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty"`
	PerformedAt    *time.Time `json:"performed_at,omitempty"`
	PerformedByID  *uuid.UUID `json:"performed_by_id,omitempty"`
	Type           string     `json:"type" validate:"required"`
	Description    string     `json:"description,omitempty"`
	Cost           float64    `json:"cost" validate:"min=0"`
	DowntimeHours  float64    `json:"downtime_hours" validate:"min=0"`
}

// UpdateRecordRequest represents the update of a history entry
type UpdateRecordRequest struct {
	PerformedAt   time.Time  `json:"performed_at"`
	PerformedByID *uuid.UUID `json:"performed_by_id,omitempty"`
	Type          string     `json:"type" validate:"required"`
	Description   string     `json:"description,omitempty"`
	Cost          float64    `json:"cost" validate:"min=0"`
	DowntimeHours float64    `json:"downtime_hours" validate:"min=0"`
}

// HistoryQuery narrows a history listing
type HistoryQuery struct {
	CompanyID   *uuid.UUID
	MachineryID *uuid.UUID
	From        *time.Time
	To          *time.Time
	Page        int
	PageSize    int
}

// MaintenanceRecordResponse represents a history entry
type MaintenanceRecordResponse struct {
	ID             uuid.UUID              `json:"id"`
	CompanyID      uuid.UUID              `json:"company_id"`
	MachineryID    uuid.UUID              `json:"machinery_id"`
	MachineryName  string                 `json:"machinery_name,omitempty"`
	ScheduleID     *uuid.UUID             `json:"schedule_id,omitempty"`
	ServiceOrderID *uuid.UUID             `json:"service_order_id,omitempty"`
	PerformedAt    string                 `json:"performed_at"`
	PerformedByID  *uuid.UUID             `json:"performed_by_id,omitempty"`
	Type           models.MaintenanceType `json:"type"`
	Description    string                 `json:"description"`
	Cost           float64                `json:"cost"`
	DowntimeHours  float64                `json:"downtime_hours"`
	CreatedAt      string                 `json:"created_at"`
}

// HistoryListResponse represents a paginated list of history entries
type HistoryListResponse struct {
	Records  []MaintenanceRecordResponse `json:"records"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
}

// MonthlyHistoryResponse is the monthly maintenance chart
type MonthlyHistoryResponse struct {
	Months []MonthlyBucket `json:"months"`
}

// Create records a maintenance activity
func (s *HistoryService) Create(actor *Actor, req *CreateRecordRequest) (*MaintenanceRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	recordType := models.MaintenanceType(req.Type)
	if !recordType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid maintenance type")
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := checkMachineryRef(s.machinery, companyID, &req.MachineryID); err != nil {
		return nil, err
	}
	if err := checkScheduleRef(s.schedules, companyID, req.MachineryID, req.ScheduleID); err != nil {
		return nil, err
	}
	if err := checkServiceOrderRef(s.orders, companyID, req.ServiceOrderID); err != nil {
		return nil, err
	}
	if err := checkMemberRef(s.profiles, companyID, req.PerformedByID, "performed_by_id", "performer"); err != nil {
		return nil, err
	}

	performedAt := nowFunc()
	if req.PerformedAt != nil {
		performedAt = req.PerformedAt.UTC()
	}
	performedBy := req.PerformedByID
	if performedBy == nil {
		id := actor.UserID
		performedBy = &id
	}

	record := &models.MaintenanceRecord{
		CompanyID:      companyID,
		MachineryID:    req.MachineryID,
		ScheduleID:     req.ScheduleID,
		ServiceOrderID: req.ServiceOrderID,
		PerformedAt:    performedAt,
		PerformedByID:  performedBy,
		Type:           recordType,
		Description:    req.Description,
		Cost:           req.Cost,
		DowntimeHours:  req.DowntimeHours,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return toRecordResponse(record), nil
}

// GetByID retrieves a history entry visible to the actor
func (s *HistoryService) GetByID(actor *Actor, id uuid.UUID) (*MaintenanceRecordResponse, error) {
	record, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// List retrieves history entries, most recent first
func (s *HistoryService) List(actor *Actor, q *HistoryQuery) (*HistoryListResponse, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(q.From, q.To); err != nil {
		return nil, err
	}
	page, pageSize, offset := normalizePage(q.Page, q.PageSize)

	records, total, err := s.repo.List(repository.HistoryFilter{
		CompanyID:   companyID,
		MachineryID: q.MachineryID,
		From:        q.From,
		To:          q.To,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance history: %w", err)
	}

	responses := make([]MaintenanceRecordResponse, len(records))
	for i := range records {
		responses[i] = *toRecordResponse(&records[i])
	}
	return &HistoryListResponse{Records: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a history entry
func (s *HistoryService) Update(actor *Actor, id uuid.UUID, req *UpdateRecordRequest) (*MaintenanceRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	recordType := models.MaintenanceType(req.Type)
	if !recordType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid maintenance type")
	}
	if req.PerformedAt.IsZero() {
		return nil, apperrors.NewValidationError("performed_at", "performed_at is required")
	}

	record, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := checkMemberRef(s.profiles, record.CompanyID, req.PerformedByID, "performed_by_id", "performer"); err != nil {
		return nil, err
	}
	record.PerformedAt = req.PerformedAt.UTC()
	record.PerformedByID = req.PerformedByID
	record.Type = recordType
	record.Description = req.Description
	record.Cost = req.Cost
	record.DowntimeHours = req.DowntimeHours

	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update maintenance record: %w", err)
	}
	return toRecordResponse(record), nil
}

// Delete deletes a history entry
func (s *HistoryService) Delete(actor *Actor, id uuid.UUID) error {
	if _, err := s.load(actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete maintenance record: %w", err)
	}
	return nil
}

// Monthly returns one bucket per calendar month for the last months months
func (s *HistoryService) Monthly(actor *Actor, companyID *uuid.UUID, machineryID *uuid.UUID, months int) (*MonthlyHistoryResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	if months <= 0 {
		months = defaultHistoryMonths
	}
	if months > maxHistoryMonths {
		return nil, apperrors.NewValidationError("months", fmt.Sprintf("months must not exceed %d", maxHistoryMonths))
	}

	now := nowFunc()
	from := monthStart(now).AddDate(0, -(months - 1), 0)
	to := monthStart(now).AddDate(0, 1, 0)
	records, err := s.repo.ListAll(repository.HistoryFilter{
		CompanyID:   scope,
		MachineryID: machineryID,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance history: %w", err)
	}
	return &MonthlyHistoryResponse{Months: MonthlyBuckets(records, now, months)}, nil
}

// CostSummary totals maintenance costs over an optional date range
func (s *HistoryService) CostSummary(actor *Actor, q *HistoryQuery) (*CostSummary, error) {
	records, err := s.listAll(actor, q)
	if err != nil {
		return nil, err
	}
	return SummarizeCosts(records), nil
}

// Export renders the history of a date range as a spreadsheet
func (s *HistoryService) Export(actor *Actor, q *HistoryQuery) ([]byte, error) {
	records, err := s.listAll(actor, q)
	if err != nil {
		return nil, err
	}
	data, err := export.HistoryWorkbook(records)
	if err != nil {
		return nil, fmt.Errorf("failed to export maintenance history: %w", err)
	}
	return data, nil
}

func (s *HistoryService) listAll(actor *Actor, q *HistoryQuery) ([]models.MaintenanceRecord, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(q.From, q.To); err != nil {
		return nil, err
	}
	records, err := s.repo.ListAll(repository.HistoryFilter{
		CompanyID:   companyID,
		MachineryID: q.MachineryID,
		From:        q.From,
		To:          q.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance history: %w", err)
	}
	return records, nil
}

func (s *HistoryService) load(actor *Actor, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceRecordNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}
	if !actor.CanAccess(record.CompanyID) {
		return nil, apperrors.ErrMaintenanceRecordNotFound
	}
	return record, nil
}

func toRecordResponse(r *models.MaintenanceRecord) *MaintenanceRecordResponse {
	resp := &MaintenanceRecordResponse{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		MachineryID:    r.MachineryID,
		ScheduleID:     r.ScheduleID,
		ServiceOrderID: r.ServiceOrderID,
		PerformedAt:    formatTime(r.PerformedAt),
		PerformedByID:  r.PerformedByID,
		Type:           r.Type,
		Description:    r.Description,
		Cost:           r.Cost,
		DowntimeHours:  r.DowntimeHours,
		CreatedAt:      formatTime(r.CreatedAt),
	}
	if r.Machinery != nil {
		resp.MachineryName = r.Machinery.Name
	}
	return resp
}
