package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultDueWithinDays = 7
	maxDueWithinDays     = 365
)

// ScheduleService handles preventive maintenance schedules
type ScheduleService struct {
	txr       repository.TransactorInterface
	schedules repository.MaintenanceScheduleRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	orders    repository.ServiceOrderRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	txr repository.TransactorInterface,
	schedules repository.MaintenanceScheduleRepositoryInterface,
	machinery repository.MachineryRepositoryInterface,
	orders repository.ServiceOrderRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	validator *validator.Validate,
) *ScheduleService {
	return &ScheduleService{
		txr:       txr,
		schedules: schedules,
		machinery: machinery,
		orders:    orders,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateScheduleRequest represents the request to create a schedule
type CreateScheduleRequest struct {
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	MachineryID uuid.UUID  `json:"machinery_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Frequency   string     `json:"frequency" validate:"required"`
	NextDueDate time.Time  `json:"next_due_date"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// UpdateScheduleRequest represents the request to update a schedule
type UpdateScheduleRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Frequency   string     `json:"frequency" validate:"required"`
	NextDueDate time.Time  `json:"next_due_date"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// CompleteScheduleRequest records that scheduled maintenance was performed
type CompleteScheduleRequest struct {
	PerformedAt    *time.Time `json:"performed_at,omitempty"`
	Type           string     `json:"type,omitempty"`
	Description    string     `json:"description,omitempty"`
	Cost           float64    `json:"cost" validate:"min=0"`
	DowntimeHours  float64    `json:"downtime_hours" validate:"min=0"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty"`
}

// ScheduleQuery narrows a schedule listing
type ScheduleQuery struct {
	CompanyID   *uuid.UUID
	MachineryID *uuid.UUID
	ActiveOnly  bool
	Page        int
	PageSize    int
}

// ScheduleResponse represents a maintenance schedule
type ScheduleResponse struct {
	ID              uuid.UUID        `json:"id"`
	CompanyID       uuid.UUID        `json:"company_id"`
	MachineryID     uuid.UUID        `json:"machinery_id"`
	MachineryName   string           `json:"machinery_name,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Frequency       models.Frequency `json:"frequency"`
	NextDueDate     string           `json:"next_due_date"`
	LastPerformedAt *string          `json:"last_performed_at,omitempty"`
	AssigneeID      *uuid.UUID       `json:"assignee_id,omitempty"`
	IsActive        bool             `json:"is_active"`
	Overdue         bool             `json:"overdue"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

// ScheduleListResponse represents a paginated list of schedules
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CompleteScheduleResponse carries the advanced schedule and the new history entry
type CompleteScheduleResponse struct {
	Schedule ScheduleResponse          `json:"schedule"`
	Record   MaintenanceRecordResponse `json:"record"`
}

// Create creates a maintenance schedule for a machine
func (s *ScheduleService) Create(actor *Actor, req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	frequency := models.Frequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, apperrors.ErrInvalidFrequency
	}
	if req.NextDueDate.IsZero() {
		return nil, apperrors.NewValidationError("next_due_date", "next_due_date is required")
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := checkMachineryRef(s.machinery, companyID, &req.MachineryID); err != nil {
		return nil, err
	}
	if err := checkAssigneeRef(s.profiles, companyID, req.AssigneeID); err != nil {
		return nil, err
	}

	schedule := &models.MaintenanceSchedule{
		CompanyID:   companyID,
		MachineryID: req.MachineryID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   frequency,
		NextDueDate: req.NextDueDate.UTC(),
		AssigneeID:  req.AssigneeID,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.schedules.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return toScheduleResponse(schedule, nowFunc()), nil
}

// GetByID retrieves a schedule visible to the actor
func (s *ScheduleService) GetByID(actor *Actor, id uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule, nowFunc()), nil
}

// List retrieves schedules ordered by due date
func (s *ScheduleService) List(actor *Actor, q *ScheduleQuery) (*ScheduleListResponse, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	return s.list(repository.ScheduleFilter{
		CompanyID:   companyID,
		MachineryID: q.MachineryID,
		ActiveOnly:  q.ActiveOnly,
	}, q.Page, q.PageSize)
}

// DueWithin lists active schedules due in the next days days, overdue ones included
func (s *ScheduleService) DueWithin(actor *Actor, companyID *uuid.UUID, days, page, pageSize int) (*ScheduleListResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = defaultDueWithinDays
	}
	if days > maxDueWithinDays {
		return nil, apperrors.NewValidationError("days", fmt.Sprintf("days must not exceed %d", maxDueWithinDays))
	}
	before := nowFunc().AddDate(0, 0, days)
	return s.list(repository.ScheduleFilter{CompanyID: scope, ActiveOnly: true, DueBefore: &before}, page, pageSize)
}

// Overdue lists active schedules whose due date has passed
func (s *ScheduleService) Overdue(actor *Actor, companyID *uuid.UUID, page, pageSize int) (*ScheduleListResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	now := nowFunc()
	return s.list(repository.ScheduleFilter{CompanyID: scope, ActiveOnly: true, DueBefore: &now}, page, pageSize)
}

// Update updates a schedule
func (s *ScheduleService) Update(actor *Actor, id uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	frequency := models.Frequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, apperrors.ErrInvalidFrequency
	}
	if req.NextDueDate.IsZero() {
		return nil, apperrors.NewValidationError("next_due_date", "next_due_date is required")
	}

	schedule, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := checkAssigneeRef(s.profiles, schedule.CompanyID, req.AssigneeID); err != nil {
		return nil, err
	}

	schedule.Title = req.Title
	schedule.Description = req.Description
	schedule.Frequency = frequency
	schedule.NextDueDate = req.NextDueDate.UTC()
	schedule.AssigneeID = req.AssigneeID
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := s.schedules.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return toScheduleResponse(schedule, nowFunc()), nil
}

// Delete deletes a schedule
func (s *ScheduleService) Delete(actor *Actor, id uuid.UUID) error {
	if _, err := s.load(actor, id); err != nil {
		return err
	}
	if err := s.schedules.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// Complete writes a history entry for the schedule and moves its next due
// date one frequency step past the performed date, in one transaction.
func (s *ScheduleService) Complete(ctx context.Context, actor *Actor, id uuid.UUID, req *CompleteScheduleRequest) (*CompleteScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	recordType := models.MaintenanceTypePreventive
	if req.Type != "" {
		recordType = models.MaintenanceType(req.Type)
		if !recordType.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid maintenance type")
		}
	}

	schedule, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if !schedule.IsActive {
		return nil, apperrors.NewValidationError("schedule", "schedule is inactive")
	}
	if err := checkServiceOrderRef(s.orders, schedule.CompanyID, req.ServiceOrderID); err != nil {
		return nil, err
	}

	now := nowFunc()
	performedAt := now
	if req.PerformedAt != nil {
		performedAt = req.PerformedAt.UTC()
	}
	if performedAt.After(now) {
		return nil, apperrors.NewValidationError("performed_at", "performed_at cannot be in the future")
	}

	performedBy := actor.UserID
	scheduleID := schedule.ID
	description := req.Description
	if description == "" {
		description = schedule.Title
	}
	record := &models.MaintenanceRecord{
		CompanyID:      schedule.CompanyID,
		MachineryID:    schedule.MachineryID,
		ScheduleID:     &scheduleID,
		ServiceOrderID: req.ServiceOrderID,
		PerformedAt:    performedAt,
		PerformedByID:  &performedBy,
		Type:           recordType,
		Description:    description,
		Cost:           req.Cost,
		DowntimeHours:  req.DowntimeHours,
	}
	schedule.LastPerformedAt = &performedAt
	schedule.NextDueDate = schedule.Frequency.Next(performedAt)

	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.History.Create(record); err != nil {
			return fmt.Errorf("failed to record maintenance: %w", err)
		}
		if err := repos.Schedules.Update(schedule); err != nil {
			return fmt.Errorf("failed to advance schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"schedule_id":   schedule.ID,
		"next_due_date": formatTime(schedule.NextDueDate),
	}).Info("Maintenance schedule completed")

	record.Machinery = schedule.Machinery
	return &CompleteScheduleResponse{
		Schedule: *toScheduleResponse(schedule, now),
		Record:   *toRecordResponse(record),
	}, nil
}

func (s *ScheduleService) list(filter repository.ScheduleFilter, page, pageSize int) (*ScheduleListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)
	schedules, total, err := s.schedules.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	now := nowFunc()
	responses := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *toScheduleResponse(&schedules[i], now)
	}
	return &ScheduleListResponse{Schedules: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *ScheduleService) load(actor *Actor, id uuid.UUID) (*models.MaintenanceSchedule, error) {
	schedule, err := s.schedules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if !actor.CanAccess(schedule.CompanyID) {
		return nil, apperrors.ErrMaintenanceScheduleNotFound
	}
	return schedule, nil
}

func toScheduleResponse(s *models.MaintenanceSchedule, now time.Time) *ScheduleResponse {
	resp := &ScheduleResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		MachineryID:     s.MachineryID,
		Title:           s.Title,
		Description:     s.Description,
		Frequency:       s.Frequency,
		NextDueDate:     formatTime(s.NextDueDate),
		LastPerformedAt: formatTimePtr(s.LastPerformedAt),
		AssigneeID:      s.AssigneeID,
		IsActive:        s.IsActive,
		Overdue:         s.IsActive && s.NextDueDate.Before(now),
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
	if s.Machinery != nil {
		resp.MachineryName = s.Machinery.Name
	}
	return resp
}
