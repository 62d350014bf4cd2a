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

// defaultEventLength is used for the calendar event of an order without a scheduled end
const defaultEventLength = time.Hour

// ServiceOrderService handles service orders and their companion task and event
type ServiceOrderService struct {
	txr       repository.TransactorInterface
	orders    repository.ServiceOrderRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewServiceOrderService creates a new service order service
func NewServiceOrderService(
	txr repository.TransactorInterface,
	orders repository.ServiceOrderRepositoryInterface,
	machinery repository.MachineryRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	validator *validator.Validate,
) *ServiceOrderService {
	return &ServiceOrderService{
		txr:       txr,
		orders:    orders,
		machinery: machinery,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateServiceOrderRequest represents the request to open a service order
type CreateServiceOrderRequest struct {
	CompanyID      *uuid.UUID `json:"company_id,omitempty"`
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty"`
	Type           string     `json:"type" validate:"required"`
	Priority       string     `json:"priority,omitempty"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	EstimatedCost  float64    `json:"estimated_cost" validate:"min=0"`
}

// UpdateServiceOrderRequest represents the request to update a service order
type UpdateServiceOrderRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty"`
	Type           string     `json:"type" validate:"required"`
	Priority       string     `json:"priority" validate:"required"`
	Status         string     `json:"status" validate:"required"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	EstimatedCost  float64    `json:"estimated_cost" validate:"min=0"`
	ActualCost     float64    `json:"actual_cost" validate:"min=0"`
}

// StatusMoveRequest represents a kanban drop onto another column
type StatusMoveRequest struct {
	Status string `json:"status" validate:"required"`
}

// ServiceOrderQuery narrows a service order listing
type ServiceOrderQuery struct {
	CompanyID   *uuid.UUID
	Status      string
	Priority    string
	MachineryID *uuid.UUID
	AssigneeID  *uuid.UUID
	Page        int
	PageSize    int
}

// ServiceOrderResponse represents a service order
type ServiceOrderResponse struct {
	ID             uuid.UUID                 `json:"id"`
	CompanyID      uuid.UUID                 `json:"company_id"`
	OrderNumber    string                    `json:"order_number"`
	Title          string                    `json:"title"`
	Description    string                    `json:"description"`
	MachineryID    *uuid.UUID                `json:"machinery_id,omitempty"`
	MachineryName  string                    `json:"machinery_name,omitempty"`
	Type           models.MaintenanceType    `json:"type"`
	Priority       models.Priority           `json:"priority"`
	Status         models.ServiceOrderStatus `json:"status"`
	AssigneeID     *uuid.UUID                `json:"assignee_id,omitempty"`
	AssigneeName   string                    `json:"assignee_name,omitempty"`
	RequestedByID  *uuid.UUID                `json:"requested_by_id,omitempty"`
	ScheduledStart *string                   `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string                   `json:"scheduled_end,omitempty"`
	CompletedAt    *string                   `json:"completed_at,omitempty"`
	EstimatedCost  float64                   `json:"estimated_cost"`
	ActualCost     float64                   `json:"actual_cost"`
	TaskID         *uuid.UUID                `json:"task_id,omitempty"`
	EventID        *uuid.UUID                `json:"event_id,omitempty"`
	CreatedAt      string                    `json:"created_at"`
	UpdatedAt      string                    `json:"updated_at"`
}

// ServiceOrderListResponse represents a paginated list of service orders
type ServiceOrderListResponse struct {
	ServiceOrders []ServiceOrderResponse `json:"service_orders"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create opens a service order together with its kanban task and, when the
// order is scheduled, a calendar event spanning the window. All rows are
// written in one transaction.
func (s *ServiceOrderService) Create(ctx context.Context, actor *Actor, req *CreateServiceOrderRequest) (*ServiceOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	orderType := models.MaintenanceType(req.Type)
	if !orderType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid maintenance type")
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}
	if err := checkWindow(req.ScheduledStart, req.ScheduledEnd); err != nil {
		return nil, err
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := checkMachineryRef(s.machinery, companyID, req.MachineryID); err != nil {
		return nil, err
	}
	if err := checkAssigneeRef(s.profiles, companyID, req.AssigneeID); err != nil {
		return nil, err
	}

	requester := actor.UserID
	order := &models.ServiceOrder{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CompanyID:      companyID,
		Title:          req.Title,
		Description:    req.Description,
		MachineryID:    req.MachineryID,
		Type:           orderType,
		Priority:       priority,
		Status:         models.ServiceOrderStatusPending,
		AssigneeID:     req.AssigneeID,
		RequestedByID:  &requester,
		ScheduledStart: utcPtr(req.ScheduledStart),
		ScheduledEnd:   utcPtr(req.ScheduledEnd),
		EstimatedCost:  req.EstimatedCost,
	}

	var task *models.Task
	var event *models.CalendarEvent
	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		seq, err := repos.ServiceOrders.NextSequence(companyID)
		if err != nil {
			return fmt.Errorf("failed to allocate order number: %w", err)
		}
		order.OrderSeq = seq
		order.OrderNumber = models.FormatOrderNumber(seq)
		if err := repos.ServiceOrders.Create(order); err != nil {
			return fmt.Errorf("failed to create service order: %w", err)
		}

		task = companionTask(order)
		if err := repos.Tasks.Create(task); err != nil {
			return fmt.Errorf("failed to create service order task: %w", err)
		}

		event = companionEvent(order, requester)
		if event != nil {
			if err := repos.Events.Create(event); err != nil {
				return fmt.Errorf("failed to create service order event: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"order_number": order.OrderNumber,
		"priority":     order.Priority,
	}).Info("Service order created")

	resp := toServiceOrderResponse(order)
	resp.TaskID = &task.ID
	if event != nil {
		resp.EventID = &event.ID
	}
	return resp, nil
}

// GetByID retrieves a service order visible to the actor
func (s *ServiceOrderService) GetByID(actor *Actor, id uuid.UUID) (*ServiceOrderResponse, error) {
	order, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toServiceOrderResponse(order), nil
}

// List retrieves service orders of a company
func (s *ServiceOrderService) List(actor *Actor, q *ServiceOrderQuery) (*ServiceOrderListResponse, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	status := models.ServiceOrderStatus(q.Status)
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	priority := models.Priority(q.Priority)
	if priority != "" && !priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}
	page, pageSize, offset := normalizePage(q.Page, q.PageSize)

	orders, total, err := s.orders.List(repository.ServiceOrderFilter{
		CompanyID:   companyID,
		Status:      status,
		Priority:    priority,
		MachineryID: q.MachineryID,
		AssigneeID:  q.AssigneeID,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}

	responses := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *toServiceOrderResponse(&orders[i])
	}
	return &ServiceOrderListResponse{ServiceOrders: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a service order. The last write wins.
func (s *ServiceOrderService) Update(actor *Actor, id uuid.UUID, req *UpdateServiceOrderRequest) (*ServiceOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	orderType := models.MaintenanceType(req.Type)
	if !orderType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid maintenance type")
	}
	priority := models.Priority(req.Priority)
	if !priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}
	status := models.ServiceOrderStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if err := checkWindow(req.ScheduledStart, req.ScheduledEnd); err != nil {
		return nil, err
	}

	order, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := checkMachineryRef(s.machinery, order.CompanyID, req.MachineryID); err != nil {
		return nil, err
	}
	if err := checkAssigneeRef(s.profiles, order.CompanyID, req.AssigneeID); err != nil {
		return nil, err
	}

	order.Title = req.Title
	order.Description = req.Description
	order.MachineryID = req.MachineryID
	order.Type = orderType
	order.Priority = priority
	order.CompletedAt = completionStamp(order.Status, status, order.CompletedAt)
	order.Status = status
	order.AssigneeID = req.AssigneeID
	order.ScheduledStart = utcPtr(req.ScheduledStart)
	order.ScheduledEnd = utcPtr(req.ScheduledEnd)
	order.EstimatedCost = req.EstimatedCost
	order.ActualCost = req.ActualCost
	order.Machinery = nil
	order.Assignee = nil

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update service order: %w", err)
	}
	return toServiceOrderResponse(order), nil
}

// UpdateStatus moves a service order to any status
func (s *ServiceOrderService) UpdateStatus(actor *Actor, id uuid.UUID, req *StatusMoveRequest) (*ServiceOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.ServiceOrderStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	order, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}

	completedAt := completionStamp(order.Status, status, order.CompletedAt)
	if err := s.orders.UpdateStatus(id, status, completedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("failed to move service order: %w", err)
	}
	order.Status = status
	order.CompletedAt = completedAt
	return toServiceOrderResponse(order), nil
}

// Delete removes a service order with its companion task and events
func (s *ServiceOrderService) Delete(ctx context.Context, actor *Actor, id uuid.UUID) error {
	order, err := s.load(actor, id)
	if err != nil {
		return err
	}

	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.Tasks.DeleteByServiceOrderID(id); err != nil {
			return fmt.Errorf("failed to delete service order tasks: %w", err)
		}
		if err := repos.Events.DeleteByServiceOrderID(id); err != nil {
			return fmt.Errorf("failed to delete service order events: %w", err)
		}
		if err := repos.ServiceOrders.Delete(id); err != nil {
			return fmt.Errorf("failed to delete service order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("order_number", order.OrderNumber).Info("Service order deleted")
	return nil
}

func (s *ServiceOrderService) load(actor *Actor, id uuid.UUID) (*models.ServiceOrder, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}
	if !actor.CanAccess(order.CompanyID) {
		return nil, apperrors.ErrServiceOrderNotFound
	}
	return order, nil
}

// completionStamp keeps completed_at in step with the status: set when an
// order reaches completed, cleared when it leaves it.
func completionStamp(from, to models.ServiceOrderStatus, current *time.Time) *time.Time {
	if to != models.ServiceOrderStatusCompleted {
		return nil
	}
	if from == models.ServiceOrderStatusCompleted && current != nil {
		return current
	}
	now := nowFunc()
	return &now
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func companionTask(order *models.ServiceOrder) *models.Task {
	due := order.ScheduledEnd
	if due == nil {
		due = order.ScheduledStart
	}
	orderID := order.ID
	return &models.Task{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CompanyID:      order.CompanyID,
		Title:          order.OrderNumber + " " + order.Title,
		Description:    order.Description,
		Status:         models.TaskStatusTodo,
		Priority:       order.Priority,
		AssigneeID:     order.AssigneeID,
		DueDate:        due,
		ServiceOrderID: &orderID,
		MachineryID:    order.MachineryID,
	}
}

func companionEvent(order *models.ServiceOrder, createdBy uuid.UUID) *models.CalendarEvent {
	if order.ScheduledStart == nil {
		return nil
	}
	start := *order.ScheduledStart
	end := start.Add(defaultEventLength)
	if order.ScheduledEnd != nil {
		end = *order.ScheduledEnd
	}
	orderID := order.ID
	return &models.CalendarEvent{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CompanyID:      order.CompanyID,
		Title:          order.OrderNumber + " " + order.Title,
		Description:    order.Description,
		Start:          start,
		End:            end,
		Type:           models.EventTypeServiceOrder,
		MachineryID:    order.MachineryID,
		ServiceOrderID: &orderID,
		CreatedByID:    &createdBy,
	}
}

func toServiceOrderResponse(o *models.ServiceOrder) *ServiceOrderResponse {
	resp := &ServiceOrderResponse{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		OrderNumber:    o.OrderNumber,
		Title:          o.Title,
		Description:    o.Description,
		MachineryID:    o.MachineryID,
		Type:           o.Type,
		Priority:       o.Priority,
		Status:         o.Status,
		AssigneeID:     o.AssigneeID,
		RequestedByID:  o.RequestedByID,
		ScheduledStart: formatTimePtr(o.ScheduledStart),
		ScheduledEnd:   formatTimePtr(o.ScheduledEnd),
		CompletedAt:    formatTimePtr(o.CompletedAt),
		EstimatedCost:  o.EstimatedCost,
		ActualCost:     o.ActualCost,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
	if o.Machinery != nil {
		resp.MachineryName = o.Machinery.Name
	}
	if o.Assignee != nil {
		resp.AssigneeName = o.Assignee.FullName
	}
	return resp
}
