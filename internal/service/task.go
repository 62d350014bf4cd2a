package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles the task kanban
type TaskService struct {
	tasks     repository.TaskRepositoryInterface
	orders    repository.ServiceOrderRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	tasks repository.TaskRepositoryInterface,
	orders repository.ServiceOrderRepositoryInterface,
	machinery repository.MachineryRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		tasks:     tasks,
		orders:    orders,
		machinery: machinery,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	CompanyID      *uuid.UUID `json:"company_id,omitempty"`
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status" validate:"required"`
	Priority    string     `json:"priority" validate:"required"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	MachineryID *uuid.UUID `json:"machinery_id,omitempty"`
}

// TaskQuery narrows a task listing
type TaskQuery struct {
	CompanyID      *uuid.UUID
	Status         string
	AssigneeID     *uuid.UUID
	ServiceOrderID *uuid.UUID
	Page           int
	PageSize       int
}

// TaskResponse represents a task
type TaskResponse struct {
	ID             uuid.UUID         `json:"id"`
	CompanyID      uuid.UUID         `json:"company_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         models.TaskStatus `json:"status"`
	Priority       models.Priority   `json:"priority"`
	AssigneeID     *uuid.UUID        `json:"assignee_id,omitempty"`
	DueDate        *string           `json:"due_date,omitempty"`
	ServiceOrderID *uuid.UUID        `json:"service_order_id,omitempty"`
	MachineryID    *uuid.UUID        `json:"machinery_id,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// BoardColumn is one kanban column
type BoardColumn struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
	Tasks  []TaskResponse    `json:"tasks"`
}

// BoardResponse is the kanban board with its columns in display order
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

// Create creates a task
func (s *TaskService) Create(actor *Actor, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.TaskStatusTodo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(companyID, req.AssigneeID, req.MachineryID); err != nil {
		return nil, err
	}
	if err := checkServiceOrderRef(s.orders, companyID, req.ServiceOrderID); err != nil {
		return nil, err
	}

	task := &models.Task{
		CompanyID:      companyID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		AssigneeID:     req.AssigneeID,
		DueDate:        utcPtr(req.DueDate),
		ServiceOrderID: req.ServiceOrderID,
		MachineryID:    req.MachineryID,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return toTaskResponse(task), nil
}

// GetByID retrieves a task visible to the actor
func (s *TaskService) GetByID(actor *Actor, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List retrieves tasks of a company
func (s *TaskService) List(actor *Actor, q *TaskQuery) (*TaskListResponse, error) {
	filter, err := s.filter(actor, q)
	if err != nil {
		return nil, err
	}
	page, pageSize, offset := normalizePage(q.Page, q.PageSize)

	tasks, total, err := s.tasks.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}
	return &TaskListResponse{Tasks: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Board groups a company's tasks into the kanban columns
func (s *TaskService) Board(actor *Actor, q *TaskQuery) (*BoardResponse, error) {
	filter, err := s.filter(actor, q)
	if err != nil {
		return nil, err
	}
	filter.Status = ""

	tasks, err := s.tasks.ListAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return &BoardResponse{Columns: GroupTasks(tasks)}, nil
}

// Update updates a task
func (s *TaskService) Update(actor *Actor, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.TaskStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	priority := models.Priority(req.Priority)
	if !priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	task, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(task.CompanyID, req.AssigneeID, req.MachineryID); err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = status
	task.Priority = priority
	task.AssigneeID = req.AssigneeID
	task.DueDate = utcPtr(req.DueDate)
	task.MachineryID = req.MachineryID

	if err := s.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return toTaskResponse(task), nil
}

// Move drops a task onto another column. Any status may follow any other.
func (s *TaskService) Move(actor *Actor, id uuid.UUID, req *StatusMoveRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.TaskStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	task, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to move task: %w", err)
	}
	task.Status = status
	return toTaskResponse(task), nil
}

// Delete deletes a task
func (s *TaskService) Delete(actor *Actor, id uuid.UUID) error {
	if _, err := s.load(actor, id); err != nil {
		return err
	}
	if err := s.tasks.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) filter(actor *Actor, q *TaskQuery) (repository.TaskFilter, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return repository.TaskFilter{}, err
	}
	status := models.TaskStatus(q.Status)
	if status != "" && !status.IsValid() {
		return repository.TaskFilter{}, apperrors.ErrInvalidStatus
	}
	return repository.TaskFilter{
		CompanyID:      companyID,
		Status:         status,
		AssigneeID:     q.AssigneeID,
		ServiceOrderID: q.ServiceOrderID,
	}, nil
}

func (s *TaskService) checkRefs(companyID uuid.UUID, assigneeID, machineryID *uuid.UUID) error {
	if err := checkAssigneeRef(s.profiles, companyID, assigneeID); err != nil {
		return err
	}
	return checkMachineryRef(s.machinery, companyID, machineryID)
}

func (s *TaskService) load(actor *Actor, id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !actor.CanAccess(task.CompanyID) {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func toTaskResponse(t *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		CompanyID:      t.CompanyID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		AssigneeID:     t.AssigneeID,
		DueDate:        formatTimePtr(t.DueDate),
		ServiceOrderID: t.ServiceOrderID,
		MachineryID:    t.MachineryID,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}
