package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for kanban tasks
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

func taskQuery(c *gin.Context) (*service.TaskQuery, bool) {
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return nil, false
	}
	assigneeID, ok := queryUUID(c, "assignee_id")
	if !ok {
		return nil, false
	}
	orderID, ok := queryUUID(c, "service_order_id")
	if !ok {
		return nil, false
	}
	page, pageSize := pagination(c)

	return &service.TaskQuery{
		CompanyID:      companyID,
		Status:         c.Query("status"),
		AssigneeID:     assigneeID,
		ServiceOrderID: orderID,
		Page:           page,
		PageSize:       pageSize,
	}, true
}

// CreateTask handles POST /api/v1/tasks
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task"
// @Success 201 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	task, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/v1/tasks/:id
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	task, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks handles GET /api/v1/tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param status query string false "todo, in_progress, review or done"
// @Param assignee_id query string false "Assignee ID"
// @Param service_order_id query string false "Service order ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TaskListResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := taskQuery(c)
	if !ok {
		return
	}

	list, err := h.service.List(actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Board handles GET /api/v1/tasks/board
// @Summary Kanban board
// @Description Tasks grouped into the todo, in_progress, review and done columns
// @Tags tasks
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param assignee_id query string false "Assignee ID"
// @Param service_order_id query string false "Service order ID"
// @Success 200 {object} service.BoardResponse
// @Security BearerAuth
// @Router /tasks/board [get]
func (h *TaskHandler) Board(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := taskQuery(c)
	if !ok {
		return
	}

	board, err := h.service.Board(actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateTask handles PUT /api/v1/tasks/:id
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Task"
// @Success 200 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	task, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// MoveTask handles PATCH /api/v1/tasks/:id/status
// @Summary Move a task to another column
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param status body service.StatusMoveRequest true "Target column"
// @Success 200 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	var req service.StatusMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	task, err := h.service.Move(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
