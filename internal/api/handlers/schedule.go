package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for maintenance schedules
type ScheduleHandler struct {
	service service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// CreateSchedule handles POST /api/v1/schedules
// @Summary Create a maintenance schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateScheduleRequest true "Schedule"
// @Success 201 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	schedule, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedule handles GET /api/v1/schedules/:id
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ScheduleResponse
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "schedule")
	if !ok {
		return
	}

	schedule, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListSchedules handles GET /api/v1/schedules
// @Summary List maintenance schedules
// @Tags schedules
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param machinery_id query string false "Machinery ID"
// @Param active query bool false "Only active schedules"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ScheduleListResponse
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	machineryID, ok := queryUUID(c, "machinery_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.List(actor, &service.ScheduleQuery{
		CompanyID:   companyID,
		MachineryID: machineryID,
		ActiveOnly:  c.Query("active") == "true",
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListDue handles GET /api/v1/schedules/due
// @Summary List schedules due within N days
// @Tags schedules
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param days query int false "Window in days" default(7)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ScheduleListResponse
// @Failure 400 {object} ErrorResponse "Invalid days"
// @Security BearerAuth
// @Router /schedules/due [get]
func (h *ScheduleHandler) ListDue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	days, ok := queryInt(c, "days", 7)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.DueWithin(actor, companyID, days, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListOverdue handles GET /api/v1/schedules/overdue
// @Summary List overdue schedules
// @Tags schedules
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ScheduleListResponse
// @Security BearerAuth
// @Router /schedules/overdue [get]
func (h *ScheduleHandler) ListOverdue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.Overdue(actor, companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateSchedule handles PUT /api/v1/schedules/:id
// @Summary Update a maintenance schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param schedule body service.UpdateScheduleRequest true "Schedule"
// @Success 200 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "schedule")
	if !ok {
		return
	}

	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	schedule, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /api/v1/schedules/:id
// @Summary Delete a maintenance schedule
// @Tags schedules
// @Param id path string true "Schedule ID (UUID)"
// @Success 204 "Schedule deleted"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "schedule")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteSchedule handles POST /api/v1/schedules/:id/complete
// @Summary Record that scheduled maintenance was performed
// @Description Writes a history entry and advances the next due date by one frequency step
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param completion body service.CompleteScheduleRequest false "Completion details"
// @Success 200 {object} service.CompleteScheduleResponse
// @Failure 400 {object} ErrorResponse "Invalid request or inactive schedule"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id}/complete [post]
func (h *ScheduleHandler) CompleteSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "schedule")
	if !ok {
		return
	}

	var req service.CompleteScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return
		}
	}

	result, err := h.service.Complete(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
