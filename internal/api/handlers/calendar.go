package handlers

import (
	"net/http"
	"time"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar events
type CalendarHandler struct {
	service service.CalendarEventServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service service.CalendarEventServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// CreateEvent handles POST /api/v1/calendar/events
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body service.CalendarEventRequest true "Event"
// @Success 201 {object} service.CalendarEventResponse
// @Failure 400 {object} ErrorResponse "Invalid request or end before start"
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	event, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /api/v1/calendar/events/:id
// @Summary Get calendar event by ID
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.CalendarEventResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [get]
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	event, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents handles GET /api/v1/calendar/events
// @Summary List events overlapping a time range
// @Description Defaults to the current calendar month
// @Tags calendar
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param from query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} service.CalendarRangeResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	from, ok := queryTime(c, "from")
	if !ok {
		return
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if from != nil {
		start = *from
	}
	end := start.AddDate(0, 1, 0)
	if to != nil {
		end = *to
	}

	events, err := h.service.Range(actor, companyID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /api/v1/calendar/events/:id
// @Summary Update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.CalendarEventRequest true "Event"
// @Success 200 {object} service.CalendarEventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req service.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	event, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/calendar/events/:id
// @Summary Delete a calendar event
// @Tags calendar
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Event deleted"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
