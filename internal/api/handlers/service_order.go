package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for service orders
type ServiceOrderHandler struct {
	service service.ServiceOrderServiceInterface
}

// NewServiceOrderHandler creates a new service order handler
func NewServiceOrderHandler(service service.ServiceOrderServiceInterface) *ServiceOrderHandler {
	return &ServiceOrderHandler{service: service}
}

// CreateServiceOrder handles POST /api/v1/service-orders
// @Summary Open a service order
// @Description Creates the order together with its kanban task and calendar event
// @Tags service-orders
// @Accept json
// @Produce json
// @Param order body service.CreateServiceOrderRequest true "Service order"
// @Success 201 {object} service.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	order, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetServiceOrder handles GET /api/v1/service-orders/:id
// @Summary Get service order by ID
// @Tags service-orders
// @Produce json
// @Param id path string true "Service order ID (UUID)"
// @Success 200 {object} service.ServiceOrderResponse
// @Failure 404 {object} ErrorResponse "Service order not found"
// @Security BearerAuth
// @Router /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service order")
	if !ok {
		return
	}

	order, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListServiceOrders handles GET /api/v1/service-orders
// @Summary List service orders
// @Tags service-orders
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param status query string false "pending, in_progress, completed or cancelled"
// @Param priority query string false "low, medium, high or critical"
// @Param machinery_id query string false "Machinery ID"
// @Param assignee_id query string false "Assignee ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ServiceOrderListResponse
// @Security BearerAuth
// @Router /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
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
	assigneeID, ok := queryUUID(c, "assignee_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.List(actor, &service.ServiceOrderQuery{
		CompanyID:   companyID,
		Status:      c.Query("status"),
		Priority:    c.Query("priority"),
		MachineryID: machineryID,
		AssigneeID:  assigneeID,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateServiceOrder handles PUT /api/v1/service-orders/:id
// @Summary Update a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID (UUID)"
// @Param order body service.UpdateServiceOrderRequest true "Service order"
// @Success 200 {object} service.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Service order not found"
// @Security BearerAuth
// @Router /service-orders/{id} [put]
func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service order")
	if !ok {
		return
	}

	var req service.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	order, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// MoveServiceOrder handles PATCH /api/v1/service-orders/:id/status
// @Summary Move a service order to another status column
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID (UUID)"
// @Param status body service.StatusMoveRequest true "Target status"
// @Success 200 {object} service.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Service order not found"
// @Security BearerAuth
// @Router /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) MoveServiceOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service order")
	if !ok {
		return
	}

	var req service.StatusMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteServiceOrder handles DELETE /api/v1/service-orders/:id
// @Summary Delete a service order
// @Tags service-orders
// @Param id path string true "Service order ID (UUID)"
// @Success 204 "Service order deleted"
// @Failure 404 {object} ErrorResponse "Service order not found"
// @Security BearerAuth
// @Router /service-orders/{id} [delete]
func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service order")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
