package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the company dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard
// @Summary Company dashboard
// @Description Machinery, orders, schedules, stock and tasks counters plus month over month maintenance cost
// @Tags dashboard
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Success 200 {object} service.DashboardResponse
// @Failure 403 {object} ErrorResponse "No company assigned"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}

	summary, err := h.service.Summary(actor, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
