package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles HTTP requests for maintenance history
type HistoryHandler struct {
	service service.HistoryServiceInterface
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service service.HistoryServiceInterface) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// historyQuery reads the shared filters of the history endpoints
func historyQuery(c *gin.Context) (*service.HistoryQuery, bool) {
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return nil, false
	}
	machineryID, ok := queryUUID(c, "machinery_id")
	if !ok {
		return nil, false
	}
	from, ok := queryTime(c, "from")
	if !ok {
		return nil, false
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return nil, false
	}
	page, pageSize := pagination(c)

	return &service.HistoryQuery{
		CompanyID:   companyID,
		MachineryID: machineryID,
		From:        from,
		To:          to,
		Page:        page,
		PageSize:    pageSize,
	}, true
}

// CreateRecord handles POST /api/v1/history
// @Summary Record performed maintenance
// @Tags history
// @Accept json
// @Produce json
// @Param record body service.CreateRecordRequest true "History entry"
// @Success 201 {object} service.MaintenanceRecordResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /history [post]
func (h *HistoryHandler) CreateRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	record, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecord handles GET /api/v1/history/:id
// @Summary Get history entry by ID
// @Tags history
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.MaintenanceRecordResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /history/{id} [get]
func (h *HistoryHandler) GetRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "record")
	if !ok {
		return
	}

	record, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListRecords handles GET /api/v1/history
// @Summary List maintenance history
// @Tags history
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param machinery_id query string false "Machinery ID"
// @Param from query string false "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "End date (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.HistoryListResponse
// @Security BearerAuth
// @Router /history [get]
func (h *HistoryHandler) ListRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := historyQuery(c)
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

// UpdateRecord handles PUT /api/v1/history/:id
// @Summary Update a history entry
// @Tags history
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param record body service.UpdateRecordRequest true "History entry"
// @Success 200 {object} service.MaintenanceRecordResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /history/{id} [put]
func (h *HistoryHandler) UpdateRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "record")
	if !ok {
		return
	}

	var req service.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	record, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/v1/history/:id
// @Summary Delete a history entry
// @Tags history
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Record deleted"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /history/{id} [delete]
func (h *HistoryHandler) DeleteRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "record")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Monthly handles GET /api/v1/history/monthly
// @Summary Monthly maintenance chart
// @Description One bucket per calendar month, empty months included
// @Tags history
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param machinery_id query string false "Machinery ID"
// @Param months query int false "Number of months (max 36)" default(12)
// @Success 200 {object} service.MonthlyHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid months"
// @Security BearerAuth
// @Router /history/monthly [get]
func (h *HistoryHandler) Monthly(c *gin.Context) {
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
	months, ok := queryInt(c, "months", 12)
	if !ok {
		return
	}

	chart, err := h.service.Monthly(actor, companyID, machineryID, months)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// CostSummary handles GET /api/v1/history/costs
// @Summary Maintenance cost summary
// @Tags history
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param machinery_id query string false "Machinery ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} service.CostSummary
// @Security BearerAuth
// @Router /history/costs [get]
func (h *HistoryHandler) CostSummary(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := historyQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.CostSummary(actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Export handles GET /api/v1/history/export
// @Summary Export maintenance history as a spreadsheet
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company_id query string false "Company ID (super admin only)"
// @Param machinery_id query string false "Machinery ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {file} file "XLSX workbook"
// @Security BearerAuth
// @Router /history/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := historyQuery(c)
	if !ok {
		return
	}

	data, err := h.service.Export(actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	sendSpreadsheet(c, "maintenance-history", data)
}
