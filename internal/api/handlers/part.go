package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for the parts inventory
type PartHandler struct {
	service service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(service service.PartServiceInterface) *PartHandler {
	return &PartHandler{service: service}
}

func partQuery(c *gin.Context) (*service.PartQuery, bool) {
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return nil, false
	}
	page, pageSize := pagination(c)

	return &service.PartQuery{
		CompanyID:    companyID,
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		LowStockOnly: c.Query("low_stock") == "true",
		Page:         page,
		PageSize:     pageSize,
	}, true
}

// CreatePart handles POST /api/v1/parts
// @Summary Add a part to the inventory
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part"
// @Success 201 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Part number already exists"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	part, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetPart handles GET /api/v1/parts/:id
// @Summary Get part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "part")
	if !ok {
		return
	}

	part, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// ListParts handles GET /api/v1/parts
// @Summary List parts
// @Tags parts
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param category query string false "Category"
// @Param search query string false "Matches part number or name"
// @Param low_stock query bool false "Only parts at or below minimum quantity"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PartListResponse
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := partQuery(c)
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

// LowStock handles GET /api/v1/parts/low-stock
// @Summary List parts at or below their minimum quantity
// @Tags parts
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Success 200 {array} service.PartResponse
// @Security BearerAuth
// @Router /parts/low-stock [get]
func (h *PartHandler) LowStock(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}

	parts, err := h.service.LowStock(actor, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// PriceTicker handles GET /api/v1/parts/price-ticker
// @Summary Price variation of every part
// @Tags parts
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Success 200 {object} service.PriceTickerResponse
// @Security BearerAuth
// @Router /parts/price-ticker [get]
func (h *PartHandler) PriceTicker(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}

	ticker, err := h.service.PriceTicker(actor, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticker)
}

// UpdatePart handles PUT /api/v1/parts/:id
// @Summary Update a part
// @Description A changed unit price moves the old price into previous_unit_price
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param part body service.UpdatePartRequest true "Part"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "part")
	if !ok {
		return
	}

	var req service.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	part, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// AdjustStock handles POST /api/v1/parts/:id/stock
// @Summary Adjust stock by a signed delta
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param adjustment body service.AdjustStockRequest true "Stock adjustment"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Stock would drop below zero"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id}/stock [post]
func (h *PartHandler) AdjustStock(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "part")
	if !ok {
		return
	}

	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	part, err := h.service.AdjustStock(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart handles DELETE /api/v1/parts/:id
// @Summary Delete a part
// @Tags parts
// @Param id path string true "Part ID (UUID)"
// @Success 204 "Part deleted"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "part")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export handles GET /api/v1/parts/export
// @Summary Export the parts inventory as a spreadsheet
// @Tags parts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company_id query string false "Company ID (super admin only)"
// @Param category query string false "Category"
// @Param low_stock query bool false "Only low stock parts"
// @Success 200 {file} file "XLSX workbook"
// @Security BearerAuth
// @Router /parts/export [get]
func (h *PartHandler) Export(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	q, ok := partQuery(c)
	if !ok {
		return
	}

	data, err := h.service.Export(actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	sendSpreadsheet(c, "parts-inventory", data)
}
