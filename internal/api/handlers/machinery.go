package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MachineryHandler handles HTTP requests for machinery
type MachineryHandler struct {
	service service.MachineryServiceInterface
}

// NewMachineryHandler creates a new machinery handler
func NewMachineryHandler(service service.MachineryServiceInterface) *MachineryHandler {
	return &MachineryHandler{service: service}
}

// CreateMachinery handles POST /api/v1/machinery
// @Summary Register a machine
// @Tags machinery
// @Accept json
// @Produce json
// @Param machinery body service.CreateMachineryRequest true "Machine data"
// @Success 201 {object} service.MachineryResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Serial number already registered"
// @Security BearerAuth
// @Router /machinery [post]
func (h *MachineryHandler) CreateMachinery(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateMachineryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	machinery, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, machinery)
}

// GetMachinery handles GET /api/v1/machinery/:id
// @Summary Get machine by ID
// @Tags machinery
// @Produce json
// @Param id path string true "Machinery ID (UUID)"
// @Success 200 {object} service.MachineryResponse
// @Failure 404 {object} ErrorResponse "Machinery not found"
// @Security BearerAuth
// @Router /machinery/{id} [get]
func (h *MachineryHandler) GetMachinery(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "machinery")
	if !ok {
		return
	}

	machinery, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, machinery)
}

// ListMachinery handles GET /api/v1/machinery
// @Summary List machinery
// @Tags machinery
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param status query string false "operational, maintenance, broken or inactive"
// @Param category query string false "Category"
// @Param search query string false "Matches name, model, manufacturer or serial number"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MachineryListResponse
// @Security BearerAuth
// @Router /machinery [get]
func (h *MachineryHandler) ListMachinery(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.List(actor, &service.MachineryQuery{
		CompanyID: companyID,
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateMachinery handles PUT /api/v1/machinery/:id
// @Summary Update a machine
// @Tags machinery
// @Accept json
// @Produce json
// @Param id path string true "Machinery ID (UUID)"
// @Param machinery body service.UpdateMachineryRequest true "Machine data"
// @Success 200 {object} service.MachineryResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Machinery not found"
// @Security BearerAuth
// @Router /machinery/{id} [put]
func (h *MachineryHandler) UpdateMachinery(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "machinery")
	if !ok {
		return
	}

	var req service.UpdateMachineryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	machinery, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, machinery)
}

// DeleteMachinery handles DELETE /api/v1/machinery/:id
// @Summary Delete a machine
// @Tags machinery
// @Param id path string true "Machinery ID (UUID)"
// @Success 204 "Machinery deleted"
// @Failure 404 {object} ErrorResponse "Machinery not found"
// @Security BearerAuth
// @Router /machinery/{id} [delete]
func (h *MachineryHandler) DeleteMachinery(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "machinery")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto handles POST /api/v1/machinery/:id/photo
// @Summary Upload a machine photo
// @Tags machinery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Machinery ID (UUID)"
// @Param file formData file true "Image (jpeg, png, webp or gif)"
// @Success 200 {object} service.MachineryResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid image"
// @Failure 503 {object} ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /machinery/{id}/photo [post]
func (h *MachineryHandler) UploadPhoto(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "machinery")
	if !ok {
		return
	}

	upload, closeFile, err := formUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required", Details: err.Error()})
		return
	}
	defer closeFile()

	machinery, err := h.service.UploadPhoto(c.Request.Context(), actor, id, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, machinery)
}

// GetPhotoURL handles GET /api/v1/machinery/:id/photo
// @Summary Get a presigned URL for the machine photo
// @Tags machinery
// @Produce json
// @Param id path string true "Machinery ID (UUID)"
// @Success 200 {object} service.FileURLResponse
// @Failure 404 {object} ErrorResponse "Machinery or photo not found"
// @Security BearerAuth
// @Router /machinery/{id}/photo [get]
func (h *MachineryHandler) GetPhotoURL(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "machinery")
	if !ok {
		return
	}

	url, err := h.service.PhotoURL(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, url)
}
