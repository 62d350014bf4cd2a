package handlers

import (
	"errors"
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BugReportHandler handles HTTP requests for bug reports
type BugReportHandler struct {
	service service.BugReportServiceInterface
}

// NewBugReportHandler creates a new bug report handler
func NewBugReportHandler(service service.BugReportServiceInterface) *BugReportHandler {
	return &BugReportHandler{service: service}
}

// CreateBugReport handles POST /api/v1/bug-reports
// @Summary File a bug report
// @Description Accepts JSON, or multipart form data with an optional screenshot
// @Tags bug-reports
// @Accept json,mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param severity formData string false "low, medium, high or critical"
// @Param page_url formData string false "Page the bug was seen on"
// @Param screenshot formData file false "Screenshot image"
// @Success 201 {object} service.BugReportResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /bug-reports [post]
func (h *BugReportHandler) CreateBugReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateBugReportRequest
	var screenshot *service.Upload

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data", Details: err.Error()})
			return
		}
		upload, closeFile, err := formUpload(c, "screenshot")
		defer closeFile()
		switch {
		case err == nil:
			screenshot = upload
		case !errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid screenshot", Details: err.Error()})
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	report, err := h.service.Create(c.Request.Context(), actor, &req, screenshot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListOwnBugReports handles GET /api/v1/bug-reports/mine
// @Summary List the caller's bug reports
// @Tags bug-reports
// @Produce json
// @Param status query string false "open, in_progress, resolved or closed"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BugReportListResponse
// @Security BearerAuth
// @Router /bug-reports/mine [get]
func (h *BugReportHandler) ListOwnBugReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.ListOwn(actor, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListBugReports handles GET /api/v1/bug-reports
// @Summary List all bug reports
// @Tags bug-reports
// @Produce json
// @Param status query string false "open, in_progress, resolved or closed"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BugReportListResponse
// @Failure 403 {object} ErrorResponse "Super admin only"
// @Security BearerAuth
// @Router /bug-reports [get]
func (h *BugReportHandler) ListBugReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.ListAll(actor, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetBugReport handles GET /api/v1/bug-reports/:id
// @Summary Get bug report by ID
// @Tags bug-reports
// @Produce json
// @Param id path string true "Bug report ID (UUID)"
// @Success 200 {object} service.BugReportResponse
// @Failure 404 {object} ErrorResponse "Bug report not found"
// @Security BearerAuth
// @Router /bug-reports/{id} [get]
func (h *BugReportHandler) GetBugReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "bug report")
	if !ok {
		return
	}

	report, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateBugStatus handles PATCH /api/v1/bug-reports/:id/status
// @Summary Move a bug report through triage
// @Tags bug-reports
// @Accept json
// @Produce json
// @Param id path string true "Bug report ID (UUID)"
// @Param status body service.BugStatusRequest true "Target status"
// @Success 200 {object} service.BugReportResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Bug report not found"
// @Security BearerAuth
// @Router /bug-reports/{id}/status [patch]
func (h *BugReportHandler) UpdateBugStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "bug report")
	if !ok {
		return
	}

	var req service.BugStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	report, err := h.service.UpdateStatus(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetScreenshotURL handles GET /api/v1/bug-reports/:id/screenshot
// @Summary Get a presigned URL for the screenshot
// @Tags bug-reports
// @Produce json
// @Param id path string true "Bug report ID (UUID)"
// @Success 200 {object} service.FileURLResponse
// @Failure 404 {object} ErrorResponse "Bug report or screenshot not found"
// @Security BearerAuth
// @Router /bug-reports/{id}/screenshot [get]
func (h *BugReportHandler) GetScreenshotURL(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "bug report")
	if !ok {
		return
	}

	url, err := h.service.ScreenshotURL(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, url)
}

// DeleteBugReport handles DELETE /api/v1/bug-reports/:id
// @Summary Delete a bug report
// @Tags bug-reports
// @Param id path string true "Bug report ID (UUID)"
// @Success 204 "Bug report deleted"
// @Failure 404 {object} ErrorResponse "Bug report not found"
// @Security BearerAuth
// @Router /bug-reports/{id} [delete]
func (h *BugReportHandler) DeleteBugReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "bug report")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
