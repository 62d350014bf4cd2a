package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TutorialHandler handles HTTP requests for tutorial videos
type TutorialHandler struct {
	service service.TutorialVideoServiceInterface
}

// NewTutorialHandler creates a new tutorial handler
func NewTutorialHandler(service service.TutorialVideoServiceInterface) *TutorialHandler {
	return &TutorialHandler{service: service}
}

// ListVideos handles GET /api/v1/tutorials
// @Summary List tutorial videos
// @Description Only published videos are returned to non super admins
// @Tags tutorials
// @Produce json
// @Param category query string false "Category"
// @Success 200 {array} service.TutorialVideoResponse
// @Security BearerAuth
// @Router /tutorials [get]
func (h *TutorialHandler) ListVideos(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	videos, err := h.service.List(actor, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo handles GET /api/v1/tutorials/:id
// @Summary Get tutorial video by ID
// @Tags tutorials
// @Produce json
// @Param id path string true "Video ID (UUID)"
// @Success 200 {object} service.TutorialVideoResponse
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security BearerAuth
// @Router /tutorials/{id} [get]
func (h *TutorialHandler) GetVideo(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "video")
	if !ok {
		return
	}

	video, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// CreateVideo handles POST /api/v1/tutorials
// @Summary Create a tutorial video
// @Tags tutorials
// @Accept json
// @Produce json
// @Param video body service.TutorialVideoRequest true "Video"
// @Success 201 {object} service.TutorialVideoResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /tutorials [post]
func (h *TutorialHandler) CreateVideo(c *gin.Context) {
	var req service.TutorialVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	video, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// UpdateVideo handles PUT /api/v1/tutorials/:id
// @Summary Update a tutorial video
// @Tags tutorials
// @Accept json
// @Produce json
// @Param id path string true "Video ID (UUID)"
// @Param video body service.TutorialVideoRequest true "Video"
// @Success 200 {object} service.TutorialVideoResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security BearerAuth
// @Router /tutorials/{id} [put]
func (h *TutorialHandler) UpdateVideo(c *gin.Context) {
	id, ok := pathID(c, "video")
	if !ok {
		return
	}

	var req service.TutorialVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	video, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo handles DELETE /api/v1/tutorials/:id
// @Summary Delete a tutorial video
// @Tags tutorials
// @Param id path string true "Video ID (UUID)"
// @Success 204 "Video deleted"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security BearerAuth
// @Router /tutorials/{id} [delete]
func (h *TutorialHandler) DeleteVideo(c *gin.Context) {
	id, ok := pathID(c, "video")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
