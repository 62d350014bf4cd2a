package handlers

import (
	"net/http"

	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany handles POST /api/v1/companies
// @Summary Create a new company
// @Description Create a tenant company. Super admin only.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse "Successfully created company"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Company already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse "Successfully retrieved company"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c, "company")
	if !ok {
		return
	}

	company, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// GetOwnCompany handles GET /api/v1/companies/mine
// @Summary Get the caller's company
// @Tags companies
// @Produce json
// @Success 200 {object} service.CompanyResponse
// @Failure 403 {object} ErrorResponse "User has no company"
// @Security BearerAuth
// @Router /companies/mine [get]
func (h *CompanyHandler) GetOwnCompany(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	company, err := h.service.GetOwn(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /api/v1/companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CompanyListResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pagination(c)

	companies, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// UpdateCompany handles PUT /api/v1/companies/:id
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Company data"
// @Success 200 {object} service.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Company name taken"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c, "company")
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	company, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
// @Summary Delete company
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Success 204 "Company deleted"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c, "company")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
