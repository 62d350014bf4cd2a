package service

import (
	"errors"
	"fmt"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	TaxID    string `json:"tax_id,omitempty" validate:"max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	Address  string `json:"address,omitempty" validate:"max=500"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	TaxID    string `json:"tax_id,omitempty" validate:"max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	Address  string `json:"address,omitempty" validate:"max=500"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return toCompanyResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetOwn retrieves the company the actor belongs to
func (s *CompanyService) GetOwn(actor *Actor) (*CompanyResponse, error) {
	if actor == nil || actor.CompanyID == nil {
		return nil, apperrors.ErrNoCompanyAssigned
	}
	return s.GetByID(*actor.CompanyID)
}

// GetAll retrieves all companies with pagination
func (s *CompanyService) GetAll(page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	companies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *toCompanyResponse(&companies[i])
	}

	return &CompanyListResponse{
		Companies: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a company
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	company, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if req.Name != company.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing company: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrCompanyExists
		}
	}

	company.Name = req.Name
	company.TaxID = req.TaxID
	company.Email = req.Email
	company.Phone = req.Phone
	company.Address = req.Address
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Delete deletes a company
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.load(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) load(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func toCompanyResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		TaxID:     company.TaxID,
		Email:     company.Email,
		Phone:     company.Phone,
		Address:   company.Address,
		IsActive:  company.IsActive,
		CreatedAt: formatTime(company.CreatedAt),
		UpdatedAt: formatTime(company.UpdatedAt),
	}
}
