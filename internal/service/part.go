package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/export"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartService handles the parts inventory
type PartService struct {
	repo      repository.PartRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	validator *validator.Validate
}

// NewPartService creates a new parts inventory service
func NewPartService(repo repository.PartRepositoryInterface, machinery repository.MachineryRepositoryInterface, validator *validator.Validate) *PartService {
	return &PartService{
		repo:      repo,
		machinery: machinery,
		validator: validator,
	}
}

// CreatePartRequest represents the request to add a part to the inventory
type CreatePartRequest struct {
	CompanyID       *uuid.UUID `json:"company_id,omitempty"`
	PartNumber      string     `json:"part_number" validate:"required,min=1,max=100"`
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Category        string     `json:"category,omitempty" validate:"max=100"`
	Quantity        int        `json:"quantity" validate:"min=0"`
	MinimumQuantity int        `json:"minimum_quantity" validate:"min=0"`
	UnitPrice       float64    `json:"unit_price" validate:"min=0"`
	Supplier        string     `json:"supplier,omitempty" validate:"max=200"`
	Location        string     `json:"location,omitempty" validate:"max=200"`
	MachineryID     *uuid.UUID `json:"machinery_id,omitempty"`
}

// UpdatePartRequest represents the request to update a part. Quantity is
// changed through stock adjustments only.
type UpdatePartRequest struct {
	PartNumber      string     `json:"part_number" validate:"required,min=1,max=100"`
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Category        string     `json:"category,omitempty" validate:"max=100"`
	MinimumQuantity int        `json:"minimum_quantity" validate:"min=0"`
	UnitPrice       float64    `json:"unit_price" validate:"min=0"`
	Supplier        string     `json:"supplier,omitempty" validate:"max=200"`
	Location        string     `json:"location,omitempty" validate:"max=200"`
	MachineryID     *uuid.UUID `json:"machinery_id,omitempty"`
}

// AdjustStockRequest changes the stock of a part by a signed delta
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason,omitempty" validate:"max=200"`
}

// PartQuery narrows a parts listing
type PartQuery struct {
	CompanyID    *uuid.UUID
	Category     string
	Search       string
	LowStockOnly bool
	Page         int
	PageSize     int
}

// PartResponse represents a part
type PartResponse struct {
	ID                uuid.UUID  `json:"id"`
	CompanyID         uuid.UUID  `json:"company_id"`
	PartNumber        string     `json:"part_number"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          int        `json:"quantity"`
	MinimumQuantity   int        `json:"minimum_quantity"`
	UnitPrice         float64    `json:"unit_price"`
	PreviousUnitPrice float64    `json:"previous_unit_price"`
	StockValue        float64    `json:"stock_value"`
	LowStock          bool       `json:"low_stock"`
	Supplier          string     `json:"supplier"`
	Location          string     `json:"location"`
	MachineryID       *uuid.UUID `json:"machinery_id,omitempty"`
	CreatedAt         string     `json:"created_at"`
	UpdatedAt         string     `json:"updated_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// PriceTickerResponse lists the price moves of a company's parts
type PriceTickerResponse struct {
	Ticks []PriceTick `json:"ticks"`
}

// Create adds a part to the inventory
func (s *PartService) Create(actor *Actor, req *CreatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	number := strings.TrimSpace(req.PartNumber)
	if err := s.ensureNumberFree(companyID, number, uuid.Nil); err != nil {
		return nil, err
	}
	if err := checkMachineryRef(s.machinery, companyID, req.MachineryID); err != nil {
		return nil, err
	}

	part := &models.Part{
		CompanyID:       companyID,
		PartNumber:      number,
		Name:            req.Name,
		Category:        req.Category,
		Quantity:        req.Quantity,
		MinimumQuantity: req.MinimumQuantity,
		UnitPrice:       req.UnitPrice,
		Supplier:        req.Supplier,
		Location:        req.Location,
		MachineryID:     req.MachineryID,
	}
	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	return toPartResponse(part), nil
}

// GetByID retrieves a part visible to the actor
func (s *PartService) GetByID(actor *Actor, id uuid.UUID) (*PartResponse, error) {
	part, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List retrieves parts of a company
func (s *PartService) List(actor *Actor, q *PartQuery) (*PartListResponse, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	page, pageSize, offset := normalizePage(q.Page, q.PageSize)

	parts, total, err := s.repo.List(repository.PartFilter{
		CompanyID:    companyID,
		Category:     q.Category,
		Search:       q.Search,
		LowStockOnly: q.LowStockOnly,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *toPartResponse(&parts[i])
	}
	return &PartListResponse{Parts: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// LowStock lists every part at or below its minimum quantity
func (s *PartService) LowStock(actor *Actor, companyID *uuid.UUID) ([]PartResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListAll(repository.PartFilter{CompanyID: scope, LowStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock parts: %w", err)
	}
	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *toPartResponse(&parts[i])
	}
	return responses, nil
}

// Update updates a part. A changed unit price moves the old one into previous_unit_price.
func (s *PartService) Update(actor *Actor, id uuid.UUID, req *UpdatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	part, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	number := strings.TrimSpace(req.PartNumber)
	if number != part.PartNumber {
		if err := s.ensureNumberFree(part.CompanyID, number, part.ID); err != nil {
			return nil, err
		}
	}
	if err := checkMachineryRef(s.machinery, part.CompanyID, req.MachineryID); err != nil {
		return nil, err
	}

	if req.UnitPrice != part.UnitPrice {
		part.PreviousUnitPrice = part.UnitPrice
		part.UnitPrice = req.UnitPrice
	}
	part.PartNumber = number
	part.Name = req.Name
	part.Category = req.Category
	part.MinimumQuantity = req.MinimumQuantity
	part.Supplier = req.Supplier
	part.Location = req.Location
	part.MachineryID = req.MachineryID

	if err := s.repo.Update(part); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}
	return toPartResponse(part), nil
}

// AdjustStock adds a signed delta to the stock. The quantity never drops below zero.
func (s *PartService) AdjustStock(ctx context.Context, actor *Actor, id uuid.UUID, req *AdjustStockRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if _, err := s.load(actor, id); err != nil {
		return nil, err
	}

	changed, err := s.repo.AdjustQuantity(id, req.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	if changed == 0 {
		return nil, apperrors.ErrInsufficientStock
	}

	part, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"part_number": part.PartNumber,
		"delta":       req.Delta,
		"quantity":    part.Quantity,
		"reason":      req.Reason,
	})
	if part.IsLowStock() {
		log.Warn("Part stock at or below minimum")
	} else {
		log.Info("Part stock adjusted")
	}
	return toPartResponse(part), nil
}

// Delete deletes a part
func (s *PartService) Delete(actor *Actor, id uuid.UUID) error {
	if _, err := s.load(actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	return nil
}

// PriceTicker reports the last price move of every part in a company
func (s *PartService) PriceTicker(actor *Actor, companyID *uuid.UUID) (*PriceTickerResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListAll(repository.PartFilter{CompanyID: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return &PriceTickerResponse{Ticks: PriceTicker(parts)}, nil
}

// Export renders a company's inventory as a spreadsheet
func (s *PartService) Export(actor *Actor, q *PartQuery) ([]byte, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListAll(repository.PartFilter{
		CompanyID:    companyID,
		Category:     q.Category,
		Search:       q.Search,
		LowStockOnly: q.LowStockOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	data, err := export.PartsWorkbook(parts)
	if err != nil {
		return nil, fmt.Errorf("failed to export parts: %w", err)
	}
	return data, nil
}

func (s *PartService) ensureNumberFree(companyID uuid.UUID, number string, self uuid.UUID) error {
	existing, err := s.repo.GetByPartNumber(companyID, number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check part number: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrPartExists
	}
	return nil
}

func (s *PartService) load(actor *Actor, id uuid.UUID) (*models.Part, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if !actor.CanAccess(part.CompanyID) {
		return nil, apperrors.ErrPartNotFound
	}
	return part, nil
}

func toPartResponse(p *models.Part) *PartResponse {
	return &PartResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		PartNumber:        p.PartNumber,
		Name:              p.Name,
		Category:          p.Category,
		Quantity:          p.Quantity,
		MinimumQuantity:   p.MinimumQuantity,
		UnitPrice:         p.UnitPrice,
		PreviousUnitPrice: p.PreviousUnitPrice,
		StockValue:        round2(float64(p.Quantity) * p.UnitPrice),
		LowStock:          p.IsLowStock(),
		Supplier:          p.Supplier,
		Location:          p.Location,
		MachineryID:       p.MachineryID,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}
