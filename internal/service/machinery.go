package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineryService handles business logic for machinery
type MachineryService struct {
	repo      repository.MachineryRepositoryInterface
	store     ObjectStorage
	validator *validator.Validate
}

// NewMachineryService creates a new machinery service. store may be nil when
// object storage is not configured.
func NewMachineryService(repo repository.MachineryRepositoryInterface, store ObjectStorage, validator *validator.Validate) *MachineryService {
	return &MachineryService{
		repo:      repo,
		store:     store,
		validator: validator,
	}
}

// CreateMachineryRequest represents the request to register a machine
type CreateMachineryRequest struct {
	CompanyID       *uuid.UUID `json:"company_id,omitempty"`
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Model           string     `json:"model,omitempty" validate:"max=100"`
	Manufacturer    string     `json:"manufacturer,omitempty" validate:"max=100"`
	SerialNumber    string     `json:"serial_number" validate:"required,min=1,max=100"`
	Category        string     `json:"category,omitempty" validate:"max=100"`
	Location        string     `json:"location,omitempty" validate:"max=200"`
	Status          string     `json:"status,omitempty"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`
	AcquisitionCost float64    `json:"acquisition_cost" validate:"min=0"`
	HourMeter       float64    `json:"hour_meter" validate:"min=0"`
	Notes           string     `json:"notes,omitempty"`
}

// UpdateMachineryRequest represents the request to update a machine
type UpdateMachineryRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Model           string     `json:"model,omitempty" validate:"max=100"`
	Manufacturer    string     `json:"manufacturer,omitempty" validate:"max=100"`
	SerialNumber    string     `json:"serial_number" validate:"required,min=1,max=100"`
	Category        string     `json:"category,omitempty" validate:"max=100"`
	Location        string     `json:"location,omitempty" validate:"max=200"`
	Status          string     `json:"status" validate:"required"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`
	AcquisitionCost float64    `json:"acquisition_cost" validate:"min=0"`
	HourMeter       float64    `json:"hour_meter" validate:"min=0"`
	Notes           string     `json:"notes,omitempty"`
}

// MachineryQuery narrows a machinery listing
type MachineryQuery struct {
	CompanyID *uuid.UUID
	Status    string
	Category  string
	Search    string
	Page      int
	PageSize  int
}

// MachineryResponse represents a machine
type MachineryResponse struct {
	ID              uuid.UUID              `json:"id"`
	CompanyID       uuid.UUID              `json:"company_id"`
	Name            string                 `json:"name"`
	Model           string                 `json:"model"`
	Manufacturer    string                 `json:"manufacturer"`
	SerialNumber    string                 `json:"serial_number"`
	Category        string                 `json:"category"`
	Location        string                 `json:"location"`
	Status          models.MachineryStatus `json:"status"`
	AcquisitionDate *string                `json:"acquisition_date,omitempty"`
	AcquisitionCost float64                `json:"acquisition_cost"`
	HourMeter       float64                `json:"hour_meter"`
	Notes           string                 `json:"notes"`
	HasPhoto        bool                   `json:"has_photo"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// MachineryListResponse represents a paginated list of machines
type MachineryListResponse struct {
	Machinery []MachineryResponse `json:"machinery"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// Create registers a machine in the actor's company
func (s *MachineryService) Create(actor *Actor, req *CreateMachineryRequest) (*MachineryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.MachineryStatusOperational
	if req.Status != "" {
		status = models.MachineryStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	serial := strings.TrimSpace(req.SerialNumber)
	if err := s.ensureSerialFree(companyID, serial, uuid.Nil); err != nil {
		return nil, err
	}

	machine := &models.Machinery{
		CompanyID:       companyID,
		Name:            req.Name,
		Model:           req.Model,
		Manufacturer:    req.Manufacturer,
		SerialNumber:    serial,
		Category:        req.Category,
		Location:        req.Location,
		Status:          status,
		AcquisitionDate: utcPtr(req.AcquisitionDate),
		AcquisitionCost: req.AcquisitionCost,
		HourMeter:       req.HourMeter,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(machine); err != nil {
		return nil, fmt.Errorf("failed to create machinery: %w", err)
	}
	return toMachineryResponse(machine), nil
}

// GetByID retrieves a machine visible to the actor
func (s *MachineryService) GetByID(actor *Actor, id uuid.UUID) (*MachineryResponse, error) {
	machine, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toMachineryResponse(machine), nil
}

// List retrieves machines of a company
func (s *MachineryService) List(actor *Actor, q *MachineryQuery) (*MachineryListResponse, error) {
	companyID, err := actor.CompanyScope(q.CompanyID)
	if err != nil {
		return nil, err
	}
	status := models.MachineryStatus(q.Status)
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	page, pageSize, offset := normalizePage(q.Page, q.PageSize)

	machines, total, err := s.repo.List(repository.MachineryFilter{
		CompanyID: companyID,
		Status:    status,
		Category:  q.Category,
		Search:    q.Search,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list machinery: %w", err)
	}

	responses := make([]MachineryResponse, len(machines))
	for i := range machines {
		responses[i] = *toMachineryResponse(&machines[i])
	}
	return &MachineryListResponse{Machinery: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a machine
func (s *MachineryService) Update(actor *Actor, id uuid.UUID, req *UpdateMachineryRequest) (*MachineryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.MachineryStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	machine, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	serial := strings.TrimSpace(req.SerialNumber)
	if serial != machine.SerialNumber {
		if err := s.ensureSerialFree(machine.CompanyID, serial, machine.ID); err != nil {
			return nil, err
		}
	}

	machine.Name = req.Name
	machine.Model = req.Model
	machine.Manufacturer = req.Manufacturer
	machine.SerialNumber = serial
	machine.Category = req.Category
	machine.Location = req.Location
	machine.Status = status
	machine.AcquisitionDate = utcPtr(req.AcquisitionDate)
	machine.AcquisitionCost = req.AcquisitionCost
	machine.HourMeter = req.HourMeter
	machine.Notes = req.Notes

	if err := s.repo.Update(machine); err != nil {
		return nil, fmt.Errorf("failed to update machinery: %w", err)
	}
	return toMachineryResponse(machine), nil
}

// Delete deletes a machine and its stored photo
func (s *MachineryService) Delete(ctx context.Context, actor *Actor, id uuid.UUID) error {
	machine, err := s.load(actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete machinery: %w", err)
	}
	if machine.ImageKey != "" && s.store != nil {
		if err := s.store.Delete(ctx, machine.ImageKey); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("key", machine.ImageKey).Warn("Failed to remove machinery photo")
		}
	}
	return nil
}

// UploadPhoto stores a photo for a machine and replaces the previous one
func (s *MachineryService) UploadPhoto(ctx context.Context, actor *Actor, id uuid.UUID, upload *Upload) (*MachineryResponse, error) {
	machine, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}

	key, err := storeImage(ctx, s.store, "machinery", machine.ID, upload)
	if err != nil {
		return nil, err
	}
	previous := machine.ImageKey
	machine.ImageKey = key
	if err := s.repo.Update(machine); err != nil {
		return nil, fmt.Errorf("failed to update machinery: %w", err)
	}

	if previous != "" {
		if err := s.store.Delete(ctx, previous); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("key", previous).Warn("Failed to remove replaced machinery photo")
		}
	}
	return toMachineryResponse(machine), nil
}

// PhotoURL returns a presigned URL for a machine's photo
func (s *MachineryService) PhotoURL(ctx context.Context, actor *Actor, id uuid.UUID) (*FileURLResponse, error) {
	machine, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if machine.ImageKey == "" {
		return nil, apperrors.ErrPhotoNotFound
	}
	return presign(ctx, s.store, machine.ImageKey)
}

func (s *MachineryService) ensureSerialFree(companyID uuid.UUID, serial string, self uuid.UUID) error {
	existing, err := s.repo.GetBySerialNumber(companyID, serial)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check serial number: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrMachineryExists
	}
	return nil
}

// load returns the machine when the actor may see it
func (s *MachineryService) load(actor *Actor, id uuid.UUID) (*models.Machinery, error) {
	machine, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineryNotFound
		}
		return nil, fmt.Errorf("failed to get machinery: %w", err)
	}
	if !actor.CanAccess(machine.CompanyID) {
		return nil, apperrors.ErrMachineryNotFound
	}
	return machine, nil
}

func toMachineryResponse(m *models.Machinery) *MachineryResponse {
	return &MachineryResponse{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		Model:           m.Model,
		Manufacturer:    m.Manufacturer,
		SerialNumber:    m.SerialNumber,
		Category:        m.Category,
		Location:        m.Location,
		Status:          m.Status,
		AcquisitionDate: formatTimePtr(m.AcquisitionDate),
		AcquisitionCost: m.AcquisitionCost,
		HourMeter:       m.HourMeter,
		Notes:           m.Notes,
		HasPhoto:        m.ImageKey != "",
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
	}
}
