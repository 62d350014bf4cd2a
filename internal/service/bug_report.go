package service

import (
	"context"
	"errors"
	"fmt"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BugReportService handles in-app bug reports
type BugReportService struct {
	repo      repository.BugReportRepositoryInterface
	store     ObjectStorage
	validator *validator.Validate
}

// NewBugReportService creates a new bug report service. store may be nil.
func NewBugReportService(repo repository.BugReportRepositoryInterface, store ObjectStorage, validator *validator.Validate) *BugReportService {
	return &BugReportService{
		repo:      repo,
		store:     store,
		validator: validator,
	}
}

// CreateBugReportRequest represents a filed bug report
type CreateBugReportRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" form:"description" validate:"required"`
	Severity    string `json:"severity,omitempty" form:"severity"`
	PageURL     string `json:"page_url,omitempty" form:"page_url" validate:"max=500"`
}

// BugStatusRequest moves a bug report through triage
type BugStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BugReportResponse represents a bug report
type BugReportResponse struct {
	ID            uuid.UUID        `json:"id"`
	ReporterID    uuid.UUID        `json:"reporter_id"`
	ReporterName  string           `json:"reporter_name,omitempty"`
	ReporterEmail string           `json:"reporter_email,omitempty"`
	CompanyID     *uuid.UUID       `json:"company_id,omitempty"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Severity      models.Priority  `json:"severity"`
	Status        models.BugStatus `json:"status"`
	PageURL       string           `json:"page_url"`
	HasScreenshot bool             `json:"has_screenshot"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// BugReportListResponse represents a paginated list of bug reports
type BugReportListResponse struct {
	BugReports []BugReportResponse `json:"bug_reports"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create files a bug report, optionally with a screenshot
func (s *BugReportService) Create(ctx context.Context, actor *Actor, req *CreateBugReportRequest, screenshot *Upload) (*BugReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	severity := models.PriorityMedium
	if req.Severity != "" {
		severity = models.Priority(req.Severity)
		if !severity.IsValid() {
			return nil, apperrors.NewValidationError("severity", "invalid severity")
		}
	}

	report := &models.BugReport{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReporterID:  actor.UserID,
		CompanyID:   actor.CompanyID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    severity,
		Status:      models.BugStatusOpen,
		PageURL:     req.PageURL,
	}

	if screenshot != nil {
		key, err := storeImage(ctx, s.store, "bug-reports", report.ID, screenshot)
		if err != nil {
			return nil, err
		}
		report.ScreenshotKey = key
	}

	if err := s.repo.Create(report); err != nil {
		if report.ScreenshotKey != "" {
			if rmErr := s.store.Delete(ctx, report.ScreenshotKey); rmErr != nil {
				logger.WithContext(ctx).WithError(rmErr).Warn("Failed to remove orphaned screenshot")
			}
		}
		return nil, fmt.Errorf("failed to create bug report: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bug_report_id": report.ID,
		"severity":      severity,
	}).Info("Bug report filed")
	return toBugReportResponse(report), nil
}

// ListOwn lists the bug reports filed by the actor
func (s *BugReportService) ListOwn(actor *Actor, status string, page, pageSize int) (*BugReportListResponse, error) {
	reporter := actor.UserID
	return s.list(repository.BugReportFilter{ReporterID: &reporter}, status, page, pageSize)
}

// ListAll lists every bug report
func (s *BugReportService) ListAll(actor *Actor, status string, page, pageSize int) (*BugReportListResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return s.list(repository.BugReportFilter{}, status, page, pageSize)
}

// GetByID retrieves a bug report filed by the actor, or any report for super admins
func (s *BugReportService) GetByID(actor *Actor, id uuid.UUID) (*BugReportResponse, error) {
	report, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toBugReportResponse(report), nil
}

// UpdateStatus moves a bug report to another triage status
func (s *BugReportService) UpdateStatus(ctx context.Context, actor *Actor, id uuid.UUID, req *BugStatusRequest) (*BugReportResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	status := models.BugStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	report, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugReportNotFound
		}
		return nil, fmt.Errorf("failed to update bug report: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bug_report_id": id,
		"from":          report.Status,
		"to":            status,
	}).Info("Bug report triaged")
	report.Status = status
	return toBugReportResponse(report), nil
}

// ScreenshotURL returns a presigned URL for the screenshot of a report
func (s *BugReportService) ScreenshotURL(ctx context.Context, actor *Actor, id uuid.UUID) (*FileURLResponse, error) {
	report, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if report.ScreenshotKey == "" {
		return nil, apperrors.NewNotFoundError("screenshot")
	}
	return presign(ctx, s.store, report.ScreenshotKey)
}

// Delete removes a bug report and its screenshot
func (s *BugReportService) Delete(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if !actor.IsSuperAdmin() {
		return apperrors.ErrForbidden
	}
	report, err := s.load(actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bug report: %w", err)
	}
	if report.ScreenshotKey != "" && s.store != nil {
		if err := s.store.Delete(ctx, report.ScreenshotKey); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("key", report.ScreenshotKey).Warn("Failed to remove screenshot")
		}
	}
	return nil
}

func (s *BugReportService) list(filter repository.BugReportFilter, status string, page, pageSize int) (*BugReportListResponse, error) {
	if status != "" {
		filter.Status = models.BugStatus(status)
		if !filter.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}
	page, pageSize, offset := normalizePage(page, pageSize)

	reports, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bug reports: %w", err)
	}
	responses := make([]BugReportResponse, len(reports))
	for i := range reports {
		responses[i] = *toBugReportResponse(&reports[i])
	}
	return &BugReportListResponse{BugReports: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *BugReportService) load(actor *Actor, id uuid.UUID) (*models.BugReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugReportNotFound
		}
		return nil, fmt.Errorf("failed to get bug report: %w", err)
	}
	if !actor.IsSuperAdmin() && report.ReporterID != actor.UserID {
		return nil, apperrors.ErrBugReportNotFound
	}
	return report, nil
}

func toBugReportResponse(r *models.BugReport) *BugReportResponse {
	resp := &BugReportResponse{
		ID:            r.ID,
		ReporterID:    r.ReporterID,
		CompanyID:     r.CompanyID,
		Title:         r.Title,
		Description:   r.Description,
		Severity:      r.Severity,
		Status:        r.Status,
		PageURL:       r.PageURL,
		HasScreenshot: r.ScreenshotKey != "",
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
	if r.Reporter != nil {
		resp.ReporterName = r.Reporter.FullName
		resp.ReporterEmail = r.Reporter.Email
	}
	return resp
}
