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

// TutorialVideoService handles the tutorial video library
type TutorialVideoService struct {
	repo      repository.TutorialVideoRepositoryInterface
	validator *validator.Validate
}

// NewTutorialVideoService creates a new tutorial video service
func NewTutorialVideoService(repo repository.TutorialVideoRepositoryInterface, validator *validator.Validate) *TutorialVideoService {
	return &TutorialVideoService{
		repo:      repo,
		validator: validator,
	}
}

// TutorialVideoRequest represents the body of a video create or update
type TutorialVideoRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"video_url" validate:"required,url,max=500"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
	Published   *bool  `json:"published,omitempty"`
}

// TutorialVideoResponse represents a tutorial video
type TutorialVideoResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	Category    string    `json:"category"`
	SortOrder   int       `json:"sort_order"`
	Published   bool      `json:"published"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// List lists videos in display order. Only super admins see unpublished ones.
func (s *TutorialVideoService) List(actor *Actor, category string) ([]TutorialVideoResponse, error) {
	videos, err := s.repo.List(!actor.IsSuperAdmin(), category)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorial videos: %w", err)
	}
	responses := make([]TutorialVideoResponse, len(videos))
	for i := range videos {
		responses[i] = *toVideoResponse(&videos[i])
	}
	return responses, nil
}

// GetByID retrieves a video
func (s *TutorialVideoService) GetByID(actor *Actor, id uuid.UUID) (*TutorialVideoResponse, error) {
	video, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !video.Published && !actor.IsSuperAdmin() {
		return nil, apperrors.ErrTutorialVideoNotFound
	}
	return toVideoResponse(video), nil
}

// Create adds a video
func (s *TutorialVideoService) Create(req *TutorialVideoRequest) (*TutorialVideoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	video := &models.TutorialVideo{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
		Published:   req.Published == nil || *req.Published,
	}
	if err := s.repo.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create tutorial video: %w", err)
	}
	return toVideoResponse(video), nil
}

// Update updates a video
func (s *TutorialVideoService) Update(id uuid.UUID, req *TutorialVideoRequest) (*TutorialVideoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	video, err := s.load(id)
	if err != nil {
		return nil, err
	}
	video.Title = req.Title
	video.Description = req.Description
	video.VideoURL = req.VideoURL
	video.Category = req.Category
	video.SortOrder = req.SortOrder
	if req.Published != nil {
		video.Published = *req.Published
	}
	if err := s.repo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update tutorial video: %w", err)
	}
	return toVideoResponse(video), nil
}

// Delete deletes a video
func (s *TutorialVideoService) Delete(id uuid.UUID) error {
	if _, err := s.load(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tutorial video: %w", err)
	}
	return nil
}

func (s *TutorialVideoService) load(id uuid.UUID) (*models.TutorialVideo, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTutorialVideoNotFound
		}
		return nil, fmt.Errorf("failed to get tutorial video: %w", err)
	}
	return video, nil
}

func toVideoResponse(v *models.TutorialVideo) *TutorialVideoResponse {
	return &TutorialVideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		Category:    v.Category,
		SortOrder:   v.SortOrder,
		Published:   v.Published,
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}
