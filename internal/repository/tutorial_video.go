package repository

import (
	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TutorialVideoRepository handles database operations for tutorial videos
type TutorialVideoRepository struct {
	db *gorm.DB
}

// NewTutorialVideoRepository creates a new tutorial video repository
func NewTutorialVideoRepository(db *gorm.DB) *TutorialVideoRepository {
	return &TutorialVideoRepository{db: db}
}

// Create creates a new video
func (r *TutorialVideoRepository) Create(video *models.TutorialVideo) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by ID
func (r *TutorialVideoRepository) GetByID(id uuid.UUID) (*models.TutorialVideo, error) {
	var video models.TutorialVideo
	err := r.db.First(&video, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List retrieves videos in display order
func (r *TutorialVideoRepository) List(publishedOnly bool, category string) ([]models.TutorialVideo, error) {
	query := r.db.Model(&models.TutorialVideo{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	videos := make([]models.TutorialVideo, 0)
	if err := query.Order("sort_order ASC, title ASC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Update updates a video
func (r *TutorialVideoRepository) Update(video *models.TutorialVideo) error {
	return r.db.Save(video).Error
}

// Delete deletes a video
func (r *TutorialVideoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TutorialVideo{}, "id = ?", id).Error
}
