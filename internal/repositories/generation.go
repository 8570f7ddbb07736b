package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coverletter/generator/internal/models"
)

type GenerationRepository interface {
	Create(generation *models.Generation) error
	MarkCompleted(id uuid.UUID, duration time.Duration) error
	MarkFailed(id uuid.UUID, errorMsg string, duration time.Duration) error
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Create(generation *models.Generation) error {
	if generation.ID == uuid.Nil {
		generation.ID = uuid.New()
	}
	if generation.Status == "" {
		generation.Status = models.StatusQueued
	}

	if err := r.db.Create(generation).Error; err != nil {
		return fmt.Errorf("failed to create generation: %w", err)
	}
	return nil
}

func (r *generationRepository) MarkCompleted(id uuid.UUID, duration time.Duration) error {
	return r.update(id, map[string]interface{}{
		"status":      models.StatusCompleted,
		"duration_ms": duration.Milliseconds(),
		"updated_at":  time.Now(),
	})
}

func (r *generationRepository) MarkFailed(id uuid.UUID, errorMsg string, duration time.Duration) error {
	return r.update(id, map[string]interface{}{
		"status":        models.StatusFailed,
		"error_message": errorMsg,
		"duration_ms":   duration.Milliseconds(),
		"updated_at":    time.Now(),
	})
}

func (r *generationRepository) update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Generation{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update generation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("generation not found")
	}

	return nil
}
