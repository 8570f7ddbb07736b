package models

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	StatusQueued     GenerationStatus = "queued"
	StatusProcessing GenerationStatus = "processing"
	StatusCompleted  GenerationStatus = "completed"
	StatusFailed     GenerationStatus = "failed"
)

// Generation is an audit row for one generate call. Letter text is never stored.
type Generation struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName  string           `gorm:"type:text" json:"company_name"`
	Model        string           `gorm:"type:text" json:"model"`
	Strategy     string           `gorm:"type:text" json:"strategy"`
	Status       GenerationStatus `gorm:"type:text;not null" json:"status"`
	ErrorMessage *string          `gorm:"type:text" json:"error_message,omitempty"`
	DurationMs   int64            `json:"duration_ms"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Generation) TableName() string {
	return "generations"
}
