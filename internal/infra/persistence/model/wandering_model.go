package model

import (
	"time"

	"github.com/google/uuid"
)

// WanderingDetectionModel is the GORM-specific struct for the 'wandering_detections' table.
// The partial unique index keeps at most one unresolved row per user.
type WanderingDetectionModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wandering_active_user,where:status <> 'RESOLVED'"`
	Status             string    `gorm:"type:varchar(10);not null"`
	RiskLevel          string    `gorm:"type:varchar(10);not null"`
	StartLatitude      float64   `gorm:"type:decimal(10,8);not null"`
	StartLongitude     float64   `gorm:"type:decimal(11,8);not null"`
	CurrentLatitude    float64   `gorm:"type:decimal(10,8);not null"`
	CurrentLongitude   float64   `gorm:"type:decimal(11,8);not null"`
	ConfidenceScore    float64   `gorm:"type:double precision;not null"`
	DurationMinutes    int       `gorm:"not null;default:0"`
	NavigationProvided bool      `gorm:"not null;default:false"`
	InterventionNeeded bool      `gorm:"not null;default:false"`
	DetectedAt         time.Time `gorm:"not null"`
	UpdatedAt          time.Time
	ResolvedAt         *time.Time
	ResolutionMethod   *string `gorm:"type:varchar(30)"`
}

// TableName explicitly sets the table name for GORM.
func (WanderingDetectionModel) TableName() string {
	return "wandering_detections"
}
