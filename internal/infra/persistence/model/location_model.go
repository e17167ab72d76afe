// Package model contains the GORM table structs used by the postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
// Rows are append-only.
type LocationSampleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_user_captured,priority:1"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy   *float64  `gorm:"type:double precision"`
	CapturedAt time.Time `gorm:"not null;index:idx_location_samples_user_captured,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
