package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
type GeofenceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	CenterLatitude  float64   `gorm:"type:decimal(10,8);not null"`
	CenterLongitude float64   `gorm:"type:decimal(11,8);not null"`
	RadiusMeters    float64   `gorm:"type:double precision;not null;check:radius_meters > 0"`
	Type            string    `gorm:"type:varchar(20);not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	AlertOnEntry    bool      `gorm:"not null;default:false"`
	AlertOnExit     bool      `gorm:"not null;default:false"`
	StartTime       string    `gorm:"type:varchar(5)"`
	EndTime         string    `gorm:"type:varchar(5)"`
	// ActiveDays holds weekday numbers (0 = Sunday).
	ActiveDays []int `gorm:"type:jsonb;serializer:json"`
	Priority   int   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

// GeofenceEventModel is the GORM-specific struct for the 'geofence_events' table.
type GeofenceEventModel struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID   `gorm:"type:uuid;not null;index:idx_geofence_events_pair,priority:1"`
	GeofenceID          uuid.UUID   `gorm:"type:uuid;not null;index:idx_geofence_events_pair,priority:2"`
	Type                string      `gorm:"type:varchar(10);not null"`
	RiskLevel           string      `gorm:"type:varchar(10);not null"`
	Latitude            float64     `gorm:"type:decimal(10,8);not null"`
	Longitude           float64     `gorm:"type:decimal(11,8);not null"`
	Accuracy            *float64    `gorm:"type:double precision"`
	DurationSeconds     *int64      `gorm:"type:bigint"`
	Notes               string      `gorm:"type:text"`
	NotificationSent    bool        `gorm:"not null;default:false"`
	NotifiedGuardianIDs []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time   `gorm:"not null;index:idx_geofence_events_pair,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceEventModel) TableName() string {
	return "geofence_events"
}
