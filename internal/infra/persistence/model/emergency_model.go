package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyModel is the GORM-specific struct for the 'emergencies' table.
type EmergencyModel struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type                string      `gorm:"type:varchar(30);not null"`
	Status              string      `gorm:"type:varchar(10);not null;index"`
	Severity            string      `gorm:"type:varchar(10);not null"`
	TriggeredBy         string      `gorm:"type:varchar(20);not null"`
	Latitude            float64     `gorm:"type:decimal(10,8);not null"`
	Longitude           float64     `gorm:"type:decimal(11,8);not null"`
	Confidence          *float64    `gorm:"type:double precision"`
	Notes               string      `gorm:"type:text"`
	NotifiedGuardianIDs []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ResolvedAt          *time.Time
	ResolvedBy          *uuid.UUID `gorm:"type:uuid"`
	ResolutionNotes     *string    `gorm:"type:text"`
	ResponseTimeSeconds *int64     `gorm:"type:bigint"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencyModel) TableName() string {
	return "emergencies"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It is an append-only audit of channel attempts.
type DeliveryLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	GuardianID   uuid.UUID  `gorm:"type:uuid;not null"`
	AlertKind    string     `gorm:"type:varchar(20);not null"`
	Channel      string     `gorm:"type:varchar(10);not null"`
	Status       string     `gorm:"type:varchar(10);not null"`
	ErrorMessage string     `gorm:"type:text"`
	EventID      *uuid.UUID `gorm:"type:uuid"`
	EmergencyID  *uuid.UUID `gorm:"type:uuid"`
	AttemptedAt  time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
