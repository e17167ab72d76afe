package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareUserModel is the GORM-specific struct for the 'care_users' table.
type CareUserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CareUserModel) TableName() string {
	return "care_users"
}

// GuardianModel is the GORM-specific struct for the 'guardians' table.
type GuardianModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Phone            *string   `gorm:"type:varchar(30)"`
	Email            *string   `gorm:"type:varchar(255)"`
	DeviceToken      *string   `gorm:"type:varchar(255)"`
	CanReceiveAlerts bool      `gorm:"not null;default:true"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuardianModel) TableName() string {
	return "guardians"
}

// MovementPatternModel is the GORM-specific struct for the 'movement_patterns' table.
type MovementPatternModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	CentroidLatitude    float64   `gorm:"type:decimal(10,8);not null"`
	CentroidLongitude   float64   `gorm:"type:decimal(11,8);not null"`
	TypicalRadiusMeters float64   `gorm:"type:double precision;not null"`
	ObservedAt          time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MovementPatternModel) TableName() string {
	return "movement_patterns"
}

// All lists every table struct, in dependency order, for schema migration.
func All() []any {
	return []any{
		&CareUserModel{},
		&GuardianModel{},
		&MovementPatternModel{},
		&LocationSampleModel{},
		&GeofenceModel{},
		&GeofenceEventModel{},
		&WanderingDetectionModel{},
		&EmergencyModel{},
		&DeliveryLogModel{},
	}
}
