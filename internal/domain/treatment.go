package domain

import (
	"time"

	"github.com/google/uuid"
)

// Treatment is a named habit with a target weekly frequency (1..7).
type Treatment struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoutineID        uuid.UUID `gorm:"type:uuid;not null;index" json:"routine_id"`
	Routine          *Routine  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoutineID;references:ID" json:"routine,omitempty"`
	Name             string    `gorm:"not null;column:name" json:"name"`
	FrequencyPerWeek int       `gorm:"not null;column:frequency_per_week" json:"frequency_per_week"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Treatment) TableName() string { return "treatments" }
