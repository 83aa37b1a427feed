package domain

import (
	"time"

	"github.com/google/uuid"
)

// SideEffectLog holds free-text side-effect notes, one row per routine per
// ISO week (week_start_date is always a Monday).
type SideEffectLog struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoutineID     uuid.UUID `gorm:"type:uuid;not null;index:idx_routine_week,unique" json:"routine_id"`
	Routine       *Routine  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoutineID;references:ID" json:"routine,omitempty"`
	WeekStartDate time.Time `gorm:"type:date;not null;index:idx_routine_week,unique;index" json:"week_start_date"`
	Notes         string    `gorm:"not null;column:notes" json:"notes"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SideEffectLog) TableName() string { return "side_effect_logs" }
