package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routine is a user's singular container for tracked treatments.
// At most one per user, enforced by the unique index on user_id.
type Routine struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Routine) TableName() string { return "routines" }
