package domain

import (
	"time"

	"github.com/google/uuid"
)

// TreatmentLog is a per-day completion record for one treatment.
// One row per (treatment, date); toggles overwrite the completed flag.
type TreatmentLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TreatmentID uuid.UUID  `gorm:"type:uuid;not null;index:idx_treatment_date,unique" json:"treatment_id"`
	Treatment   *Treatment `gorm:"constraint:OnDelete:CASCADE;foreignKey:TreatmentID;references:ID" json:"treatment,omitempty"`
	Date        time.Time  `gorm:"type:date;not null;index:idx_treatment_date,unique;index" json:"date"`
	Completed   bool       `gorm:"not null;default:false;column:completed" json:"completed"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (TreatmentLog) TableName() string { return "treatment_logs" }
