package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// LegacyRoutine is a row of the pre-tracker flat schema: one entry per
// (user, treatment type) with a weekday plan instead of per-day logs.
// The tracker only ever reads this table; writes stopped with the old app.
type LegacyRoutine struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string         `gorm:"not null;index;column:user_id" json:"user_id"`
	TreatmentType string         `gorm:"not null;column:treatment_type" json:"treatment_type"`
	TimeOfDay     string         `gorm:"not null;column:time_of_day" json:"time_of_day"`
	DaysOfWeek    datatypes.JSON `gorm:"column:days_of_week" json:"days_of_week"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (LegacyRoutine) TableName() string { return "user_routines" }

// Days decodes the stored weekday list. A row planned for every day carries
// the single literal "daily" instead of seven entries.
func (lr *LegacyRoutine) Days() []string {
	if len(lr.DaysOfWeek) == 0 {
		return nil
	}
	var days []string
	if err := json.Unmarshal(lr.DaysOfWeek, &days); err != nil {
		return nil
	}
	return days
}
