package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
)

func CreateRoutine(tb testing.TB, tx *gorm.DB, userID string) *domain.Routine {
	tb.Helper()
	row := &domain.Routine{ID: uuid.New(), UserID: userID}
	if err := tx.WithContext(context.Background()).Create(row).Error; err != nil {
		tb.Fatalf("create routine fixture: %v", err)
	}
	return row
}

func CreateTreatment(tb testing.TB, tx *gorm.DB, routineID uuid.UUID, name string, frequency int) *domain.Treatment {
	tb.Helper()
	row := &domain.Treatment{
		ID:               uuid.New(),
		RoutineID:        routineID,
		Name:             name,
		FrequencyPerWeek: frequency,
	}
	if err := tx.WithContext(context.Background()).Create(row).Error; err != nil {
		tb.Fatalf("create treatment fixture: %v", err)
	}
	return row
}

func CreateLog(tb testing.TB, tx *gorm.DB, treatmentID uuid.UUID, date time.Time, completed bool) *domain.TreatmentLog {
	tb.Helper()
	row := &domain.TreatmentLog{
		ID:          uuid.New(),
		TreatmentID: treatmentID,
		Date:        date,
		Completed:   completed,
	}
	if err := tx.WithContext(context.Background()).Create(row).Error; err != nil {
		tb.Fatalf("create log fixture: %v", err)
	}
	return row
}

func CreateLegacyRow(tb testing.TB, tx *gorm.DB, userID, treatmentType string, days []string) *domain.LegacyRoutine {
	tb.Helper()
	encoded, err := json.Marshal(days)
	if err != nil {
		tb.Fatalf("encode days: %v", err)
	}
	row := &domain.LegacyRoutine{
		UserID:        userID,
		TreatmentType: treatmentType,
		TimeOfDay:     "morning",
		DaysOfWeek:    datatypes.JSON(encoded),
	}
	if err := tx.WithContext(context.Background()).Create(row).Error; err != nil {
		tb.Fatalf("create legacy fixture: %v", err)
	}
	return row
}

func Day(tb testing.TB, value string) time.Time {
	tb.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		tb.Fatalf("parse day %q: %v", value, err)
	}
	return parsed.UTC()
}
