package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("development")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

type fakeRoutineRepo struct {
	rows      map[string]*domain.Routine
	createErr error
}

func newFakeRoutineRepo() *fakeRoutineRepo {
	return &fakeRoutineRepo{rows: map[string]*domain.Routine{}}
}

func (f *fakeRoutineRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Routine) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.rows[row.UserID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	f.rows[row.UserID] = row
	return nil
}

func (f *fakeRoutineRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Routine, error) {
	return f.rows[userID], nil
}

type fakeTreatmentRepo struct {
	rows []*domain.Treatment
}

func (f *fakeTreatmentRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Treatment) ([]*domain.Treatment, error) {
	f.rows = append(f.rows, rows...)
	return rows, nil
}

func (f *fakeTreatmentRepo) GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.Treatment, error) {
	results := []*domain.Treatment{}
	for _, row := range f.rows {
		if row.RoutineID == routineID {
			results = append(results, row)
		}
	}
	return results, nil
}

func (f *fakeTreatmentRepo) GetByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (*domain.Treatment, error) {
	for _, row := range f.rows {
		if row.ID == treatmentID && row.RoutineID == routineID {
			return row, nil
		}
	}
	return nil, nil
}

func (f *fakeTreatmentRepo) Update(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID, updates map[string]interface{}) (*domain.Treatment, error) {
	row, _ := f.GetByIDForRoutine(ctx, tx, treatmentID, routineID)
	if row == nil {
		return nil, nil
	}
	if name, ok := updates["name"].(string); ok {
		row.Name = name
	}
	if freq, ok := updates["frequency_per_week"].(int); ok {
		row.FrequencyPerWeek = freq
	}
	return row, nil
}

func (f *fakeTreatmentRepo) DeleteByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (bool, error) {
	for i, row := range f.rows {
		if row.ID == treatmentID && row.RoutineID == routineID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeTreatmentLogRepo struct {
	rows []*domain.TreatmentLog
}

func (f *fakeTreatmentLogRepo) filter(treatmentIDs []uuid.UUID, from, to time.Time, completedOnly bool) []*domain.TreatmentLog {
	wanted := make(map[uuid.UUID]struct{}, len(treatmentIDs))
	for _, id := range treatmentIDs {
		wanted[id] = struct{}{}
	}
	results := []*domain.TreatmentLog{}
	for _, row := range f.rows {
		if _, ok := wanted[row.TreatmentID]; !ok {
			continue
		}
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		if completedOnly && !row.Completed {
			continue
		}
		results = append(results, row)
	}
	return results
}

func (f *fakeTreatmentLogRepo) GetCompletedInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error) {
	return f.filter(treatmentIDs, from, to, true), nil
}

func (f *fakeTreatmentLogRepo) GetInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error) {
	return f.filter(treatmentIDs, from, to, false), nil
}

func (f *fakeTreatmentLogRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.TreatmentLog) error {
	for _, existing := range f.rows {
		if existing.TreatmentID == row.TreatmentID && existing.Date.Equal(row.Date) {
			existing.Completed = row.Completed
			*row = *existing
			return nil
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakeLegacyRepo struct {
	rows []*domain.LegacyRoutine
}

func (f *fakeLegacyRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.LegacyRoutine, error) {
	results := []*domain.LegacyRoutine{}
	for _, row := range f.rows {
		if row.UserID == userID {
			results = append(results, row)
		}
	}
	return results, nil
}

type fakeSideEffectRepo struct {
	rows []*domain.SideEffectLog
}

func (f *fakeSideEffectRepo) GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.SideEffectLog, error) {
	results := []*domain.SideEffectLog{}
	for _, row := range f.rows {
		if row.RoutineID == routineID {
			results = append(results, row)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].WeekStartDate.After(results[j].WeekStartDate)
	})
	return results, nil
}

func (f *fakeSideEffectRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.SideEffectLog) error {
	for _, existing := range f.rows {
		if existing.RoutineID == row.RoutineID && existing.WeekStartDate.Equal(row.WeekStartDate) {
			existing.Notes = row.Notes
			*row = *existing
			return nil
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

func day(tb testing.TB, value string) time.Time {
	tb.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		tb.Fatalf("parse day %q: %v", value, err)
	}
	return parsed.UTC()
}
