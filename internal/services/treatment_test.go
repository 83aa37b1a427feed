package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
)

type treatmentFixture struct {
	svc        TreatmentService
	routines   *fakeRoutineRepo
	treatments *fakeTreatmentRepo
}

func newTreatmentFixture(tb testing.TB) *treatmentFixture {
	tb.Helper()
	routines := newFakeRoutineRepo()
	treatments := &fakeTreatmentRepo{}
	return &treatmentFixture{
		svc:        NewTreatmentService(testLogger(tb), routines, treatments),
		routines:   routines,
		treatments: treatments,
	}
}

func (f *treatmentFixture) addRoutine(tb testing.TB, userID string) *domain.Routine {
	tb.Helper()
	row := &domain.Routine{ID: uuid.New(), UserID: userID}
	f.routines.rows[userID] = row
	return row
}

func TestTreatmentCreateValidation(t *testing.T) {
	cases := []struct {
		name      string
		treatment string
		frequency int
	}{
		{name: "empty name", treatment: "", frequency: 3},
		{name: "blank name", treatment: "   ", frequency: 3},
		{name: "frequency too low", treatment: "Minoxidil 5%", frequency: 0},
		{name: "frequency too high", treatment: "Minoxidil 5%", frequency: 8},
	}

	f := newTreatmentFixture(t)
	f.addRoutine(t, "user-1")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), "user-1", tc.treatment, tc.frequency)
			if !errors.Is(err, pkgerr.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestTreatmentCreate(t *testing.T) {
	f := newTreatmentFixture(t)
	routine := f.addRoutine(t, "user-1")

	created, err := f.svc.Create(context.Background(), "user-1", "  Microneedling  ", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Microneedling" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.RoutineID != routine.ID {
		t.Fatalf("treatment bound to wrong routine")
	}
}

func TestTreatmentCreateWithoutRoutine(t *testing.T) {
	f := newTreatmentFixture(t)
	_, err := f.svc.Create(context.Background(), "user-1", "Minoxidil 5%", 3)
	if !errors.Is(err, pkgerr.ErrNoRoutine) {
		t.Fatalf("expected ErrNoRoutine, got %v", err)
	}
}

func TestTreatmentListWithoutRoutine(t *testing.T) {
	f := newTreatmentFixture(t)
	rows, err := f.svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("want empty slice, got %v", rows)
	}
}

func TestTreatmentUpdate(t *testing.T) {
	f := newTreatmentFixture(t)
	routine := f.addRoutine(t, "user-1")
	created, err := f.svc.Create(context.Background(), "user-1", "Minoxidil 5%", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Minoxidil 10%"
	freq := 5
	updated, err := f.svc.Update(context.Background(), "user-1", created.ID, TreatmentUpdate{Name: &name, FrequencyPerWeek: &freq})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Minoxidil 10%" || updated.FrequencyPerWeek != 5 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.RoutineID != routine.ID {
		t.Fatalf("update moved the treatment to another routine")
	}
}

func TestTreatmentUpdateErrors(t *testing.T) {
	f := newTreatmentFixture(t)
	f.addRoutine(t, "user-1")

	blank := "  "
	badFreq := 9

	cases := []struct {
		name    string
		id      uuid.UUID
		update  TreatmentUpdate
		wantErr error
	}{
		{name: "no fields", id: uuid.New(), update: TreatmentUpdate{}, wantErr: pkgerr.ErrInvalidArgument},
		{name: "blank name", id: uuid.New(), update: TreatmentUpdate{Name: &blank}, wantErr: pkgerr.ErrInvalidArgument},
		{name: "frequency out of range", id: uuid.New(), update: TreatmentUpdate{FrequencyPerWeek: &badFreq}, wantErr: pkgerr.ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Update(context.Background(), "user-1", tc.id, tc.update)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	name := "Finasteride 1mg"
	if _, err := f.svc.Update(context.Background(), "user-1", uuid.New(), TreatmentUpdate{Name: &name}); !errors.Is(err, pkgerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown treatment, got %v", err)
	}
}

func TestTreatmentDelete(t *testing.T) {
	f := newTreatmentFixture(t)
	f.addRoutine(t, "user-1")
	created, err := f.svc.Create(context.Background(), "user-1", "Minoxidil 5%", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.svc.Delete(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.svc.Delete(context.Background(), "user-1", created.ID); !errors.Is(err, pkgerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTreatmentDeleteScopedToOwner(t *testing.T) {
	f := newTreatmentFixture(t)
	f.addRoutine(t, "user-1")
	f.addRoutine(t, "user-2")
	created, err := f.svc.Create(context.Background(), "user-1", "Minoxidil 5%", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.svc.Delete(context.Background(), "user-2", created.ID); !errors.Is(err, pkgerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's treatment, got %v", err)
	}
	if len(f.treatments.rows) != 1 {
		t.Fatalf("treatment was deleted across routines")
	}
}
