package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/repos"
	"github.com/strandlab/strand-backend/internal/repos/testutil"
)

func TestSideEffectLogRepoUpsertAndList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewSideEffectLogRepo(db, testutil.Logger(t))
	ctx := context.Background()

	routine := testutil.CreateRoutine(t, tx, "user-1")
	weekOne := testutil.Day(t, "2024-03-04")
	weekTwo := testutil.Day(t, "2024-03-11")

	if err := repo.Upsert(ctx, tx, &domain.SideEffectLog{ID: uuid.New(), RoutineID: routine.ID, WeekStartDate: weekOne, Notes: "itching"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, tx, &domain.SideEffectLog{ID: uuid.New(), RoutineID: routine.ID, WeekStartDate: weekTwo, Notes: "fine"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, tx, &domain.SideEffectLog{ID: uuid.New(), RoutineID: routine.ID, WeekStartDate: weekOne, Notes: "itching subsided"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := repo.GetByRoutineID(ctx, tx, routine.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (one per week)", len(rows))
	}
	if rows[0].Notes != "fine" {
		t.Fatalf("rows not in reverse week order: first is %q", rows[0].Notes)
	}
	if rows[1].Notes != "itching subsided" {
		t.Fatalf("upsert did not overwrite notes: %q", rows[1].Notes)
	}
}
