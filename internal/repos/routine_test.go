package repos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/repos"
	"github.com/strandlab/strand-backend/internal/repos/testutil"
)

func TestRoutineRepoCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewRoutineRepo(db, testutil.Logger(t))
	ctx := context.Background()

	row := &domain.Routine{ID: uuid.New(), UserID: "user-1"}
	if err := repo.Create(ctx, tx, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByUserID(ctx, tx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != row.ID {
		t.Fatalf("got %+v, want routine %s", got, row.ID)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestRoutineRepoGetMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewRoutineRepo(db, testutil.Logger(t))

	got, err := repo.GetByUserID(context.Background(), tx, "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing routine, got %+v", got)
	}
}

func TestRoutineRepoUniqueUser(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewRoutineRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Create(ctx, tx, &domain.Routine{ID: uuid.New(), UserID: "user-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, tx, &domain.Routine{ID: uuid.New(), UserID: "user-1"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}
