package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/repos"
)

type TreatmentLogEntry struct {
	ID            uuid.UUID `json:"id"`
	TreatmentID   uuid.UUID `json:"treatment_id"`
	TreatmentName string    `json:"treatment_name"`
	Date          string    `json:"date"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}

type TreatmentLogService interface {
	ListMonth(ctx context.Context, userID, month string) ([]TreatmentLogEntry, error)
	Upsert(ctx context.Context, userID string, treatmentID uuid.UUID, date string, completed bool) (*domain.TreatmentLog, error)
}

type treatmentLogService struct {
	log           *logger.Logger
	routineRepo   repos.RoutineRepo
	treatmentRepo repos.TreatmentRepo
	logRepo       repos.TreatmentLogRepo
}

func NewTreatmentLogService(log *logger.Logger, routineRepo repos.RoutineRepo, treatmentRepo repos.TreatmentRepo, logRepo repos.TreatmentLogRepo) TreatmentLogService {
	serviceLog := log.With("service", "TreatmentLogService")
	return &treatmentLogService{
		log:           serviceLog,
		routineRepo:   routineRepo,
		treatmentRepo: treatmentRepo,
		logRepo:       logRepo,
	}
}

// ListMonth returns every log (completed or not) of the user's treatments in
// the given month, joined with the treatment name. No routine means an
// empty slice, not an error.
func (ls *treatmentLogService) ListMonth(ctx context.Context, userID, month string) ([]TreatmentLogEntry, error) {
	first, last, _, err := monthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerr.ErrInvalidArgument, err)
	}

	routine, err := ls.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return []TreatmentLogEntry{}, nil
	}

	treatments, err := ls.treatmentRepo.GetByRoutineID(ctx, nil, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching treatments: %w", err)
	}
	if len(treatments) == 0 {
		return []TreatmentLogEntry{}, nil
	}

	namesByID := make(map[uuid.UUID]string, len(treatments))
	treatmentIDs := make([]uuid.UUID, 0, len(treatments))
	for _, t := range treatments {
		namesByID[t.ID] = t.Name
		treatmentIDs = append(treatmentIDs, t.ID)
	}

	rows, err := ls.logRepo.GetInRange(ctx, nil, treatmentIDs, first, last)
	if err != nil {
		return nil, fmt.Errorf("fetching logs: %w", err)
	}

	entries := make([]TreatmentLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, TreatmentLogEntry{
			ID:            row.ID,
			TreatmentID:   row.TreatmentID,
			TreatmentName: namesByID[row.TreatmentID],
			Date:          formatDate(row.Date),
			Completed:     row.Completed,
			CreatedAt:     row.CreatedAt,
		})
	}
	return entries, nil
}

// Upsert toggles a day's completion state for one of the user's treatments.
// The (treatment, date) key is unique; repeated toggles overwrite.
func (ls *treatmentLogService) Upsert(ctx context.Context, userID string, treatmentID uuid.UUID, date string, completed bool) (*domain.TreatmentLog, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", pkgerr.ErrInvalidArgument)
	}
	if treatmentID == uuid.Nil {
		return nil, fmt.Errorf("%w: treatment_id is required", pkgerr.ErrInvalidArgument)
	}

	routine, err := ls.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return nil, pkgerr.ErrNoRoutine
	}

	treatment, err := ls.treatmentRepo.GetByIDForRoutine(ctx, nil, treatmentID, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching treatment: %w", err)
	}
	if treatment == nil {
		return nil, pkgerr.ErrNotFound
	}

	row := &domain.TreatmentLog{
		ID:          uuid.New(),
		TreatmentID: treatmentID,
		Date:        day.UTC(),
		Completed:   completed,
	}
	if err := ls.logRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("upserting log: %w", err)
	}
	return row, nil
}
