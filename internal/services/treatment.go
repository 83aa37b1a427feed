package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/repos"
)

type TreatmentUpdate struct {
	Name             *string
	FrequencyPerWeek *int
}

type TreatmentService interface {
	List(ctx context.Context, userID string) ([]*domain.Treatment, error)
	Create(ctx context.Context, userID, name string, frequencyPerWeek int) (*domain.Treatment, error)
	Update(ctx context.Context, userID string, treatmentID uuid.UUID, update TreatmentUpdate) (*domain.Treatment, error)
	Delete(ctx context.Context, userID string, treatmentID uuid.UUID) error
}

type treatmentService struct {
	log           *logger.Logger
	routineRepo   repos.RoutineRepo
	treatmentRepo repos.TreatmentRepo
}

func NewTreatmentService(log *logger.Logger, routineRepo repos.RoutineRepo, treatmentRepo repos.TreatmentRepo) TreatmentService {
	serviceLog := log.With("service", "TreatmentService")
	return &treatmentService{
		log:           serviceLog,
		routineRepo:   routineRepo,
		treatmentRepo: treatmentRepo,
	}
}

// List returns an empty slice when the user has no routine yet.
func (ts *treatmentService) List(ctx context.Context, userID string) ([]*domain.Treatment, error) {
	routine, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return []*domain.Treatment{}, nil
	}
	return ts.treatmentRepo.GetByRoutineID(ctx, nil, routine.ID)
}

func (ts *treatmentService) Create(ctx context.Context, userID, name string, frequencyPerWeek int) (*domain.Treatment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must be a non-empty string", pkgerr.ErrInvalidArgument)
	}
	if frequencyPerWeek < 1 || frequencyPerWeek > 7 {
		return nil, fmt.Errorf("%w: frequency_per_week must be between 1 and 7", pkgerr.ErrInvalidArgument)
	}

	routine, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return nil, pkgerr.ErrNoRoutine
	}

	row := &domain.Treatment{
		ID:               uuid.New(),
		RoutineID:        routine.ID,
		Name:             name,
		FrequencyPerWeek: frequencyPerWeek,
	}
	if _, err := ts.treatmentRepo.Create(ctx, nil, []*domain.Treatment{row}); err != nil {
		return nil, fmt.Errorf("creating treatment: %w", err)
	}
	return row, nil
}

func (ts *treatmentService) Update(ctx context.Context, userID string, treatmentID uuid.UUID, update TreatmentUpdate) (*domain.Treatment, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must be a non-empty string", pkgerr.ErrInvalidArgument)
		}
		updates["name"] = name
	}
	if update.FrequencyPerWeek != nil {
		if *update.FrequencyPerWeek < 1 || *update.FrequencyPerWeek > 7 {
			return nil, fmt.Errorf("%w: frequency_per_week must be between 1 and 7", pkgerr.ErrInvalidArgument)
		}
		updates["frequency_per_week"] = *update.FrequencyPerWeek
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", pkgerr.ErrInvalidArgument)
	}

	routine, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return nil, pkgerr.ErrNoRoutine
	}

	updated, err := ts.treatmentRepo.Update(ctx, nil, treatmentID, routine.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("updating treatment: %w", err)
	}
	if updated == nil {
		return nil, pkgerr.ErrNotFound
	}
	return updated, nil
}

// Delete removes the treatment; its logs go with it via cascade.
func (ts *treatmentService) Delete(ctx context.Context, userID string, treatmentID uuid.UUID) error {
	routine, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return pkgerr.ErrNoRoutine
	}

	deleted, err := ts.treatmentRepo.DeleteByIDForRoutine(ctx, nil, treatmentID, routine.ID)
	if err != nil {
		return fmt.Errorf("deleting treatment: %w", err)
	}
	if !deleted {
		return pkgerr.ErrNotFound
	}
	return nil
}
