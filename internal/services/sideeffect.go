package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/repos"
)

type SideEffectService interface {
	List(ctx context.Context, userID string) ([]*domain.SideEffectLog, error)
	Upsert(ctx context.Context, userID, weekStartDate, notes string) (*domain.SideEffectLog, error)
}

type sideEffectService struct {
	log         *logger.Logger
	routineRepo repos.RoutineRepo
	sideRepo    repos.SideEffectLogRepo
}

func NewSideEffectService(log *logger.Logger, routineRepo repos.RoutineRepo, sideRepo repos.SideEffectLogRepo) SideEffectService {
	serviceLog := log.With("service", "SideEffectService")
	return &sideEffectService{
		log:         serviceLog,
		routineRepo: routineRepo,
		sideRepo:    sideRepo,
	}
}

func (ss *sideEffectService) List(ctx context.Context, userID string) ([]*domain.SideEffectLog, error) {
	routine, err := ss.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return []*domain.SideEffectLog{}, nil
	}
	return ss.sideRepo.GetByRoutineID(ctx, nil, routine.ID)
}

// Upsert records side-effect notes for one week. week_start_date must be a
// Monday so every routine keeps exactly one row per ISO week.
func (ss *sideEffectService) Upsert(ctx context.Context, userID, weekStartDate, notes string) (*domain.SideEffectLog, error) {
	week, err := time.Parse("2006-01-02", weekStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: week_start_date must be in YYYY-MM-DD format", pkgerr.ErrInvalidArgument)
	}
	if week.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: week_start_date must be a Monday", pkgerr.ErrInvalidArgument)
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, fmt.Errorf("%w: notes is required", pkgerr.ErrInvalidArgument)
	}

	routine, err := ss.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine == nil {
		return nil, pkgerr.ErrNoRoutine
	}

	row := &domain.SideEffectLog{
		ID:            uuid.New(),
		RoutineID:     routine.ID,
		WeekStartDate: week.UTC(),
		Notes:         notes,
	}
	if err := ss.sideRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("upserting side-effect log: %w", err)
	}
	return row, nil
}
