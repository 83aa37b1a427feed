package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
	pkgerr "github.com/strandlab/strand-backend/internal/pkg/errors"
	"github.com/strandlab/strand-backend/internal/repos"
)

// Display names for the legacy treatment-type enum. Unknown codes pass
// through unchanged.
var treatmentLabels = map[string]string{
	"minoxidil":     "Minoxidil 5%",
	"finasteride":   "Finasteride 1mg",
	"microneedling": "Microneedling",
	"ketoconazole":  "Ketoconazole Shampoo",
	"hair_oils":     "Hair Oils",
}

type TreatmentConsistency struct {
	TreatmentID   uuid.UUID `json:"treatment_id"`
	Name          string    `json:"name"`
	CompletedDays int       `json:"completed_days"`
	ExpectedDays  int       `json:"expected_days"`
	Percentage    int       `json:"percentage"`
}

type RoutineSummary struct {
	JourneyDay        int                    `json:"journey_day"`
	RoutineCreatedAt  time.Time              `json:"routine_created_at"`
	WeeklyConsistency []TreatmentConsistency `json:"weekly_consistency"`
}

type HeatmapDay struct {
	Date            string  `json:"date"`
	CompletionRatio float64 `json:"completion_ratio"`
}

type HeatmapResult struct {
	Month string       `json:"month"`
	Days  []HeatmapDay `json:"days"`
}

// TrackerService owns the routine lifecycle and the adherence aggregations.
//
// EnsureRoutine is a documented side effect of both read aggregations: the
// first summary or heatmap call for a user with legacy rows materializes the
// normalized routine. A nil routine with a nil error means "no data".
type TrackerService interface {
	GetRoutine(ctx context.Context, userID string) (*domain.Routine, error)
	CreateRoutine(ctx context.Context, userID string) (*domain.Routine, error)
	EnsureRoutine(ctx context.Context, userID string) (*domain.Routine, error)
	GetWeeklySummary(ctx context.Context, userID string) (*RoutineSummary, error)
	GetMonthlyHeatmap(ctx context.Context, userID string, month string) (*HeatmapResult, error)
}

type trackerService struct {
	log           *logger.Logger
	routineRepo   repos.RoutineRepo
	treatmentRepo repos.TreatmentRepo
	logRepo       repos.TreatmentLogRepo
	legacyRepo    repos.LegacyRoutineRepo
	now           func() time.Time
}

func NewTrackerService(log *logger.Logger, routineRepo repos.RoutineRepo, treatmentRepo repos.TreatmentRepo, logRepo repos.TreatmentLogRepo, legacyRepo repos.LegacyRoutineRepo) TrackerService {
	serviceLog := log.With("service", "TrackerService")
	return &trackerService{
		log:           serviceLog,
		routineRepo:   routineRepo,
		treatmentRepo: treatmentRepo,
		logRepo:       logRepo,
		legacyRepo:    legacyRepo,
		now:           time.Now,
	}
}

func (ts *trackerService) GetRoutine(ctx context.Context, userID string) (*domain.Routine, error) {
	return ts.routineRepo.GetByUserID(ctx, nil, userID)
}

func (ts *trackerService) CreateRoutine(ctx context.Context, userID string) (*domain.Routine, error) {
	existing, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if existing != nil {
		return nil, pkgerr.ErrRoutineExists
	}

	row := &domain.Routine{ID: uuid.New(), UserID: userID}
	if err := ts.routineRepo.Create(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("creating routine: %w", err)
	}
	return row, nil
}

// EnsureRoutine returns the user's routine, seeding it from legacy rows when
// none exists yet. Legacy adherence history is not backfilled: the old
// schema stored a weekday plan, never per-day completions, so there is
// nothing to carry over. Returns (nil, nil) when the user has no routine
// and no legacy rows.
func (ts *trackerService) EnsureRoutine(ctx context.Context, userID string) (*domain.Routine, error) {
	routine, err := ts.routineRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching routine: %w", err)
	}
	if routine != nil {
		return routine, nil
	}

	legacyRows, err := ts.legacyRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching legacy rows: %w", err)
	}
	if len(legacyRows) == 0 {
		return nil, nil
	}

	row := &domain.Routine{ID: uuid.New(), UserID: userID}
	if err := ts.routineRepo.Create(ctx, nil, row); err != nil {
		// Concurrent first reads race here; the unique index on user_id
		// picks a winner. Take the winner's row instead of failing.
		existing, lookupErr := ts.routineRepo.GetByUserID(ctx, nil, userID)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("creating routine: %w", err)
	}

	treatments := make([]*domain.Treatment, 0, len(legacyRows))
	for _, lr := range legacyRows {
		treatments = append(treatments, &domain.Treatment{
			ID:               uuid.New(),
			RoutineID:        row.ID,
			Name:             legacyTreatmentName(lr.TreatmentType),
			FrequencyPerWeek: legacyFrequency(lr.Days()),
		})
	}
	if _, err := ts.treatmentRepo.Create(ctx, nil, treatments); err != nil {
		return nil, fmt.Errorf("seeding treatments: %w", err)
	}

	ts.log.Info("Seeded routine from legacy rows", "routine_id", row.ID, "treatments", len(treatments))
	return row, nil
}

func legacyTreatmentName(treatmentType string) string {
	if label, ok := treatmentLabels[treatmentType]; ok {
		return label
	}
	return treatmentType
}

func legacyFrequency(days []string) int {
	distinct := make(map[string]struct{}, len(days))
	for _, day := range days {
		if day == "daily" {
			return 7
		}
		distinct[day] = struct{}{}
	}
	return len(distinct)
}

func (ts *trackerService) GetWeeklySummary(ctx context.Context, userID string) (*RoutineSummary, error) {
	routine, err := ts.EnsureRoutine(ctx, userID)
	if err != nil {
		return nil, err
	}
	if routine == nil {
		return nil, nil
	}

	now := ts.now()
	summary := &RoutineSummary{
		JourneyDay:        journeyDay(routine.CreatedAt, now),
		RoutineCreatedAt:  routine.CreatedAt,
		WeeklyConsistency: []TreatmentConsistency{},
	}

	treatments, err := ts.treatmentRepo.GetByRoutineID(ctx, nil, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching treatments: %w", err)
	}
	if len(treatments) == 0 {
		return summary, nil
	}

	treatmentIDs := make([]uuid.UUID, 0, len(treatments))
	for _, t := range treatments {
		treatmentIDs = append(treatmentIDs, t.ID)
	}

	monday, sunday := weekBounds(now)
	weekLogs, err := ts.logRepo.GetCompletedInRange(ctx, nil, treatmentIDs, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("fetching week logs: %w", err)
	}

	completedCounts := make(map[uuid.UUID]int, len(treatments))
	for _, logRow := range weekLogs {
		completedCounts[logRow.TreatmentID]++
	}

	for _, t := range treatments {
		completed := completedCounts[t.ID]
		expected := t.FrequencyPerWeek
		percentage := 0
		if expected > 0 {
			percentage = int(math.Round(float64(completed) / float64(expected) * 100))
			if percentage > 100 {
				percentage = 100
			}
		}
		summary.WeeklyConsistency = append(summary.WeeklyConsistency, TreatmentConsistency{
			TreatmentID:   t.ID,
			Name:          t.Name,
			CompletedDays: completed,
			ExpectedDays:  expected,
			Percentage:    percentage,
		})
	}

	return summary, nil
}

func (ts *trackerService) GetMonthlyHeatmap(ctx context.Context, userID string, month string) (*HeatmapResult, error) {
	routine, err := ts.EnsureRoutine(ctx, userID)
	if err != nil {
		return nil, err
	}
	if routine == nil {
		return nil, nil
	}

	first, last, lastDay, err := monthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerr.ErrInvalidArgument, err)
	}

	treatments, err := ts.treatmentRepo.GetByRoutineID(ctx, nil, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching treatments: %w", err)
	}

	result := &HeatmapResult{Month: month, Days: make([]HeatmapDay, 0, lastDay)}

	totalTreatments := len(treatments)
	if totalTreatments == 0 {
		for d := 0; d < lastDay; d++ {
			result.Days = append(result.Days, HeatmapDay{Date: formatDate(first.AddDate(0, 0, d)), CompletionRatio: 0})
		}
		return result, nil
	}

	treatmentIDs := make([]uuid.UUID, 0, totalTreatments)
	for _, t := range treatments {
		treatmentIDs = append(treatmentIDs, t.ID)
	}

	// One batched read for the whole month keeps query count independent of
	// days-in-month and treatment count.
	monthLogs, err := ts.logRepo.GetCompletedInRange(ctx, nil, treatmentIDs, first, last)
	if err != nil {
		return nil, fmt.Errorf("fetching month logs: %w", err)
	}

	// Set semantics per date: a treatment completed twice on the same day
	// counts once.
	completedByDate := make(map[string]map[uuid.UUID]struct{})
	for _, logRow := range monthLogs {
		key := formatDate(logRow.Date)
		if completedByDate[key] == nil {
			completedByDate[key] = make(map[uuid.UUID]struct{})
		}
		completedByDate[key][logRow.TreatmentID] = struct{}{}
	}

	for d := 0; d < lastDay; d++ {
		key := formatDate(first.AddDate(0, 0, d))
		count := len(completedByDate[key])
		ratio := math.Round(float64(count)/float64(totalTreatments)*100) / 100
		result.Days = append(result.Days, HeatmapDay{Date: key, CompletionRatio: ratio})
	}

	return result, nil
}
