package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

type SideEffectLogRepo interface {
	GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.SideEffectLog, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *domain.SideEffectLog) error
}

type sideEffectLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSideEffectLogRepo(db *gorm.DB, baseLog *logger.Logger) SideEffectLogRepo {
	repoLog := baseLog.With("repo", "SideEffectLogRepo")
	return &sideEffectLogRepo{db: db, log: repoLog}
}

func (sr *sideEffectLogRepo) GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.SideEffectLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*domain.SideEffectLog
	if routineID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("routine_id = ?", routineID).
		Order("week_start_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *sideEffectLogRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.SideEffectLog) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("routine_id = ? AND week_start_date = ?", row.RoutineID, row.WeekStartDate).
		Assign(map[string]interface{}{"notes": row.Notes}).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}
