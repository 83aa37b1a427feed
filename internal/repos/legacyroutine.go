package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

// LegacyRoutineRepo reads the flat pre-tracker schema. Migration input only.
type LegacyRoutineRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.LegacyRoutine, error)
}

type legacyRoutineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLegacyRoutineRepo(db *gorm.DB, baseLog *logger.Logger) LegacyRoutineRepo {
	repoLog := baseLog.With("repo", "LegacyRoutineRepo")
	return &legacyRoutineRepo{db: db, log: repoLog}
}

func (lr *legacyRoutineRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.LegacyRoutine, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*domain.LegacyRoutine
	if userID == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
