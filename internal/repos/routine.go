package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

type RoutineRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.Routine) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Routine, error)
}

type routineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoutineRepo(db *gorm.DB, baseLog *logger.Logger) RoutineRepo {
	repoLog := baseLog.With("repo", "RoutineRepo")
	return &routineRepo{db: db, log: repoLog}
}

func (rr *routineRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Routine) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return nil
}

// GetByUserID returns nil without error when the user has no routine.
func (rr *routineRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Routine, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if userID == "" {
		return nil, nil
	}

	var result domain.Routine
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
