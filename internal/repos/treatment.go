package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

type TreatmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Treatment) ([]*domain.Treatment, error)
	GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.Treatment, error)
	GetByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (*domain.Treatment, error)
	Update(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID, updates map[string]interface{}) (*domain.Treatment, error)
	DeleteByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (bool, error)
}

type treatmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTreatmentRepo(db *gorm.DB, baseLog *logger.Logger) TreatmentRepo {
	repoLog := baseLog.With("repo", "TreatmentRepo")
	return &treatmentRepo{db: db, log: repoLog}
}

func (tr *treatmentRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Treatment) ([]*domain.Treatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(rows) == 0 {
		return []*domain.Treatment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByRoutineID returns the routine's treatments in creation order. The
// weekly summary relies on this ordering staying stable.
func (tr *treatmentRepo) GetByRoutineID(ctx context.Context, tx *gorm.DB, routineID uuid.UUID) ([]*domain.Treatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*domain.Treatment
	if routineID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("routine_id = ?", routineID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *treatmentRepo) GetByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (*domain.Treatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if treatmentID == uuid.Nil || routineID == uuid.Nil {
		return nil, nil
	}

	var result domain.Treatment
	err := transaction.WithContext(ctx).
		Where("id = ? AND routine_id = ?", treatmentID, routineID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Update applies the given column updates scoped to the owning routine and
// returns the updated row, or nil when no row matched.
func (tr *treatmentRepo) Update(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID, updates map[string]interface{}) (*domain.Treatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if treatmentID == uuid.Nil || routineID == uuid.Nil || len(updates) == 0 {
		return nil, nil
	}

	res := transaction.WithContext(ctx).
		Model(&domain.Treatment{}).
		Where("id = ? AND routine_id = ?", treatmentID, routineID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return tr.GetByIDForRoutine(ctx, tx, treatmentID, routineID)
}

func (tr *treatmentRepo) DeleteByIDForRoutine(ctx context.Context, tx *gorm.DB, treatmentID, routineID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if treatmentID == uuid.Nil || routineID == uuid.Nil {
		return false, nil
	}

	res := transaction.WithContext(ctx).
		Where("id = ? AND routine_id = ?", treatmentID, routineID).
		Delete(&domain.Treatment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
