package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/domain"
	"github.com/strandlab/strand-backend/internal/logger"
)

type TreatmentLogRepo interface {
	GetCompletedInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error)
	GetInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *domain.TreatmentLog) error
}

type treatmentLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTreatmentLogRepo(db *gorm.DB, baseLog *logger.Logger) TreatmentLogRepo {
	repoLog := baseLog.With("repo", "TreatmentLogRepo")
	return &treatmentLogRepo{db: db, log: repoLog}
}

// GetCompletedInRange batches the completed rows for all given treatments in
// one query; both calculators depend on this staying a single round trip.
func (tlr *treatmentLogRepo) GetCompletedInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = tlr.db
	}

	var results []*domain.TreatmentLog
	if len(treatmentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("treatment_id IN ? AND date >= ? AND date <= ? AND completed = ?", treatmentIDs, from, to, true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tlr *treatmentLogRepo) GetInRange(ctx context.Context, tx *gorm.DB, treatmentIDs []uuid.UUID, from, to time.Time) ([]*domain.TreatmentLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = tlr.db
	}

	var results []*domain.TreatmentLog
	if len(treatmentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("treatment_id IN ? AND date >= ? AND date <= ?", treatmentIDs, from, to).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert writes the completed flag for the (treatment, date) key.
// Last write wins; there is no application-level conflict detection.
func (tlr *treatmentLogRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.TreatmentLog) error {
	transaction := tx
	if transaction == nil {
		transaction = tlr.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("treatment_id = ? AND date = ?", row.TreatmentID, row.Date).
		Assign(map[string]interface{}{"completed": row.Completed}).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}
