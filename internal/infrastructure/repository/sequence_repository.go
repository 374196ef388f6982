package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/invoicely/invoicely-api/internal/domain/entity"
	domainRepo "github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/pkg/apperror"
)

const sequenceRowID = 1

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next advances the counter and returns the value it held before the advance.
// The single UPDATE ... RETURNING keeps the read-increment atomic, so two
// concurrent allocations can never hand out the same value.
func (r *sequenceRepository) Next(ctx context.Context) (int64, error) {
	var allocated int64
	err := r.db.WithContext(ctx).Raw(`
		UPDATE invoice_sequences
		SET next_value = next_value + 1, updated_at = NOW()
		WHERE id = ?
		RETURNING next_value - 1
	`, sequenceRowID).Scan(&allocated).Error
	if err != nil {
		return 0, sequenceError(err)
	}
	if allocated == 0 {
		// No row matched: the counter was never seeded.
		return 0, apperror.NewStorageUnavailableError("Invoice number counter is not initialized")
	}
	return allocated, nil
}

func (r *sequenceRepository) Peek(ctx context.Context) (int64, error) {
	var seq entity.InvoiceSequence
	err := r.db.WithContext(ctx).First(&seq, "id = ?", sequenceRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperror.NewStorageUnavailableError("Invoice number counter is not initialized")
	}
	if err != nil {
		return 0, sequenceError(err)
	}
	return seq.NextValue, nil
}

func (r *sequenceRepository) Reset(ctx context.Context) error {
	err := r.db.WithContext(ctx).Model(&entity.InvoiceSequence{}).
		Where("id = ?", sequenceRowID).
		Update("next_value", 1).Error
	if err != nil {
		return sequenceError(err)
	}
	return nil
}

// sequenceError surfaces counter failures as storage-unavailable so callers
// never silently fall back to a non-unique numbering scheme.
func sequenceError(err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewStorageUnavailableError("Invoice number counter unavailable: " + err.Error())
}
