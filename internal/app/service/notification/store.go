package notification

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/homeware/paynotify/internal/models"
)

// Store is the persistence capability consumed by the orchestrator. A nil
// record with nil error from FindByTransactionID means "not recorded".
type Store interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*models.PaymentRecord, error)
	// Insert persists a record exactly once. A second insert for the same
	// transaction id fails with ErrDuplicateTransaction.
	Insert(ctx context.Context, record *models.PaymentRecord) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.PaymentRecord, error) {
	var rec models.PaymentRecord
	err := s.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore) Insert(ctx context.Context, record *models.PaymentRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		// The unique constraint is the authoritative duplicate signal; the
		// read-then-write pre-check alone cannot close the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("insert payment record: %w", err)
	}
	return nil
}
