package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

const (
	DEFAULT_DLQ_LIST_LIMIT = 50
	MAX_DLQ_LIST_LIMIT     = 500
)

// CreateDLQEntry inserts a new DLQ entry
func (s *pgStore) CreateDLQEntry(ctx context.Context, entry *schema.BillingDLQEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create dlq entry: %w", err)
	}
	return nil
}

// GetDLQEntry retrieves a DLQ entry by id
func (s *pgStore) GetDLQEntry(ctx context.Context, id uint64) (*schema.BillingDLQEntry, error) {
	var entry schema.BillingDLQEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dlq entry: %w", err)
	}

	return &entry, nil
}

// ClaimDLQEntries moves due pending entries and abandoned processing entries to processing.
// SKIP LOCKED lets redundant workers on other instances claim disjoint batches.
func (s *pgStore) ClaimDLQEntries(ctx context.Context, now time.Time, staleBefore time.Time, limit int) ([]schema.BillingDLQEntry, error) {
	var entries []schema.BillingDLQEntry
	// claimed_at is compared for equality on release; keep it at column precision
	claimedAt := now.UTC().Truncate(time.Microsecond)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("(status = ? AND next_retry_at <= ?) OR (status = ? AND claimed_at < ?)",
				schema.DLQStatusPending, now, schema.DLQStatusProcessing, staleBefore).
			Order("next_retry_at ASC").
			Order("id ASC").
			Limit(limit).
			Find(&entries).Error
		if err != nil {
			return fmt.Errorf("failed to select due dlq entries: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		ids := make([]uint64, len(entries))
		for i := range entries {
			ids[i] = entries[i].ID
		}

		err = tx.Model(&schema.BillingDLQEntry{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"status":     schema.DLQStatusProcessing,
				"claimed_at": claimedAt,
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to claim dlq entries: %w", err)
		}

		for i := range entries {
			claimed := claimedAt
			entries[i].Status = schema.DLQStatusProcessing
			entries[i].ClaimedAt = &claimed
			entries[i].UpdatedAt = now
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateDLQEntry persists a DLQ entry
func (s *pgStore) UpdateDLQEntry(ctx context.Context, entry *schema.BillingDLQEntry) error {
	err := s.db.WithContext(ctx).
		Model(&schema.BillingDLQEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"error_message": entry.ErrorMessage,
			"retry_count":   entry.RetryCount,
			"max_retries":   entry.MaxRetries,
			"status":        entry.Status,
			"next_retry_at": entry.NextRetryAt,
			"claimed_at":    entry.ClaimedAt,
			"updated_at":    entry.UpdatedAt,
			"completed_at":  entry.CompletedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update dlq entry: %w", err)
	}

	return nil
}

// ReleaseDLQClaim records the outcome of a claimed entry. It writes nothing and returns false
// when the claim taken at claimedAt is no longer held, i.e. another worker retook the entry.
func (s *pgStore) ReleaseDLQClaim(ctx context.Context, entry *schema.BillingDLQEntry, claimedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.BillingDLQEntry{}).
		Where("id = ? AND status = ? AND claimed_at = ?", entry.ID, schema.DLQStatusProcessing, claimedAt).
		Updates(map[string]interface{}{
			"error_message": entry.ErrorMessage,
			"retry_count":   entry.RetryCount,
			"status":        entry.Status,
			"next_retry_at": entry.NextRetryAt,
			"claimed_at":    nil,
			"updated_at":    entry.UpdatedAt,
			"completed_at":  entry.CompletedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to release dlq claim: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ListDLQEntries lists DLQ entries oldest first
func (s *pgStore) ListDLQEntries(ctx context.Context, filter DLQEntryFilter) ([]schema.BillingDLQEntry, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.BillingDLQEntry{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.OperationType != nil {
		query = query.Where("operation_type = ?", *filter.OperationType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dlq entries: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DEFAULT_DLQ_LIST_LIMIT
	}
	if limit > MAX_DLQ_LIST_LIMIT {
		limit = MAX_DLQ_LIST_LIMIT
	}

	var entries []schema.BillingDLQEntry
	err := query.
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dlq entries: %w", err)
	}

	return entries, uint64(total), nil //nolint:gosec,G115
}
