package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

const (
	DEFAULT_USAGE_EVENTS_LIMIT = 50
	MAX_USAGE_EVENTS_LIMIT     = 500
)

// CreateUsageEvent appends a usage event
func (s *pgStore) CreateUsageEvent(ctx context.Context, event *schema.UsageEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFinalizationConflict
		}
		return fmt.Errorf("failed to create usage event: %w", err)
	}
	return nil
}

// GetUsageEventByFinalizationID retrieves the usage event of a finalization
func (s *pgStore) GetUsageEventByFinalizationID(ctx context.Context, finalizationID string) (*schema.UsageEvent, error) {
	var event schema.UsageEvent
	err := s.db.WithContext(ctx).Where("finalization_id = ?", finalizationID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get usage event: %w", err)
	}

	return &event, nil
}

// ListUsageEvents lists usage events newest first
func (s *pgStore) ListUsageEvents(ctx context.Context, filter UsageEventFilter) ([]schema.UsageEvent, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.UsageEvent{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CommunityID != nil {
		query = query.Where("community_id = ?", *filter.CommunityID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("created_at < ?", *filter.Until)
	}
	if filter.GuardFailedOnly {
		query = query.Where("conservation_guard_result = ?", schema.ConservationGuardFailed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count usage events: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DEFAULT_USAGE_EVENTS_LIMIT
	}
	if limit > MAX_USAGE_EVENTS_LIMIT {
		limit = MAX_USAGE_EVENTS_LIMIT
	}

	var events []schema.UsageEvent
	err := query.
		Order("created_at DESC").
		Order("event_id DESC").
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list usage events: %w", err)
	}

	return events, uint64(total), nil //nolint:gosec,G115
}

// GetConservationTotals aggregates the quantities compared by the conservation guard
func (s *pgStore) GetConservationTotals(ctx context.Context, accountID *string, now time.Time) (*ConservationTotals, error) {
	args := map[string]interface{}{
		"now":    now,
		"active": domain.ReservationStateActive,
	}

	filter, debitFilter := "", ""
	if accountID != nil {
		filter = " AND account_id = @account"
		debitFilter = " AND d.account_id = @account"
		args["account"] = *accountID
	}

	query := `SELECT
		(SELECT COALESCE(SUM(amount_micro), 0) FROM credit_lots WHERE TRUE` + filter + `)::numeric AS credited_micro,
		(SELECT COALESCE(SUM(remaining_micro), 0) FROM credit_lots WHERE TRUE` + filter + `)::numeric AS remaining_micro,
		(SELECT COALESCE(SUM(amount_micro), 0) FROM credit_debits WHERE TRUE` + filter + `)::numeric AS debited_micro,
		(SELECT COALESCE(SUM(amount_micro), 0) FROM credit_reservations
			WHERE state = @active AND expires_at > @now` + filter + `)::numeric AS active_reservations_micro,
		(SELECT COALESCE(SUM(c.amount_micro), 0) FROM credit_lot_consumptions c
			JOIN credit_debits d ON d.id = c.debit_id WHERE TRUE` + debitFilter + `)::numeric AS consumed_micro`

	var totals ConservationTotals
	if err := s.db.WithContext(ctx).Raw(query, args).Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get conservation totals: %w", err)
	}

	return &totals, nil
}

// ListAccountShortfalls lists accounts whose active holds exceed the credit they still hold
func (s *pgStore) ListAccountShortfalls(ctx context.Context, now time.Time, limit int) ([]AccountShortfall, error) {
	var shortfalls []AccountShortfall
	err := s.db.WithContext(ctx).Raw(`
		WITH holds AS (
			SELECT account_id, SUM(amount_micro) AS active_reservations_micro
			FROM credit_reservations
			WHERE state = ? AND expires_at > ?
			GROUP BY account_id
		), remaining AS (
			SELECT account_id, SUM(remaining_micro) AS remaining_micro
			FROM credit_lots
			GROUP BY account_id
		)
		SELECT h.account_id::text AS account_id,
			COALESCE(r.remaining_micro, 0)::numeric AS remaining_micro,
			h.active_reservations_micro::numeric AS active_reservations_micro
		FROM holds h
		LEFT JOIN remaining r ON r.account_id = h.account_id
		WHERE COALESCE(r.remaining_micro, 0) < h.active_reservations_micro
		ORDER BY h.account_id
		LIMIT ?`,
		domain.ReservationStateActive, now, limit).
		Scan(&shortfalls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account shortfalls: %w", err)
	}

	return shortfalls, nil
}
