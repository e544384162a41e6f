package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// GetAgentBudget retrieves an agent's budget
func (s *pgStore) GetAgentBudget(ctx context.Context, accountID string) (*schema.AgentBudget, error) {
	var budget schema.AgentBudget
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent budget: %w", err)
	}

	return &budget, nil
}

// UpsertAgentBudget creates or replaces an agent's budget
func (s *pgStore) UpsertAgentBudget(ctx context.Context, budget *schema.AgentBudget) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"daily_cap_micro", "refill_threshold_micro", "updated_at"}),
		}).
		Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to upsert agent budget: %w", err)
	}

	return nil
}

// CreateAgentSpendRecord records a finalized agent spend, ignoring replays for the same reservation
func (s *pgStore) CreateAgentSpendRecord(ctx context.Context, record *schema.AgentSpendRecord) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reservation_id"}},
			DoNothing: true,
		}).
		Create(record)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create agent spend record: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// SumAgentSpend sums the recorded spend of an agent on a UTC day
func (s *pgStore) SumAgentSpend(ctx context.Context, accountID string, day time.Time) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).
		Model(&schema.AgentSpendRecord{}).
		Select("COALESCE(SUM(amount_micro), 0)::bigint").
		Where("account_id = ? AND spend_date = ?::date", accountID, domain.UTCDay(day)).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum agent spend: %w", err)
	}

	return sum, nil
}

// SumAgentActiveReservations sums agent reservations created in [from, to) that are still active at now
func (s *pgStore) SumAgentActiveReservations(ctx context.Context, accountID string, from, to, now time.Time) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).
		Model(&schema.CreditReservation{}).
		Select("COALESCE(SUM(amount_micro), 0)::bigint").
		Where("account_id = ? AND is_agent AND state = ? AND expires_at > ?", accountID, domain.ReservationStateActive, now).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum agent active reservations: %w", err)
	}

	return sum, nil
}
