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

// CreateAccount inserts a new account
func (s *pgStore) CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.CreditAccount, error) {
	account := schema.CreditAccount{
		ID:         input.ID,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		CreatedAt:  input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// EnsureSystemAccount returns the unique system account for the entity, creating it if missing
func (s *pgStore) EnsureSystemAccount(ctx context.Context, input CreateAccountInput) (*schema.CreditAccount, error) {
	account := schema.CreditAccount{
		ID:         input.ID,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		CreatedAt:  input.CreatedAt,
	}

	// Matches the partial unique index on system entity types
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entity_type"}, {Name: "entity_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "entity_type IN ('foundation', 'commons', 'community-pool')"},
			}},
			DoNothing: true,
		}).
		Create(&account).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure system account: %w", err)
	}

	existing, err := s.GetAccountByEntity(ctx, input.EntityType, input.EntityID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("system account %s/%s missing after upsert", input.EntityType, input.EntityID)
	}

	return existing, nil
}

// GetAccount retrieves an account by id
func (s *pgStore) GetAccount(ctx context.Context, id string) (*schema.CreditAccount, error) {
	var account schema.CreditAccount
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetAccountByEntity retrieves the oldest account of an entity
func (s *pgStore) GetAccountByEntity(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error) {
	var account schema.CreditAccount
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by entity: %w", err)
	}

	return &account, nil
}

// LockAccount retrieves an account with a row lock held until the transaction ends
func (s *pgStore) LockAccount(ctx context.Context, id string) (*schema.CreditAccount, error) {
	var account schema.CreditAccount
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	return &account, nil
}

// CreateLot inserts a new lot
func (s *pgStore) CreateLot(ctx context.Context, lot *schema.CreditLot) error {
	if err := s.db.WithContext(ctx).Create(lot).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSourceRef
		}
		return fmt.Errorf("failed to create lot: %w", err)
	}
	return nil
}

// GetLotBySourceRef retrieves the lot minted for a source reference
func (s *pgStore) GetLotBySourceRef(ctx context.Context, sourceRef string) (*schema.CreditLot, error) {
	var lot schema.CreditLot
	err := s.db.WithContext(ctx).Where("source_ref = ?", sourceRef).First(&lot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lot by source ref: %w", err)
	}

	return &lot, nil
}

// consumptionOrder orders lots so expiring lots are consumed first (soonest expiry first),
// then non-expiring lots oldest first
func consumptionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("expires_at IS NULL").
		Order("expires_at ASC").
		Order("created_at ASC").
		Order("id ASC")
}

// ListAccountLots lists every lot of an account in consumption order
func (s *pgStore) ListAccountLots(ctx context.Context, accountID string) ([]schema.CreditLot, error) {
	var lots []schema.CreditLot
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Scopes(consumptionOrder).
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lots: %w", err)
	}

	return lots, nil
}

// LockConsumableLots locks the spendable lots of an account in consumption order
func (s *pgStore) LockConsumableLots(ctx context.Context, accountID string, validAt time.Time) ([]schema.CreditLot, error) {
	var lots []schema.CreditLot
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND remaining_micro > 0 AND (expires_at IS NULL OR expires_at > ?)", accountID, validAt).
		Scopes(consumptionOrder).
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock consumable lots: %w", err)
	}

	return lots, nil
}

// LockExpiredLots locks the expired lots of an account that still hold credit
func (s *pgStore) LockExpiredLots(ctx context.Context, accountID string, now time.Time) ([]schema.CreditLot, error) {
	var lots []schema.CreditLot
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND remaining_micro > 0 AND expires_at IS NOT NULL AND expires_at <= ?", accountID, now).
		Order("expires_at ASC").
		Order("id ASC").
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock expired lots: %w", err)
	}

	return lots, nil
}

// SumSpendableLots sums the remaining credit of lots not expired at now
func (s *pgStore) SumSpendableLots(ctx context.Context, accountID string, now time.Time) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).
		Model(&schema.CreditLot{}).
		Select("COALESCE(SUM(remaining_micro), 0)::bigint").
		Where("account_id = ? AND (expires_at IS NULL OR expires_at > ?)", accountID, now).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum spendable lots: %w", err)
	}

	return sum, nil
}

// ListAccountsWithExpiredLots lists accounts holding expired, unburned credit
func (s *pgStore) ListAccountsWithExpiredLots(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var accountIDs []string
	err := s.db.WithContext(ctx).
		Model(&schema.CreditLot{}).
		Distinct("account_id").
		Where("remaining_micro > 0 AND expires_at IS NOT NULL AND expires_at <= ?", now).
		Limit(limit).
		Pluck("account_id", &accountIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts with expired lots: %w", err)
	}

	return accountIDs, nil
}

// CreateDebit consumes the listed lots and records the debit with its breakdown
func (s *pgStore) CreateDebit(ctx context.Context, input DebitInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range input.Consumptions {
			result := tx.Model(&schema.CreditLot{}).
				Where("id = ? AND account_id = ? AND remaining_micro >= ?", c.LotID, input.Debit.AccountID, c.AmountMicro).
				Update("remaining_micro", gorm.Expr("remaining_micro - ?", c.AmountMicro))
			if result.Error != nil {
				return fmt.Errorf("failed to consume lot %s: %w", c.LotID, result.Error)
			}
			if result.RowsAffected != 1 {
				return fmt.Errorf("failed to consume lot %s: not enough remaining credit", c.LotID)
			}
		}

		debit := input.Debit
		if err := tx.Create(&debit).Error; err != nil {
			return fmt.Errorf("failed to create debit: %w", err)
		}

		if len(input.Consumptions) > 0 {
			consumptions := make([]schema.LotConsumption, len(input.Consumptions))
			for i, c := range input.Consumptions {
				c.DebitID = debit.ID
				consumptions[i] = c
			}
			batchSize := calculateSafeBatchSize(len(consumptions), 4)
			if err := tx.CreateInBatches(&consumptions, batchSize).Error; err != nil {
				return fmt.Errorf("failed to create lot consumptions: %w", err)
			}
		}

		return nil
	})
}

// CreateReservation inserts a new reservation
func (s *pgStore) CreateReservation(ctx context.Context, reservation *schema.CreditReservation) error {
	if err := s.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservation retrieves a reservation by id
func (s *pgStore) GetReservation(ctx context.Context, id string) (*schema.CreditReservation, error) {
	var reservation schema.CreditReservation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

// LockReservation retrieves a reservation with a row lock held until the transaction ends
func (s *pgStore) LockReservation(ctx context.Context, id string) (*schema.CreditReservation, error) {
	var reservation schema.CreditReservation
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}

	return &reservation, nil
}

// GetReservationByFinalizationID retrieves the reservation settled under a finalization id
func (s *pgStore) GetReservationByFinalizationID(ctx context.Context, finalizationID string) (*schema.CreditReservation, error) {
	var reservation schema.CreditReservation
	err := s.db.WithContext(ctx).Where("finalization_id = ?", finalizationID).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation by finalization id: %w", err)
	}

	return &reservation, nil
}

// UpdateReservation persists a reservation's state and finalization columns
func (s *pgStore) UpdateReservation(ctx context.Context, reservation *schema.CreditReservation) error {
	err := s.db.WithContext(ctx).
		Model(&schema.CreditReservation{}).
		Where("id = ?", reservation.ID).
		Updates(map[string]interface{}{
			"state":           reservation.State,
			"finalization_id": reservation.FinalizationID,
			"finalized_micro": reservation.FinalizedMicro,
			"released_micro":  reservation.ReleasedMicro,
			"finalized_at":    reservation.FinalizedAt,
			"canceled_at":     reservation.CanceledAt,
			"updated_at":      reservation.UpdatedAt,
		}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFinalizationConflict
		}
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	return nil
}

// SumActiveReservations sums the active, unexpired reservations of an account
func (s *pgStore) SumActiveReservations(ctx context.Context, accountID string, now time.Time) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).
		Model(&schema.CreditReservation{}).
		Select("COALESCE(SUM(amount_micro), 0)::bigint").
		Where("account_id = ? AND state = ? AND expires_at > ?", accountID, domain.ReservationStateActive, now).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum active reservations: %w", err)
	}

	return sum, nil
}

// CountActiveReservations counts the active, unexpired reservations of an account
func (s *pgStore) CountActiveReservations(ctx context.Context, accountID string, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CreditReservation{}).
		Where("account_id = ? AND state = ? AND expires_at > ?", accountID, domain.ReservationStateActive, now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return count, nil
}

// ExpireReservations persists the expired state of active reservations past their expiry.
// Rows locked by an in-flight finalize or cancel are skipped.
func (s *pgStore) ExpireReservations(ctx context.Context, now time.Time, limit int) (int64, error) {
	result := s.db.WithContext(ctx).Exec(`
		UPDATE credit_reservations SET state = ?, updated_at = ?
		WHERE id IN (
			SELECT id FROM credit_reservations
			WHERE state = ? AND expires_at <= ?
			ORDER BY expires_at ASC
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)`,
		domain.ReservationStateExpired, now, domain.ReservationStateActive, now, limit)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire reservations: %w", result.Error)
	}

	return result.RowsAffected, nil
}
