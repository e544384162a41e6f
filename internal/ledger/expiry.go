package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

func (l *ledger) ExpireReservations(ctx context.Context, limit int) (int64, error) {
	expired, err := l.store.ExpireReservations(ctx, l.clock.Now(), limit)
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		metrics.ReservationsExpired.Add(float64(expired))
		logger.InfoCtx(ctx, "Expired lapsed reservations", zap.Int64("count", expired))
	}

	return expired, nil
}

// BurnExpiredLots writes off the remaining credit of expired lots.
// Expired credit still backing an active hold stays until the hold settles, so the
// account never holds more than it has.
func (l *ledger) BurnExpiredLots(ctx context.Context, accountID string) (int64, error) {
	var burned int64
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		now := l.clock.Now()

		account, err := tx.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		lots, err := tx.LockExpiredLots(ctx, accountID, now)
		if err != nil {
			return err
		}
		if len(lots) == 0 {
			return nil
		}

		var expired int64
		for _, lot := range lots {
			expired += lot.RemainingMicro
		}

		balance, err := l.balance(ctx, tx, accountID, now)
		if err != nil {
			return err
		}
		burnable := min(expired, max(balance.TotalMicro+expired-balance.ReservedMicro, 0))
		if burnable == 0 {
			return nil
		}

		remaining := burnable
		consumptions := make([]schema.LotConsumption, 0, len(lots))
		for _, lot := range lots {
			if remaining == 0 {
				break
			}
			take := min(lot.RemainingMicro, remaining)
			remaining -= take
			consumptions = append(consumptions, schema.LotConsumption{
				LotID:       lot.ID,
				AmountMicro: take,
				CreatedAt:   now,
			})
		}

		err = tx.CreateDebit(ctx, store.DebitInput{
			Debit: schema.CreditDebit{
				ID:          uuid.NewString(),
				AccountID:   accountID,
				AmountMicro: burnable,
				Reason:      domain.DebitReasonExpiry,
				CreatedAt:   now,
			},
			Consumptions: consumptions,
		})
		if err != nil {
			return err
		}

		burned = burnable
		return nil
	})
	if err != nil {
		return 0, err
	}

	if burned > 0 {
		metrics.LotsBurnedMicro.Add(float64(burned))
		logger.InfoCtx(ctx, "Burned expired lots", zap.String("accountID", accountID), zap.Int64("burnedMicro", burned))
	}

	return burned, nil
}
