package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// ReserveInput is a request to hold credit
type ReserveInput struct {
	AccountID   string
	AmountMicro int64
	// TTL defaults to the configured reservation TTL when zero
	TTL     time.Duration
	IsAgent bool
}

// Reservation is a hold against an account as seen at read time
type Reservation struct {
	ID             string                  `json:"id"`
	AccountID      string                  `json:"account_id"`
	AmountMicro    int64                   `json:"amount_micro"`
	State          domain.ReservationState `json:"state"`
	IsAgent        bool                    `json:"is_agent"`
	FinalizationID *string                 `json:"finalization_id,omitempty"`
	FinalizedMicro *int64                  `json:"finalized_micro,omitempty"`
	ReleasedMicro  *int64                  `json:"released_micro,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	ExpiresAt      time.Time               `json:"expires_at"`
	FinalizedAt    *time.Time              `json:"finalized_at,omitempty"`
	CanceledAt     *time.Time              `json:"canceled_at,omitempty"`
}

// Usage describes the metered work a finalization pays for
type Usage struct {
	CommunityID  *string
	NftID        *string
	PoolID       *string
	TokensInput  int64
	TokensOutput int64
}

// FinalizeInput is a request to settle a reservation
type FinalizeInput struct {
	ReservationID string
	// AccountID, when set, must own the reservation
	AccountID       string
	ActualCostMicro int64
	// FinalizationID is the caller's idempotency key; it is globally unique
	FinalizationID string
	Usage          Usage
}

// FinalizeResult is the settlement outcome of a reservation
type FinalizeResult struct {
	ReservationID  string    `json:"reservation_id"`
	AccountID      string    `json:"account_id"`
	FinalizationID string    `json:"finalization_id"`
	EventID        string    `json:"event_id"`
	ReservedMicro  int64     `json:"reserved_micro"`
	FinalizedMicro int64     `json:"finalized_micro"`
	ReleasedMicro  int64     `json:"released_micro"`
	OverrunMicro   int64     `json:"overrun_micro"`
	GuardPassed    bool      `json:"guard_passed"`
	Replayed       bool      `json:"replayed"`
	FinalizedAt    time.Time `json:"finalized_at"`

	// Alerts are raised by EmitFinalizeAlerts once the finalize has committed
	Alerts []PendingAlert `json:"-"`
}

// PendingAlert is an alert held back until its transaction commits
type PendingAlert struct {
	Kind      domain.AlertKind
	Severity  domain.AlertSeverity
	AccountID string
	Message   string
	Details   map[string]any
}

func toReservation(r *schema.CreditReservation, now time.Time) *Reservation {
	return &Reservation{
		ID:             r.ID,
		AccountID:      r.AccountID,
		AmountMicro:    r.AmountMicro,
		State:          r.EffectiveState(now),
		IsAgent:        r.IsAgent,
		FinalizationID: r.FinalizationID,
		FinalizedMicro: r.FinalizedMicro,
		ReleasedMicro:  r.ReleasedMicro,
		CreatedAt:      r.CreatedAt,
		ExpiresAt:      r.ExpiresAt,
		FinalizedAt:    r.FinalizedAt,
		CanceledAt:     r.CanceledAt,
	}
}

func (l *ledger) Reserve(ctx context.Context, input ReserveInput) (*Reservation, error) {
	if input.AmountMicro <= 0 {
		return nil, fmt.Errorf("%w: reservation amount must be positive", domain.ErrInvalidAmount)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = l.cfg.DefaultReservationTTL
	}
	if ttl < 0 || ttl > l.cfg.MaxReservationTTL {
		return nil, fmt.Errorf("%w: reservation ttl must be between 0 and %s", domain.ErrInvalidArgument, l.cfg.MaxReservationTTL)
	}

	var reservation *schema.CreditReservation
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		now := l.clock.Now()

		account, err := tx.LockAccount(ctx, input.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		balance, err := l.balance(ctx, tx, account.ID, now)
		if err != nil {
			return err
		}
		if input.AmountMicro > balance.AvailableMicro {
			return &domain.InsufficientBalanceError{
				AccountID:      account.ID,
				RequestedMicro: input.AmountMicro,
				AvailableMicro: balance.AvailableMicro,
			}
		}

		reservation = &schema.CreditReservation{
			ID:          uuid.NewString(),
			AccountID:   account.ID,
			AmountMicro: input.AmountMicro,
			State:       domain.ReservationStateActive,
			IsAgent:     input.IsAgent,
			ExpiresAt:   now.Add(ttl),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return tx.CreateReservation(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Reserved credit",
		zap.String("accountID", reservation.AccountID),
		zap.String("reservationID", reservation.ID),
		zap.Int64("amountMicro", reservation.AmountMicro))

	return toReservation(reservation, reservation.CreatedAt), nil
}

func (l *ledger) Finalize(ctx context.Context, input FinalizeInput) (*FinalizeResult, error) {
	var result *FinalizeResult
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		result, err = l.FinalizeInTx(ctx, tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.EmitFinalizeAlerts(ctx, result)

	return result, nil
}

func (l *ledger) EmitFinalizeAlerts(ctx context.Context, result *FinalizeResult) {
	if result == nil || result.Replayed {
		return
	}
	if result.OverrunMicro > 0 {
		metrics.Overruns.Inc()
	}
	for _, a := range result.Alerts {
		l.alerts.Emit(ctx, a.Kind, a.Severity, a.AccountID, a.Message, a.Details)
	}
}

func (l *ledger) FinalizeInTx(ctx context.Context, tx store.Store, input FinalizeInput) (*FinalizeResult, error) {
	if input.ActualCostMicro < 0 {
		metrics.Finalizations.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: actual cost must not be negative", domain.ErrInvalidAmount)
	}
	if input.FinalizationID == "" {
		metrics.Finalizations.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: finalization id is required", domain.ErrInvalidArgument)
	}

	result, err := l.finalize(ctx, tx, input)
	if err != nil {
		metrics.Finalizations.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if result.Replayed {
		metrics.Finalizations.WithLabelValues("replayed").Inc()
	} else {
		metrics.Finalizations.WithLabelValues("settled").Inc()
	}

	return result, nil
}

func (l *ledger) finalize(ctx context.Context, tx store.Store, input FinalizeInput) (*FinalizeResult, error) {
	// Resolve the owning account first so locks are taken account -> reservation
	peek, err := tx.GetReservation(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if peek == nil {
		return nil, domain.ErrReservationNotFound
	}
	if input.AccountID != "" && input.AccountID != peek.AccountID {
		return nil, domain.ErrAccountMismatch
	}

	if _, err := tx.LockAccount(ctx, peek.AccountID); err != nil {
		return nil, err
	}
	reservation, err := tx.LockReservation(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrReservationNotFound
	}

	if reservation.FinalizationID != nil && *reservation.FinalizationID == input.FinalizationID {
		return l.replayFinalization(ctx, tx, reservation)
	}

	owner, err := tx.GetReservationByFinalizationID(ctx, input.FinalizationID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		return nil, domain.ErrFinalizationConflict
	}

	now := l.clock.Now()
	if state := reservation.EffectiveState(now); state != domain.ReservationStateActive {
		return nil, &domain.ReservationNotActiveError{ReservationID: reservation.ID, State: state}
	}

	var overrun int64
	if input.ActualCostMicro > reservation.AmountMicro {
		if l.cfg.OverrunPolicy != OverrunPolicyAllowWithAlert {
			return nil, &domain.CostExceedsReservedError{
				ReservationID:   reservation.ID,
				ReservedMicro:   reservation.AmountMicro,
				ActualCostMicro: input.ActualCostMicro,
			}
		}

		overrun = input.ActualCostMicro - reservation.AmountMicro
		balance, err := l.balance(ctx, tx, reservation.AccountID, now)
		if err != nil {
			return nil, err
		}
		// This reservation's hold is part of ReservedMicro and is about to be released
		uncovered := balance.TotalMicro - (balance.ReservedMicro - reservation.AmountMicro)
		if input.ActualCostMicro > uncovered {
			return nil, &domain.InsufficientBalanceError{
				AccountID:      reservation.AccountID,
				RequestedMicro: overrun,
				AvailableMicro: max(uncovered-reservation.AmountMicro, 0),
			}
		}
	}

	if input.ActualCostMicro > 0 {
		// Lots that backed the hold when it was placed remain spendable for it
		_, err := l.consume(ctx, tx, reservation.AccountID, input.ActualCostMicro,
			domain.DebitReasonUsage, &reservation.ID, reservation.CreatedAt, now)
		if err != nil {
			return nil, err
		}
	}

	finalized := input.ActualCostMicro
	released := max(reservation.AmountMicro-input.ActualCostMicro, 0)
	finalizationID := input.FinalizationID

	reservation.State = domain.ReservationStateFinalized
	reservation.FinalizationID = &finalizationID
	reservation.FinalizedMicro = &finalized
	reservation.ReleasedMicro = &released
	reservation.FinalizedAt = &now
	reservation.UpdatedAt = now
	if err := tx.UpdateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	report := l.guard.Check(ctx, tx, reservation.AccountID, now)

	event := schema.UsageEvent{
		EventID:                 ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		AccountID:               reservation.AccountID,
		CommunityID:             input.Usage.CommunityID,
		NftID:                   input.Usage.NftID,
		PoolID:                  input.Usage.PoolID,
		TokensInput:             input.Usage.TokensInput,
		TokensOutput:            input.Usage.TokensOutput,
		AmountMicro:             finalized,
		ReservationID:           reservation.ID,
		FinalizationID:          finalizationID,
		ConservationGuardResult: schema.ConservationGuardPassed,
		CreatedAt:               now,
	}
	if !report.Passed {
		event.ConservationGuardResult = schema.ConservationGuardFailed
		violations, err := json.Marshal(report.Violations)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal guard violations: %w", err)
		}
		event.ConservationGuardViolations = datatypes.JSON(violations)
	}
	if err := tx.CreateUsageEvent(ctx, &event); err != nil {
		return nil, err
	}

	var alerts []PendingAlert
	if !report.Passed {
		alerts = append(alerts, guardAlert(reservation, event.EventID, report))
	}
	if overrun > 0 && overrun >= l.cfg.OverrunAlertThresholdMicro {
		alerts = append(alerts, overrunAlert(reservation, input.ActualCostMicro, overrun))
	}

	logger.InfoCtx(ctx, "Finalized reservation",
		zap.String("reservationID", reservation.ID),
		zap.String("finalizationID", finalizationID),
		zap.Int64("finalizedMicro", finalized),
		zap.Int64("releasedMicro", released),
		zap.Bool("guardPassed", report.Passed))

	return &FinalizeResult{
		ReservationID:  reservation.ID,
		AccountID:      reservation.AccountID,
		FinalizationID: finalizationID,
		EventID:        event.EventID,
		ReservedMicro:  reservation.AmountMicro,
		FinalizedMicro: finalized,
		ReleasedMicro:  released,
		OverrunMicro:   overrun,
		GuardPassed:    report.Passed,
		FinalizedAt:    now,
		Alerts:         alerts,
	}, nil
}

// replayFinalization rebuilds the result of a finalization from its persisted record
func (l *ledger) replayFinalization(ctx context.Context, tx store.Store, reservation *schema.CreditReservation) (*FinalizeResult, error) {
	event, err := tx.GetUsageEventByFinalizationID(ctx, *reservation.FinalizationID)
	if err != nil {
		return nil, err
	}

	result := &FinalizeResult{
		ReservationID:  reservation.ID,
		AccountID:      reservation.AccountID,
		FinalizationID: *reservation.FinalizationID,
		ReservedMicro:  reservation.AmountMicro,
		GuardPassed:    true,
		Replayed:       true,
	}
	if reservation.FinalizedMicro != nil {
		result.FinalizedMicro = *reservation.FinalizedMicro
		result.OverrunMicro = max(*reservation.FinalizedMicro-reservation.AmountMicro, 0)
	}
	if reservation.ReleasedMicro != nil {
		result.ReleasedMicro = *reservation.ReleasedMicro
	}
	if reservation.FinalizedAt != nil {
		result.FinalizedAt = *reservation.FinalizedAt
	}
	if event != nil {
		result.EventID = event.EventID
		result.GuardPassed = event.ConservationGuardResult == schema.ConservationGuardPassed
	}

	logger.InfoCtx(ctx, "Replayed finalization",
		zap.String("reservationID", reservation.ID),
		zap.String("finalizationID", result.FinalizationID))

	return result, nil
}

func guardAlert(reservation *schema.CreditReservation, eventID string, report *GuardReport) PendingAlert {
	invariants := make([]string, 0, len(report.Violations))
	for _, v := range report.Violations {
		invariants = append(invariants, v.Invariant)
	}

	return PendingAlert{
		Kind:      domain.AlertKindConservationViolation,
		Severity:  domain.AlertSeverityCritical,
		AccountID: reservation.AccountID,
		Message:   "conservation guard failed during finalize",
		Details: map[string]any{
			"reservation_id": reservation.ID,
			"event_id":       eventID,
			"invariants":     invariants,
			"violations":     report.Violations,
		},
	}
}

func overrunAlert(reservation *schema.CreditReservation, actualCost, overrun int64) PendingAlert {
	return PendingAlert{
		Kind:      domain.AlertKindOverrun,
		Severity:  domain.AlertSeverityWarning,
		AccountID: reservation.AccountID,
		Message:   "finalized cost exceeded the reserved amount",
		Details: map[string]any{
			"reservation_id":    reservation.ID,
			"reserved_micro":    reservation.AmountMicro,
			"actual_cost_micro": actualCost,
			"overrun_micro":     overrun,
		},
	}
}

func (l *ledger) Cancel(ctx context.Context, reservationID string) (*Reservation, error) {
	var result *Reservation
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		peek, err := tx.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if peek == nil {
			return domain.ErrReservationNotFound
		}

		if _, err := tx.LockAccount(ctx, peek.AccountID); err != nil {
			return err
		}
		reservation, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return domain.ErrReservationNotFound
		}

		now := l.clock.Now()
		switch reservation.EffectiveState(now) {
		case domain.ReservationStateActive:
			reservation.State = domain.ReservationStateCanceled
			reservation.CanceledAt = &now
		case domain.ReservationStateExpired:
			if reservation.State == domain.ReservationStateExpired {
				result = toReservation(reservation, now)
				return nil
			}
			// Lapsed but never swept: persist what readers already see
			reservation.State = domain.ReservationStateExpired
		default:
			result = toReservation(reservation, now)
			return nil
		}

		reservation.UpdatedAt = now
		if err := tx.UpdateReservation(ctx, reservation); err != nil {
			return err
		}
		result = toReservation(reservation, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (l *ledger) GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	reservation, err := l.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrReservationNotFound
	}

	return toReservation(reservation, l.clock.Now()), nil
}
