package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
)

// Invariants checked by the conservation guard
const (
	// InvariantSystemConservation: unspent credit plus active holds equals everything credited minus everything debited
	InvariantSystemConservation = "system_conservation"
	// InvariantAccountConservation: the same equality restricted to the settled account
	InvariantAccountConservation = "account_conservation"
	// InvariantDebitAttribution: every debited micro-unit is attributed to a lot
	InvariantDebitAttribution = "debit_attribution"
	// InvariantNonNegativeAvailable: no account holds more than the credit it has
	InvariantNonNegativeAvailable = "non_negative_available"
	// InvariantGuardError: the guard could not evaluate
	InvariantGuardError = "guard_error"
)

// MAX_REPORTED_SHORTFALLS bounds the accounts listed per guard run
const MAX_REPORTED_SHORTFALLS = 10

// Violation describes one failed invariant
type Violation struct {
	Invariant string `json:"invariant"`
	AccountID string `json:"account_id,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Message   string `json:"message"`
}

// GuardReport is the outcome of one guard run
type GuardReport struct {
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations,omitempty"`
	CheckedAt  time.Time   `json:"checked_at"`
}

// Guard checks the conservation invariants.
// Lot bounds (0 <= remaining <= amount, remaining never increasing) are enforced by table
// constraints and a trigger, so no committed state can violate them.
type Guard struct{}

// NewGuard creates a conservation guard
func NewGuard() *Guard {
	return &Guard{}
}

// Check evaluates the invariants in tx, system-wide and for accountID when set.
// It never fails: evaluation errors are reported as a guard_error violation, and the
// queries run in a savepoint so a failed query leaves tx usable.
func (g *Guard) Check(ctx context.Context, tx store.Store, accountID string, now time.Time) *GuardReport {
	report := &GuardReport{CheckedAt: now}

	err := tx.Transaction(ctx, func(sp store.Store) error {
		violations, err := g.evaluate(ctx, sp, accountID, now)
		if err != nil {
			return err
		}
		report.Violations = violations
		return nil
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("conservation guard failed to evaluate: %w", err), zap.String("accountID", accountID))
		report.Violations = []Violation{{
			Invariant: InvariantGuardError,
			AccountID: accountID,
			Message:   err.Error(),
		}}
	}

	report.Passed = len(report.Violations) == 0
	if report.Passed {
		metrics.GuardChecks.WithLabelValues("pass").Inc()
	} else {
		metrics.GuardChecks.WithLabelValues("fail").Inc()
		for _, v := range report.Violations {
			metrics.GuardViolations.WithLabelValues(v.Invariant).Inc()
		}
	}

	return report
}

func (g *Guard) evaluate(ctx context.Context, st store.Store, accountID string, now time.Time) ([]Violation, error) {
	var violations []Violation

	system, err := st.GetConservationTotals(ctx, nil, now)
	if err != nil {
		return nil, err
	}
	// Σ(available) + Σ(active holds) is the credit still held by lots
	expected := system.CreditedMicro.Sub(system.DebitedMicro)
	if !system.RemainingMicro.Equal(expected) {
		violations = append(violations, Violation{
			Invariant: InvariantSystemConservation,
			Expected:  expected.String(),
			Actual:    system.RemainingMicro.String(),
			Message:   "credit held by lots differs from credited minus debited",
		})
	}
	if !system.ConsumedMicro.Equal(system.DebitedMicro) {
		violations = append(violations, Violation{
			Invariant: InvariantDebitAttribution,
			Expected:  system.DebitedMicro.String(),
			Actual:    system.ConsumedMicro.String(),
			Message:   "lot consumptions differ from debited total",
		})
	}

	if accountID != "" {
		account, err := st.GetConservationTotals(ctx, &accountID, now)
		if err != nil {
			return nil, err
		}
		expected := account.CreditedMicro.Sub(account.DebitedMicro)
		if !account.RemainingMicro.Equal(expected) {
			violations = append(violations, Violation{
				Invariant: InvariantAccountConservation,
				AccountID: accountID,
				Expected:  expected.String(),
				Actual:    account.RemainingMicro.String(),
				Message:   "account credit held by lots differs from credited minus debited",
			})
		}
	}

	shortfalls, err := st.ListAccountShortfalls(ctx, now, MAX_REPORTED_SHORTFALLS)
	if err != nil {
		return nil, err
	}
	for _, s := range shortfalls {
		violations = append(violations, Violation{
			Invariant: InvariantNonNegativeAvailable,
			AccountID: s.AccountID,
			Expected:  s.RemainingMicro.String(),
			Actual:    s.ActiveReservationsMicro.String(),
			Message:   "active reservations exceed the account's credit",
		})
	}

	return violations, nil
}

func (l *ledger) CheckSystem(ctx context.Context) (*GuardReport, error) {
	var report *GuardReport
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		report = l.guard.Check(ctx, tx, "", l.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !report.Passed {
		l.alerts.Emit(ctx, domain.AlertKindConservationViolation, domain.AlertSeverityCritical, "",
			"conservation guard failed during reconciliation",
			map[string]any{"violations": report.Violations})
	}

	return report, nil
}
