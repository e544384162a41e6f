package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntityType identifies the kind of balance holder behind an account
type EntityType string

const (
	EntityTypeUser          EntityType = "user"
	EntityTypeAgent         EntityType = "agent"
	EntityTypeFoundation    EntityType = "foundation"
	EntityTypeCommons       EntityType = "commons"
	EntityTypeCommunityPool EntityType = "community-pool"
)

// IsValidEntityType checks if an entity type is one of the supported values
func IsValidEntityType(t EntityType) bool {
	switch t {
	case EntityTypeUser, EntityTypeAgent, EntityTypeFoundation, EntityTypeCommons, EntityTypeCommunityPool:
		return true
	}
	return false
}

// IsSystemEntityType reports whether the entity type is a system account.
// System accounts are unique per (entity_type, entity_id).
func IsSystemEntityType(t EntityType) bool {
	return t == EntityTypeFoundation || t == EntityTypeCommons || t == EntityTypeCommunityPool
}

// LotOrigin is the event that minted a lot
type LotOrigin string

const (
	LotOriginDeposit      LotOrigin = "deposit"
	LotOriginGrant        LotOrigin = "grant"
	LotOriginRefund       LotOrigin = "refund"
	LotOriginDistribution LotOrigin = "distribution"
)

// IsValidLotOrigin checks if a lot origin is supported
func IsValidLotOrigin(o LotOrigin) bool {
	switch o {
	case LotOriginDeposit, LotOriginGrant, LotOriginRefund, LotOriginDistribution:
		return true
	}
	return false
}

// ReservationState is the lifecycle state of a reservation
type ReservationState string

const (
	ReservationStateActive    ReservationState = "active"
	ReservationStateFinalized ReservationState = "finalized"
	ReservationStateCanceled  ReservationState = "canceled"
	ReservationStateExpired   ReservationState = "expired"
)

// IsTerminal reports whether no further transition is allowed from the state
func (s ReservationState) IsTerminal() bool {
	return s != ReservationStateActive
}

// DebitReason explains why credit left an account
type DebitReason string

const (
	DebitReasonUsage  DebitReason = "usage"
	DebitReasonDirect DebitReason = "direct"
	DebitReasonExpiry DebitReason = "expiry"
)

// IsReservationExpired reports whether an active reservation has passed its expiry.
// Every read site must consult it before trusting an "active" state.
func IsReservationExpired(state ReservationState, expiresAt time.Time, now time.Time) bool {
	return state == ReservationStateActive && !now.Before(expiresAt)
}

// EffectiveReservationState returns the state a reader must act on
func EffectiveReservationState(state ReservationState, expiresAt time.Time, now time.Time) ReservationState {
	if IsReservationExpired(state, expiresAt, now) {
		return ReservationStateExpired
	}
	return state
}

// MicroPerUnit is the number of micro-units in one unit of the reference currency
const MicroPerUnit = 1_000_000

// FormatMicro renders a micro-unit amount as a decimal string of whole units (e.g. 1500000 -> "1.5")
func FormatMicro(amountMicro int64) string {
	return decimal.New(amountMicro, -6).String()
}

// ParseUnits converts a decimal unit string (e.g. "1.25") into micro-units.
// Amounts with more than six fractional digits are rejected rather than rounded.
func ParseUnits(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	micro := d.Shift(6)
	if !micro.Equal(micro.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: more than 6 fractional digits", s)
	}
	if micro.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	if !micro.BigInt().IsInt64() {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}
	return micro.IntPart(), nil
}

// UTCDay returns the calendar day key (YYYY-MM-DD) of t in UTC
func UTCDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// StartOfUTCDay truncates t to midnight UTC
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// UntilNextUTCMidnight returns the duration from t to the next midnight UTC
func UntilNextUTCMidnight(t time.Time) time.Duration {
	return StartOfUTCDay(t).Add(24 * time.Hour).Sub(t)
}
