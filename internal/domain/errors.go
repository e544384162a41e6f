package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is returned when an account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidEntityType is returned for an entity type outside the supported set
	ErrInvalidEntityType = errors.New("invalid entity type")

	// ErrInvalidAmount is returned for zero or negative amounts where a positive amount is required
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidArgument is returned for malformed input that is not an amount
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateSourceRef is returned when a lot with the same source reference already exists
	ErrDuplicateSourceRef = errors.New("duplicate lot source reference")

	// ErrInsufficientBalance is returned when an account's available balance cannot cover a request
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrReservationNotFound is returned when a reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationNotActive is returned when a reservation already reached a terminal state
	ErrReservationNotActive = errors.New("reservation not active")

	// ErrActualCostExceedsReserved is returned when a finalize cost is above the reserved amount
	ErrActualCostExceedsReserved = errors.New("actual cost exceeds reserved amount")

	// ErrFinalizationConflict is returned when a finalization id was already used for another reservation
	ErrFinalizationConflict = errors.New("finalization id already used by another reservation")

	// ErrAccountMismatch is returned when the caller's account does not own the reservation
	ErrAccountMismatch = errors.New("reservation belongs to a different account")

	// ErrDailyCapExceeded is returned when an agent reservation would exceed the daily spend cap
	ErrDailyCapExceeded = errors.New("daily cap exceeded")

	// ErrCampaignNotFound is returned when a campaign does not exist
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignBudgetExceeded is returned when a grant would overspend its campaign budget
	ErrCampaignBudgetExceeded = errors.New("campaign budget exceeded")

	// ErrGrantAlreadyIssued is returned when an account already received a grant from a campaign
	ErrGrantAlreadyIssued = errors.New("grant already issued for this account")

	// ErrDLQEntryNotFound is returned when a DLQ entry does not exist
	ErrDLQEntryNotFound = errors.New("dlq entry not found")
)

var businessErrors = []error{
	ErrAccountNotFound,
	ErrInvalidEntityType,
	ErrInvalidAmount,
	ErrInvalidArgument,
	ErrDuplicateSourceRef,
	ErrInsufficientBalance,
	ErrReservationNotFound,
	ErrReservationNotActive,
	ErrActualCostExceedsReserved,
	ErrFinalizationConflict,
	ErrAccountMismatch,
	ErrDailyCapExceeded,
	ErrCampaignNotFound,
	ErrCampaignBudgetExceeded,
	ErrGrantAlreadyIssued,
	ErrDLQEntryNotFound,
}

// IsBusinessError reports whether err is a ledger rule rejecting the request.
// Anything else is an infrastructure failure that may succeed on retry.
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// InsufficientBalanceError carries the amounts behind an ErrInsufficientBalance
type InsufficientBalanceError struct {
	AccountID      string
	RequestedMicro int64
	AvailableMicro int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %s: requested %d, available %d",
		e.AccountID, e.RequestedMicro, e.AvailableMicro)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// ReservationNotActiveError carries the state that blocked a transition
type ReservationNotActiveError struct {
	ReservationID string
	State         ReservationState
}

func (e *ReservationNotActiveError) Error() string {
	return fmt.Sprintf("reservation %s is %s", e.ReservationID, e.State)
}

func (e *ReservationNotActiveError) Unwrap() error {
	return ErrReservationNotActive
}

// CostExceedsReservedError carries the amounts behind an ErrActualCostExceedsReserved
type CostExceedsReservedError struct {
	ReservationID   string
	ReservedMicro   int64
	ActualCostMicro int64
}

func (e *CostExceedsReservedError) Error() string {
	return fmt.Sprintf("actual cost %d exceeds reserved amount %d for reservation %s",
		e.ActualCostMicro, e.ReservedMicro, e.ReservationID)
}

func (e *CostExceedsReservedError) Unwrap() error {
	return ErrActualCostExceedsReserved
}

// DailyCapExceededError carries the budget figures behind an ErrDailyCapExceeded
type DailyCapExceededError struct {
	AccountID      string
	RequestedMicro int64
	SpentMicro     int64
	CapMicro       int64
}

func (e *DailyCapExceededError) Error() string {
	return fmt.Sprintf("daily cap exceeded for account %s: requested %d, spent %d, cap %d",
		e.AccountID, e.RequestedMicro, e.SpentMicro, e.CapMicro)
}

func (e *DailyCapExceededError) Unwrap() error {
	return ErrDailyCapExceeded
}
