package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/alert"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// OverrunPolicy decides what finalize does with a cost above the reserved amount
type OverrunPolicy string

const (
	// OverrunPolicyReject fails the finalize with ErrActualCostExceedsReserved
	OverrunPolicyReject OverrunPolicy = "reject"
	// OverrunPolicyAllowWithAlert settles the excess from the available balance and raises an alert
	OverrunPolicyAllowWithAlert OverrunPolicy = "allow_with_alert"
)

// Config holds the ledger settings
type Config struct {
	DefaultReservationTTL time.Duration
	MaxReservationTTL     time.Duration
	OverrunPolicy         OverrunPolicy
	// OverrunAlertThresholdMicro is the smallest overrun that raises an alert under allow_with_alert
	OverrunAlertThresholdMicro int64
}

// CreditInput is a request to mint a lot
type CreditInput struct {
	AccountID   string
	AmountMicro int64
	Origin      domain.LotOrigin
	ExpiresAt   *time.Time
	// SourceRef makes the credit idempotent: replaying it returns the lot minted first
	SourceRef *string
}

// CreditResult is the outcome of a credit
type CreditResult struct {
	LotID    string
	Replayed bool
}

// ConsumedLot is the part of a debit taken from one lot
type ConsumedLot struct {
	LotID       string `json:"lot_id"`
	AmountMicro int64  `json:"amount_micro"`
}

// DebitResult is the outcome of a debit
type DebitResult struct {
	DebitID      string        `json:"debit_id"`
	AmountMicro  int64         `json:"amount_micro"`
	ConsumedLots []ConsumedLot `json:"consumed_lots"`
}

// Balance is the balance of an account.
// TotalMicro is the unexpired credit, ReservedMicro the active holds against it.
type Balance struct {
	AccountID      string
	TotalMicro     int64
	ReservedMicro  int64
	AvailableMicro int64
}

// Ledger is the account, lot and reservation ledger
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// EnsureAccount returns the account of an entity, creating it on first use
	EnsureAccount(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error)
	// CreateAccount creates a new user or agent account
	CreateAccount(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error)
	// GetAccount returns an account or ErrAccountNotFound
	GetAccount(ctx context.Context, accountID string) (*schema.CreditAccount, error)
	// SeedSystemAccounts creates the foundation and commons accounts, plus one pool per community
	SeedSystemAccounts(ctx context.Context, communityIDs []string) ([]schema.CreditAccount, error)

	// Credit mints a lot
	Credit(ctx context.Context, input CreditInput) (*CreditResult, error)
	// CreditInTx mints a lot inside the caller's transaction
	CreditInTx(ctx context.Context, tx store.Store, input CreditInput) (*CreditResult, error)
	// Debit burns credit from the available balance, consuming lots in order; it never partially debits
	Debit(ctx context.Context, accountID string, amountMicro int64) (*DebitResult, error)
	// GetBalance returns the balance of an account
	GetBalance(ctx context.Context, accountID string) (*Balance, error)
	// ListLots lists the lots of an account in consumption order
	ListLots(ctx context.Context, accountID string) ([]schema.CreditLot, error)

	// Reserve places a hold against the available balance
	Reserve(ctx context.Context, input ReserveInput) (*Reservation, error)
	// Finalize settles a reservation to its actual cost in its own transaction
	Finalize(ctx context.Context, input FinalizeInput) (*FinalizeResult, error)
	// FinalizeInTx settles a reservation inside the caller's transaction.
	// The caller raises the result's alerts with EmitFinalizeAlerts after committing.
	FinalizeInTx(ctx context.Context, tx store.Store, input FinalizeInput) (*FinalizeResult, error)
	// EmitFinalizeAlerts raises the overrun and guard alerts of a committed finalize
	EmitFinalizeAlerts(ctx context.Context, result *FinalizeResult)
	// Cancel releases a reservation in full; canceling a terminal reservation is a no-op
	Cancel(ctx context.Context, reservationID string) (*Reservation, error)
	// GetReservation returns a reservation with lazy expiry applied
	GetReservation(ctx context.Context, reservationID string) (*Reservation, error)

	// CheckSystem runs the conservation guard outside of a finalize
	CheckSystem(ctx context.Context) (*GuardReport, error)
	// GetAuditTrail lists usage events
	GetAuditTrail(ctx context.Context, filter store.UsageEventFilter) ([]schema.UsageEvent, uint64, error)

	// CreateCampaign creates a grant campaign
	CreateCampaign(ctx context.Context, input CampaignInput) (*schema.Campaign, error)
	// IssueGrant mints a grant lot from a campaign budget
	IssueGrant(ctx context.Context, input GrantInput) (*GrantResult, error)

	// ExpireReservations persists the expired state of lapsed reservations
	ExpireReservations(ctx context.Context, limit int) (int64, error)
	// BurnExpiredLots burns the unspent credit of expired lots of an account
	BurnExpiredLots(ctx context.Context, accountID string) (int64, error)
}

type ledger struct {
	store  store.Store
	guard  *Guard
	alerts alert.Emitter
	clock  adapter.Clock
	cfg    Config
}

// NewLedger creates a ledger
func NewLedger(st store.Store, alerts alert.Emitter, clock adapter.Clock, cfg Config) Ledger {
	if cfg.DefaultReservationTTL <= 0 {
		cfg.DefaultReservationTTL = domain.DEFAULT_RESERVATION_TTL
	}
	if cfg.MaxReservationTTL <= 0 {
		cfg.MaxReservationTTL = domain.MAX_RESERVATION_TTL
	}
	if cfg.OverrunPolicy == "" {
		cfg.OverrunPolicy = OverrunPolicyReject
	}

	return &ledger{
		store:  st,
		guard:  NewGuard(),
		alerts: alerts,
		clock:  clock,
		cfg:    cfg,
	}
}

func (l *ledger) EnsureAccount(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEntityType, entityType)
	}
	if entityID == "" {
		return nil, fmt.Errorf("%w: entity id is required", domain.ErrInvalidArgument)
	}

	if domain.IsSystemEntityType(entityType) {
		return l.store.EnsureSystemAccount(ctx, store.CreateAccountInput{
			ID:         uuid.NewString(),
			EntityType: entityType,
			EntityID:   entityID,
			CreatedAt:  l.clock.Now(),
		})
	}

	account, err := l.store.GetAccountByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	return l.CreateAccount(ctx, entityType, entityID)
}

func (l *ledger) CreateAccount(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEntityType, entityType)
	}
	if domain.IsSystemEntityType(entityType) {
		return nil, fmt.Errorf("%w: system accounts are seeded, not created", domain.ErrInvalidEntityType)
	}
	if entityID == "" {
		return nil, fmt.Errorf("%w: entity id is required", domain.ErrInvalidArgument)
	}

	return l.store.CreateAccount(ctx, store.CreateAccountInput{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  l.clock.Now(),
	})
}

func (l *ledger) GetAccount(ctx context.Context, accountID string) (*schema.CreditAccount, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (l *ledger) SeedSystemAccounts(ctx context.Context, communityIDs []string) ([]schema.CreditAccount, error) {
	type entity struct {
		entityType domain.EntityType
		entityID   string
	}

	entities := []entity{
		{domain.EntityTypeFoundation, domain.SYSTEM_ENTITY_ID},
		{domain.EntityTypeCommons, domain.SYSTEM_ENTITY_ID},
		{domain.EntityTypeCommunityPool, domain.SYSTEM_ENTITY_ID},
	}
	for _, id := range communityIDs {
		entities = append(entities, entity{domain.EntityTypeCommunityPool, id})
	}

	accounts := make([]schema.CreditAccount, 0, len(entities))
	for _, e := range entities {
		account, err := l.EnsureAccount(ctx, e.entityType, e.entityID)
		if err != nil {
			return nil, fmt.Errorf("failed to seed %s/%s: %w", e.entityType, e.entityID, err)
		}
		accounts = append(accounts, *account)
	}

	logger.InfoCtx(ctx, "Seeded system accounts", zap.Int("count", len(accounts)))

	return accounts, nil
}

func (l *ledger) Credit(ctx context.Context, input CreditInput) (*CreditResult, error) {
	var result *CreditResult
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		result, err = l.CreditInTx(ctx, tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (l *ledger) CreditInTx(ctx context.Context, tx store.Store, input CreditInput) (*CreditResult, error) {
	now := l.clock.Now()

	if input.AmountMicro <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidAmount)
	}
	if !domain.IsValidLotOrigin(input.Origin) {
		return nil, fmt.Errorf("%w: unknown lot origin %q", domain.ErrInvalidArgument, input.Origin)
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(now) {
		return nil, fmt.Errorf("%w: lot expiry must be in the future", domain.ErrInvalidArgument)
	}
	if input.SourceRef != nil && *input.SourceRef == "" {
		input.SourceRef = nil
	}

	if input.SourceRef != nil {
		replayed, err := l.replayCredit(ctx, tx, input)
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	account, err := tx.LockAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	lot := schema.CreditLot{
		ID:             uuid.NewString(),
		AccountID:      account.ID,
		AmountMicro:    input.AmountMicro,
		RemainingMicro: input.AmountMicro,
		Origin:         input.Origin,
		SourceRef:      input.SourceRef,
		ExpiresAt:      input.ExpiresAt,
		CreatedAt:      now,
	}

	// A concurrent credit with the same source ref fails inside the savepoint only
	err = tx.Transaction(ctx, func(sp store.Store) error {
		return sp.CreateLot(ctx, &lot)
	})
	if errors.Is(err, domain.ErrDuplicateSourceRef) {
		replayed, rerr := l.replayCredit(ctx, tx, input)
		if rerr != nil {
			return nil, rerr
		}
		if replayed != nil {
			return replayed, nil
		}
	}
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Credited account",
		zap.String("accountID", account.ID),
		zap.String("lotID", lot.ID),
		zap.Int64("amountMicro", lot.AmountMicro),
		zap.String("origin", string(lot.Origin)))

	return &CreditResult{LotID: lot.ID}, nil
}

// replayCredit returns the lot already minted for the input's source ref, or nil
func (l *ledger) replayCredit(ctx context.Context, tx store.Store, input CreditInput) (*CreditResult, error) {
	existing, err := tx.GetLotBySourceRef(ctx, *input.SourceRef)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if existing.AccountID != input.AccountID || existing.AmountMicro != input.AmountMicro || existing.Origin != input.Origin {
		return nil, fmt.Errorf("%w: %s was minted as lot %s with different parameters",
			domain.ErrDuplicateSourceRef, *input.SourceRef, existing.ID)
	}

	return &CreditResult{LotID: existing.ID, Replayed: true}, nil
}

func (l *ledger) Debit(ctx context.Context, accountID string, amountMicro int64) (*DebitResult, error) {
	if amountMicro <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidAmount)
	}

	var result *DebitResult
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		now := l.clock.Now()

		account, err := tx.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		balance, err := l.balance(ctx, tx, accountID, now)
		if err != nil {
			return err
		}
		if amountMicro > balance.AvailableMicro {
			return &domain.InsufficientBalanceError{
				AccountID:      accountID,
				RequestedMicro: amountMicro,
				AvailableMicro: balance.AvailableMicro,
			}
		}

		result, err = l.consume(ctx, tx, accountID, amountMicro, domain.DebitReasonDirect, nil, now, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (l *ledger) GetBalance(ctx context.Context, accountID string) (*Balance, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	return l.balance(ctx, l.store, accountID, l.clock.Now())
}

func (l *ledger) ListLots(ctx context.Context, accountID string) ([]schema.CreditLot, error) {
	if _, err := l.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return l.store.ListAccountLots(ctx, accountID)
}

// balance computes the balance of an account at now
func (l *ledger) balance(ctx context.Context, st store.Store, accountID string, now time.Time) (*Balance, error) {
	total, err := st.SumSpendableLots(ctx, accountID, now)
	if err != nil {
		return nil, err
	}
	reserved, err := st.SumActiveReservations(ctx, accountID, now)
	if err != nil {
		return nil, err
	}

	return &Balance{
		AccountID:      accountID,
		TotalMicro:     total,
		ReservedMicro:  reserved,
		AvailableMicro: max(total-reserved, 0),
	}, nil
}

// consume burns amountMicro from the lots of an account that were valid at validAt, in consumption order.
// The account row must already be locked.
func (l *ledger) consume(
	ctx context.Context,
	tx store.Store,
	accountID string,
	amountMicro int64,
	reason domain.DebitReason,
	reservationID *string,
	validAt time.Time,
	now time.Time,
) (*DebitResult, error) {
	lots, err := tx.LockConsumableLots(ctx, accountID, validAt)
	if err != nil {
		return nil, err
	}

	remaining := amountMicro
	consumptions := make([]schema.LotConsumption, 0, len(lots))
	consumed := make([]ConsumedLot, 0, len(lots))
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
		consumed = append(consumed, ConsumedLot{LotID: lot.ID, AmountMicro: take})
	}

	if remaining > 0 {
		return nil, &domain.InsufficientBalanceError{
			AccountID:      accountID,
			RequestedMicro: amountMicro,
			AvailableMicro: amountMicro - remaining,
		}
	}

	debit := schema.CreditDebit{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		AmountMicro:   amountMicro,
		Reason:        reason,
		ReservationID: reservationID,
		CreatedAt:     now,
	}
	if err := tx.CreateDebit(ctx, store.DebitInput{Debit: debit, Consumptions: consumptions}); err != nil {
		return nil, err
	}

	return &DebitResult{
		DebitID:      debit.ID,
		AmountMicro:  amountMicro,
		ConsumedLots: consumed,
	}, nil
}

func (l *ledger) GetAuditTrail(ctx context.Context, filter store.UsageEventFilter) ([]schema.UsageEvent, uint64, error) {
	return l.store.ListUsageEvents(ctx, filter)
}
