package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// CreateAccountInput represents the data needed to create an account
type CreateAccountInput struct {
	ID         string
	EntityType domain.EntityType
	EntityID   string
	CreatedAt  time.Time
}

// DebitInput represents one burn of credit together with its per-lot breakdown
type DebitInput struct {
	Debit        schema.CreditDebit
	Consumptions []schema.LotConsumption
}

// UsageEventFilter filters the usage event audit trail
type UsageEventFilter struct {
	AccountID   *string
	CommunityID *string
	Since       *time.Time
	Until       *time.Time
	// GuardFailedOnly limits results to events whose conservation guard failed
	GuardFailedOnly bool
	Limit           int
	Offset          uint64
}

// ConservationTotals are the aggregates compared by the conservation guard.
// Sums are computed as NUMERIC so system-wide totals cannot overflow.
type ConservationTotals struct {
	CreditedMicro           decimal.Decimal `gorm:"column:credited_micro"`
	DebitedMicro            decimal.Decimal `gorm:"column:debited_micro"`
	RemainingMicro          decimal.Decimal `gorm:"column:remaining_micro"`
	ActiveReservationsMicro decimal.Decimal `gorm:"column:active_reservations_micro"`
	ConsumedMicro           decimal.Decimal `gorm:"column:consumed_micro"`
}

// AccountShortfall is an account whose active holds exceed the credit it still holds
type AccountShortfall struct {
	AccountID               string          `gorm:"column:account_id"`
	RemainingMicro          decimal.Decimal `gorm:"column:remaining_micro"`
	ActiveReservationsMicro decimal.Decimal `gorm:"column:active_reservations_micro"`
}

// DLQEntryFilter filters DLQ listings
type DLQEntryFilter struct {
	Status        *schema.DLQStatus
	OperationType *schema.DLQOperationType
	Limit         int
	Offset        uint64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Transaction runs fn inside a database transaction; fn receives a Store bound to it
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// =============================================================================
	// Accounts
	// =============================================================================

	// CreateAccount inserts a new account
	CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.CreditAccount, error)
	// EnsureSystemAccount returns the unique system account for the entity, creating it if missing
	EnsureSystemAccount(ctx context.Context, input CreateAccountInput) (*schema.CreditAccount, error)
	// GetAccount retrieves an account by id; returns nil when missing
	GetAccount(ctx context.Context, id string) (*schema.CreditAccount, error)
	// GetAccountByEntity retrieves the oldest account of an entity; returns nil when missing
	GetAccountByEntity(ctx context.Context, entityType domain.EntityType, entityID string) (*schema.CreditAccount, error)
	// LockAccount retrieves an account with SELECT ... FOR UPDATE; returns nil when missing
	LockAccount(ctx context.Context, id string) (*schema.CreditAccount, error)

	// =============================================================================
	// Lots
	// =============================================================================

	// CreateLot inserts a new lot; fails with ErrDuplicateSourceRef for a repeated source reference
	CreateLot(ctx context.Context, lot *schema.CreditLot) error
	// GetLotBySourceRef retrieves the lot minted for a source reference; returns nil when missing
	GetLotBySourceRef(ctx context.Context, sourceRef string) (*schema.CreditLot, error)
	// ListAccountLots lists every lot of an account in consumption order
	ListAccountLots(ctx context.Context, accountID string) ([]schema.CreditLot, error)
	// LockConsumableLots locks the lots with remaining credit that did not expire at or before
	// validAt, in consumption order: expiring lots by expiry, then non-expiring lots by age
	LockConsumableLots(ctx context.Context, accountID string, validAt time.Time) ([]schema.CreditLot, error)
	// LockExpiredLots locks the lots of an account that expired at or before now with remaining credit
	LockExpiredLots(ctx context.Context, accountID string, now time.Time) ([]schema.CreditLot, error)
	// SumSpendableLots sums the remaining credit of lots not expired at now
	SumSpendableLots(ctx context.Context, accountID string, now time.Time) (int64, error)
	// ListAccountsWithExpiredLots lists accounts holding expired, unburned credit
	ListAccountsWithExpiredLots(ctx context.Context, now time.Time, limit int) ([]string, error)

	// =============================================================================
	// Debits
	// =============================================================================

	// CreateDebit consumes the lots listed in the input and records the debit with its breakdown
	CreateDebit(ctx context.Context, input DebitInput) error

	// =============================================================================
	// Reservations
	// =============================================================================

	// CreateReservation inserts a new reservation
	CreateReservation(ctx context.Context, reservation *schema.CreditReservation) error
	// GetReservation retrieves a reservation by id; returns nil when missing
	GetReservation(ctx context.Context, id string) (*schema.CreditReservation, error)
	// LockReservation retrieves a reservation with SELECT ... FOR UPDATE; returns nil when missing
	LockReservation(ctx context.Context, id string) (*schema.CreditReservation, error)
	// GetReservationByFinalizationID retrieves the reservation settled under a finalization id; returns nil when missing
	GetReservationByFinalizationID(ctx context.Context, finalizationID string) (*schema.CreditReservation, error)
	// UpdateReservation persists a reservation's state and finalization columns
	UpdateReservation(ctx context.Context, reservation *schema.CreditReservation) error
	// SumActiveReservations sums the active, unexpired reservations of an account at now
	SumActiveReservations(ctx context.Context, accountID string, now time.Time) (int64, error)
	// CountActiveReservations counts the active, unexpired reservations of an account at now
	CountActiveReservations(ctx context.Context, accountID string, now time.Time) (int64, error)
	// ExpireReservations moves active reservations past their expiry to expired, returning how many moved
	ExpireReservations(ctx context.Context, now time.Time, limit int) (int64, error)

	// =============================================================================
	// Usage events
	// =============================================================================

	// CreateUsageEvent appends a usage event
	CreateUsageEvent(ctx context.Context, event *schema.UsageEvent) error
	// GetUsageEventByFinalizationID retrieves the usage event of a finalization; returns nil when missing
	GetUsageEventByFinalizationID(ctx context.Context, finalizationID string) (*schema.UsageEvent, error)
	// ListUsageEvents lists usage events newest first, with the total matching count
	ListUsageEvents(ctx context.Context, filter UsageEventFilter) ([]schema.UsageEvent, uint64, error)

	// =============================================================================
	// Conservation
	// =============================================================================

	// GetConservationTotals aggregates credits, debits, remaining credit and active holds,
	// system-wide when accountID is nil
	GetConservationTotals(ctx context.Context, accountID *string, now time.Time) (*ConservationTotals, error)
	// ListAccountShortfalls lists accounts whose active holds exceed their remaining credit
	ListAccountShortfalls(ctx context.Context, now time.Time, limit int) ([]AccountShortfall, error)

	// =============================================================================
	// Agent budgets
	// =============================================================================

	// GetAgentBudget retrieves an agent's budget; returns nil when the agent uses defaults
	GetAgentBudget(ctx context.Context, accountID string) (*schema.AgentBudget, error)
	// UpsertAgentBudget creates or replaces an agent's budget
	UpsertAgentBudget(ctx context.Context, budget *schema.AgentBudget) error
	// CreateAgentSpendRecord records a finalized agent spend; replays for the same reservation are ignored.
	// Returns whether a new row was written.
	CreateAgentSpendRecord(ctx context.Context, record *schema.AgentSpendRecord) (bool, error)
	// SumAgentSpend sums the recorded spend of an agent on a UTC day
	SumAgentSpend(ctx context.Context, accountID string, day time.Time) (int64, error)
	// SumAgentActiveReservations sums the agent reservations created in [from, to) still active at now
	SumAgentActiveReservations(ctx context.Context, accountID string, from, to, now time.Time) (int64, error)

	// =============================================================================
	// Dead-letter queue
	// =============================================================================

	// CreateDLQEntry inserts a new DLQ entry
	CreateDLQEntry(ctx context.Context, entry *schema.BillingDLQEntry) error
	// GetDLQEntry retrieves a DLQ entry by id; returns nil when missing
	GetDLQEntry(ctx context.Context, id uint64) (*schema.BillingDLQEntry, error)
	// ClaimDLQEntries moves due pending entries and stale processing entries to processing,
	// skipping rows locked by other workers
	ClaimDLQEntries(ctx context.Context, now time.Time, staleBefore time.Time, limit int) ([]schema.BillingDLQEntry, error)
	// UpdateDLQEntry persists a DLQ entry
	UpdateDLQEntry(ctx context.Context, entry *schema.BillingDLQEntry) error
	// ReleaseDLQClaim records a claimed entry's outcome if the claim taken at claimedAt is still held
	ReleaseDLQClaim(ctx context.Context, entry *schema.BillingDLQEntry, claimedAt time.Time) (bool, error)
	// ListDLQEntries lists DLQ entries oldest first, with the total matching count
	ListDLQEntries(ctx context.Context, filter DLQEntryFilter) ([]schema.BillingDLQEntry, uint64, error)

	// =============================================================================
	// Billing config
	// =============================================================================

	// GetBillingConfig retrieves a config value; returns nil when missing
	GetBillingConfig(ctx context.Context, key string) (*schema.BillingConfig, error)
	// ListBillingConfig lists all config values ordered by key
	ListBillingConfig(ctx context.Context) ([]schema.BillingConfig, error)
	// UpsertBillingConfig creates or replaces a config value
	UpsertBillingConfig(ctx context.Context, cfg *schema.BillingConfig) error

	// =============================================================================
	// Campaigns
	// =============================================================================

	// CreateCampaign inserts a new campaign
	CreateCampaign(ctx context.Context, campaign *schema.Campaign) error
	// LockCampaign retrieves a campaign with SELECT ... FOR UPDATE; returns nil when missing
	LockCampaign(ctx context.Context, id string) (*schema.Campaign, error)
	// GetCampaign retrieves a campaign by id; returns nil when missing
	GetCampaign(ctx context.Context, id string) (*schema.Campaign, error)
	// AddCampaignSpend increments spent_micro; fails with ErrCampaignBudgetExceeded past the budget
	AddCampaignSpend(ctx context.Context, id string, amountMicro int64) error
	// CreateCampaignGrant inserts a grant; fails with ErrGrantAlreadyIssued for a repeated (campaign, account)
	CreateCampaignGrant(ctx context.Context, grant *schema.CampaignGrant) error
}
