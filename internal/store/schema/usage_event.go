package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Conservation guard outcomes stored on usage events
const (
	ConservationGuardFailed int16 = 0
	ConservationGuardPassed int16 = 1
)

// UsageEvent represents the usage_events table - append-only record of one finalization.
// The database rejects UPDATE and DELETE on this table.
type UsageEvent struct {
	// EventID is a ULID so events sort by creation time
	EventID string `gorm:"column:event_id;primaryKey;type:varchar(26)"`
	// AccountID is the settled account
	AccountID string `gorm:"column:account_id;not null;type:uuid"`
	// CommunityID is the community the usage is attributed to
	CommunityID *string `gorm:"column:community_id;type:varchar(255)"`
	// NftID is the agent/NFT that generated the usage
	NftID *string `gorm:"column:nft_id;type:varchar(255)"`
	// PoolID is the model pool that served the usage
	PoolID *string `gorm:"column:pool_id;type:varchar(255)"`
	// TokensInput is the number of input tokens billed
	TokensInput int64 `gorm:"column:tokens_input;not null;default:0"`
	// TokensOutput is the number of output tokens billed
	TokensOutput int64 `gorm:"column:tokens_output;not null;default:0"`
	// AmountMicro is the finalized cost
	AmountMicro int64 `gorm:"column:amount_micro;not null"`
	// ReservationID is the settled reservation
	ReservationID string `gorm:"column:reservation_id;not null;type:uuid"`
	// FinalizationID is the caller-supplied idempotency key
	FinalizationID string `gorm:"column:finalization_id;not null;type:varchar(255)"`
	// ConservationGuardResult is 1 when the guard passed and 0 when it found a violation
	ConservationGuardResult int16 `gorm:"column:conservation_guard_result;not null"`
	// ConservationGuardViolations describes what the guard found when it failed
	ConservationGuardViolations datatypes.JSON `gorm:"column:conservation_guard_violations;type:jsonb"`
	// CreatedAt is the timestamp when the event was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UsageEvent model
func (UsageEvent) TableName() string {
	return "usage_events"
}
