package schema

import (
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// CreditLot represents the credit_lots table - a quantity of credit minted by one origin event
type CreditLot struct {
	// ID is the lot UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// AccountID is the owning account
	AccountID string `gorm:"column:account_id;not null;type:uuid"`
	// AmountMicro is the amount minted; immutable
	AmountMicro int64 `gorm:"column:amount_micro;not null"`
	// RemainingMicro is what is left after consumption; never increases
	RemainingMicro int64 `gorm:"column:remaining_micro;not null"`
	// Origin is the minting event (deposit, grant, refund, distribution)
	Origin domain.LotOrigin `gorm:"column:origin;not null;type:varchar(32)"`
	// SourceRef is the idempotency key of the minting event (e.g. a payment id)
	SourceRef *string `gorm:"column:source_ref;type:varchar(255)"`
	// ExpiresAt is when the lot stops being spendable (nil = never)
	ExpiresAt *time.Time `gorm:"column:expires_at;type:timestamptz"`
	// CreatedAt is the timestamp when the lot was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreditLot model
func (CreditLot) TableName() string {
	return "credit_lots"
}

// IsExpired reports whether the lot is past its expiry at now
func (l *CreditLot) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
