package schema

import (
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// CreditReservation represents the credit_reservations table - a soft hold against an account.
// The finalization columns form the finalization record and are only set on finalize.
type CreditReservation struct {
	ID             string                  `gorm:"column:id;primaryKey;type:uuid"`
	AccountID      string                  `gorm:"column:account_id;not null;type:uuid"`
	AmountMicro    int64                   `gorm:"column:amount_micro;not null"`
	State          domain.ReservationState `gorm:"column:state;not null;type:varchar(16);default:active"`
	IsAgent        bool                    `gorm:"column:is_agent;not null;default:false"`
	FinalizationID *string                 `gorm:"column:finalization_id;type:varchar(255)"`
	FinalizedMicro *int64                  `gorm:"column:finalized_micro"`
	ReleasedMicro  *int64                  `gorm:"column:released_micro"`
	FinalizedAt    *time.Time              `gorm:"column:finalized_at;type:timestamptz"`
	CanceledAt     *time.Time              `gorm:"column:canceled_at;type:timestamptz"`
	ExpiresAt      time.Time               `gorm:"column:expires_at;not null;type:timestamptz"`
	CreatedAt      time.Time               `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt      time.Time               `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreditReservation model
func (CreditReservation) TableName() string {
	return "credit_reservations"
}

// EffectiveState returns the state after applying lazy expiry at now
func (r *CreditReservation) EffectiveState(now time.Time) domain.ReservationState {
	return domain.EffectiveReservationState(r.State, r.ExpiresAt, now)
}
