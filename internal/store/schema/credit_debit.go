package schema

import (
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// CreditDebit represents the credit_debits table - one burn of credit from an account
type CreditDebit struct {
	ID            string             `gorm:"column:id;primaryKey;type:uuid"`
	AccountID     string             `gorm:"column:account_id;not null;type:uuid"`
	AmountMicro   int64              `gorm:"column:amount_micro;not null"`
	Reason        domain.DebitReason `gorm:"column:reason;not null;type:varchar(16)"`
	ReservationID *string            `gorm:"column:reservation_id;type:uuid"`
	CreatedAt     time.Time          `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreditDebit model
func (CreditDebit) TableName() string {
	return "credit_debits"
}

// LotConsumption represents the credit_lot_consumptions table - the per-lot breakdown of a debit
type LotConsumption struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	DebitID     string    `gorm:"column:debit_id;not null;type:uuid"`
	LotID       string    `gorm:"column:lot_id;not null;type:uuid"`
	AmountMicro int64     `gorm:"column:amount_micro;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LotConsumption model
func (LotConsumption) TableName() string {
	return "credit_lot_consumptions"
}
