package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DLQOperationType is the kind of billing side-effect held in the DLQ
type DLQOperationType string

const (
	DLQOperationDeposit        DLQOperationType = "deposit"
	DLQOperationRefund         DLQOperationType = "refund"
	DLQOperationDistribution   DLQOperationType = "distribution"
	DLQOperationReconciliation DLQOperationType = "reconciliation"
	DLQOperationWebhook        DLQOperationType = "webhook"
)

// Valid checks if an operation type is supported
func (o DLQOperationType) Valid() bool {
	switch o {
	case DLQOperationDeposit, DLQOperationRefund, DLQOperationDistribution, DLQOperationReconciliation, DLQOperationWebhook:
		return true
	}
	return false
}

// DLQStatus is the status of a DLQ entry
type DLQStatus string

const (
	// DLQStatusPending is waiting for next_retry_at
	DLQStatusPending DLQStatus = "pending"
	// DLQStatusProcessing is claimed by a worker
	DLQStatusProcessing DLQStatus = "processing"
	// DLQStatusCompleted succeeded
	DLQStatusCompleted DLQStatus = "completed"
	// DLQStatusFailed could not be replayed at all (unknown operation or malformed payload)
	DLQStatusFailed DLQStatus = "failed"
	// DLQStatusManualReview exhausted its retries and waits for an operator
	DLQStatusManualReview DLQStatus = "manual_review"
)

// Valid checks if a status is supported
func (s DLQStatus) Valid() bool {
	switch s {
	case DLQStatusPending, DLQStatusProcessing, DLQStatusCompleted, DLQStatusFailed, DLQStatusManualReview:
		return true
	}
	return false
}

// BillingDLQEntry represents the billing_dlq table - a failed billing side-effect awaiting retry
type BillingDLQEntry struct {
	ID            uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	OperationType DLQOperationType `gorm:"column:operation_type;not null;type:varchar(32)"`
	Payload       datatypes.JSON   `gorm:"column:payload;not null;type:jsonb"`
	ErrorMessage  *string          `gorm:"column:error_message;type:text"`
	RetryCount    int              `gorm:"column:retry_count;not null;default:0"`
	MaxRetries    int              `gorm:"column:max_retries;not null"`
	Status        DLQStatus        `gorm:"column:status;not null;type:varchar(16);default:pending"`
	NextRetryAt   time.Time        `gorm:"column:next_retry_at;not null;type:timestamptz"`
	// ClaimedAt is when a worker moved the entry to processing; stale claims are retaken
	ClaimedAt   *time.Time `gorm:"column:claimed_at;type:timestamptz"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
}

// TableName specifies the table name for the BillingDLQEntry model
func (BillingDLQEntry) TableName() string {
	return "billing_dlq"
}
