package schema

import "time"

// AgentBudget represents the agent_budgets table - per-agent spend limits
type AgentBudget struct {
	AccountID            string    `gorm:"column:account_id;primaryKey;type:uuid"`
	DailyCapMicro        int64     `gorm:"column:daily_cap_micro;not null"`
	RefillThresholdMicro int64     `gorm:"column:refill_threshold_micro;not null;default:0"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AgentBudget model
func (AgentBudget) TableName() string {
	return "agent_budgets"
}

// AgentSpendRecord represents the agent_spend_records table - durable daily spend of an agent,
// written in the same transaction as the finalization it records
type AgentSpendRecord struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	AccountID     string    `gorm:"column:account_id;not null;type:uuid"`
	ReservationID string    `gorm:"column:reservation_id;not null;type:uuid"`
	SpendDate     time.Time `gorm:"column:spend_date;not null;type:date"`
	AmountMicro   int64     `gorm:"column:amount_micro;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AgentSpendRecord model
func (AgentSpendRecord) TableName() string {
	return "agent_spend_records"
}
