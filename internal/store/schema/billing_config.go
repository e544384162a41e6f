package schema

import "time"

// BillingConfig stores runtime-tunable billing values (rates, caps, modes)
type BillingConfig struct {
	Key         string    `gorm:"column:key;primaryKey;type:varchar(128)"`
	Value       string    `gorm:"column:value;not null;type:text"`
	Description *string   `gorm:"column:description;type:text"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

func (BillingConfig) TableName() string {
	return "billing_config"
}
