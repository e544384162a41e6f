package schema

import "time"

// Campaign represents the credit_campaigns table - a budget that grants are issued from.
// spent_micro <= budget_micro is enforced by a CHECK constraint.
type Campaign struct {
	ID          string `gorm:"column:id;primaryKey;type:uuid"`
	Name        string `gorm:"column:name;not null;type:varchar(255)"`
	BudgetMicro int64  `gorm:"column:budget_micro;not null"`
	SpentMicro  int64  `gorm:"column:spent_micro;not null;default:0"`
	// GrantExpiresInSeconds sets the expiry of issued grant lots (nil = non-expiring)
	GrantExpiresInSeconds *int64    `gorm:"column:grant_expires_in_seconds"`
	CreatedAt             time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt             time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "credit_campaigns"
}

// CampaignGrant represents the credit_campaign_grants table - one grant per account per campaign
type CampaignGrant struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	CampaignID  string    `gorm:"column:campaign_id;not null;type:uuid"`
	AccountID   string    `gorm:"column:account_id;not null;type:uuid"`
	LotID       string    `gorm:"column:lot_id;not null;type:uuid"`
	AmountMicro int64     `gorm:"column:amount_micro;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CampaignGrant model
func (CampaignGrant) TableName() string {
	return "credit_campaign_grants"
}
