package schema

import (
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// CreditAccount represents the credit_accounts table - one balance holder
type CreditAccount struct {
	// ID is the account UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// EntityType is the kind of holder (user, agent, foundation, commons, community-pool)
	EntityType domain.EntityType `gorm:"column:entity_type;not null;type:varchar(32)"`
	// EntityID identifies the holder within its entity type
	EntityID string `gorm:"column:entity_id;not null;type:varchar(255)"`
	// CreatedAt is the timestamp when the account was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreditAccount model
func (CreditAccount) TableName() string {
	return "credit_accounts"
}
