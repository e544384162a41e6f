package dto

import (
	"fmt"
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/constants"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// CreateAccountRequest represents the request body for POST /accounts
type CreateAccountRequest struct {
	EntityType domain.EntityType `json:"entity_type" binding:"required"`
	EntityID   string            `json:"entity_id" binding:"required"`
}

// Validate validates the create account request
func (r *CreateAccountRequest) Validate() error {
	if !domain.IsValidEntityType(r.EntityType) {
		return fmt.Errorf("unsupported entity_type %q", r.EntityType)
	}
	if len(r.EntityID) > constants.MAX_REQUEST_ID_BYTES {
		return fmt.Errorf("entity_id must be at most %d bytes", constants.MAX_REQUEST_ID_BYTES)
	}
	return nil
}

// CreditRequest represents the request body for POST /accounts/:id/credits
type CreditRequest struct {
	AmountMicro int64            `json:"amount_micro" binding:"required"`
	Origin      domain.LotOrigin `json:"origin" binding:"required"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	// SourceRef is the idempotency key of the minting event, e.g. a payment id
	SourceRef *string `json:"source_ref,omitempty"`
}

// Validate validates the credit request
func (r *CreditRequest) Validate() error {
	if r.AmountMicro <= 0 {
		return fmt.Errorf("amount_micro must be positive")
	}
	// Grants and distributions have their own entry points
	if r.Origin != domain.LotOriginDeposit && r.Origin != domain.LotOriginRefund {
		return fmt.Errorf("origin must be deposit or refund")
	}
	if r.SourceRef != nil && len(*r.SourceRef) > constants.MAX_REQUEST_ID_BYTES {
		return fmt.Errorf("source_ref must be at most %d bytes", constants.MAX_REQUEST_ID_BYTES)
	}
	return nil
}

// DebitRequest represents the request body for POST /accounts/:id/debits
type DebitRequest struct {
	AmountMicro int64 `json:"amount_micro" binding:"required"`
}

// Validate validates the debit request
func (r *DebitRequest) Validate() error {
	if r.AmountMicro <= 0 {
		return fmt.Errorf("amount_micro must be positive")
	}
	return nil
}

// ReserveRequest represents the request body for POST /accounts/:id/reservations
type ReserveRequest struct {
	AmountMicro int64 `json:"amount_micro" binding:"required"`
	// TTLSeconds defaults to the configured reservation TTL
	TTLSeconds int64 `json:"ttl_seconds,omitempty"`
}

// Validate validates the reserve request
func (r *ReserveRequest) Validate() error {
	if r.AmountMicro <= 0 {
		return fmt.Errorf("amount_micro must be positive")
	}
	if r.TTLSeconds < 0 {
		return fmt.Errorf("ttl_seconds must not be negative")
	}
	return nil
}

// TTL returns the requested reservation lifetime
func (r *ReserveRequest) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// FinalizeRequest represents the request body for POST /reservations/:id/finalize
type FinalizeRequest struct {
	ActualCostMicro int64  `json:"actual_cost_micro"`
	FinalizationID  string `json:"finalization_id" binding:"required"`
	// AccountID, when set, must own the reservation
	AccountID    string  `json:"account_id,omitempty"`
	CommunityID  *string `json:"community_id,omitempty"`
	NftID        *string `json:"nft_id,omitempty"`
	PoolID       *string `json:"pool_id,omitempty"`
	TokensInput  int64   `json:"tokens_input,omitempty"`
	TokensOutput int64   `json:"tokens_output,omitempty"`
}

// Validate validates the finalize request
func (r *FinalizeRequest) Validate() error {
	if r.ActualCostMicro < 0 {
		return fmt.Errorf("actual_cost_micro must not be negative")
	}
	if len(r.FinalizationID) > constants.MAX_REQUEST_ID_BYTES {
		return fmt.Errorf("finalization_id must be at most %d bytes", constants.MAX_REQUEST_ID_BYTES)
	}
	if r.TokensInput < 0 || r.TokensOutput < 0 {
		return fmt.Errorf("token counts must not be negative")
	}
	return nil
}

// SetBudgetRequest represents the request body for PUT /accounts/:id/budget
type SetBudgetRequest struct {
	DailyCapMicro        int64 `json:"daily_cap_micro"`
	RefillThresholdMicro int64 `json:"refill_threshold_micro"`
}

// Validate validates the budget request
func (r *SetBudgetRequest) Validate() error {
	if r.DailyCapMicro < 0 || r.RefillThresholdMicro < 0 {
		return fmt.Errorf("budget amounts must not be negative")
	}
	return nil
}

// CreateCampaignRequest represents the request body for POST /campaigns
type CreateCampaignRequest struct {
	Name        string `json:"name" binding:"required"`
	BudgetMicro int64  `json:"budget_micro" binding:"required"`
	// GrantTTLSeconds sets the lifetime of issued grants; zero means they never expire
	GrantTTLSeconds int64 `json:"grant_ttl_seconds,omitempty"`
}

// Validate validates the campaign request
func (r *CreateCampaignRequest) Validate() error {
	if r.BudgetMicro <= 0 {
		return fmt.Errorf("budget_micro must be positive")
	}
	if r.GrantTTLSeconds < 0 {
		return fmt.Errorf("grant_ttl_seconds must not be negative")
	}
	return nil
}

// IssueGrantRequest represents the request body for POST /campaigns/:id/grants
type IssueGrantRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	AmountMicro int64  `json:"amount_micro" binding:"required"`
}

// Validate validates the grant request
func (r *IssueGrantRequest) Validate() error {
	if r.AmountMicro <= 0 {
		return fmt.Errorf("amount_micro must be positive")
	}
	return nil
}

// SetConfigRequest represents the request body for PUT /config/:key
type SetConfigRequest struct {
	Value       string  `json:"value" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// SeedSystemAccountsRequest represents the request body for POST /system-accounts
type SeedSystemAccountsRequest struct {
	CommunityIDs []string `json:"community_ids"`
}

// Validate validates the seed request
func (r *SeedSystemAccountsRequest) Validate() error {
	if len(r.CommunityIDs) > constants.MAX_COMMUNITY_IDS {
		return fmt.Errorf("at most %d community ids per request", constants.MAX_COMMUNITY_IDS)
	}
	return nil
}
