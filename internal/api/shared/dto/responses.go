package dto

import (
	"encoding/json"
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/settlement"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// AccountResponse represents an account
type AccountResponse struct {
	ID         string            `json:"id"`
	EntityType domain.EntityType `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	CreatedAt  time.Time         `json:"created_at"`
}

// MapAccountToDTO maps an account row to its DTO
func MapAccountToDTO(a *schema.CreditAccount) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		CreatedAt:  a.CreatedAt,
	}
}

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceResponse represents an account balance; the string fields are the same
// amounts formatted in reference currency units
type BalanceResponse struct {
	AccountID      string `json:"account_id"`
	TotalMicro     int64  `json:"total_micro"`
	ReservedMicro  int64  `json:"reserved_micro"`
	AvailableMicro int64  `json:"available_micro"`
	Total          string `json:"total"`
	Reserved       string `json:"reserved"`
	Available      string `json:"available"`
}

// MapBalanceToDTO maps a ledger balance to its DTO
func MapBalanceToDTO(accountID string, b *ledger.Balance) *BalanceResponse {
	return &BalanceResponse{
		AccountID:      accountID,
		TotalMicro:     b.TotalMicro,
		ReservedMicro:  b.ReservedMicro,
		AvailableMicro: b.AvailableMicro,
		Total:          domain.FormatMicro(b.TotalMicro),
		Reserved:       domain.FormatMicro(b.ReservedMicro),
		Available:      domain.FormatMicro(b.AvailableMicro),
	}
}

// LotResponse represents a credit lot
type LotResponse struct {
	ID             string           `json:"id"`
	AmountMicro    int64            `json:"amount_micro"`
	RemainingMicro int64            `json:"remaining_micro"`
	Origin         domain.LotOrigin `json:"origin"`
	SourceRef      *string          `json:"source_ref,omitempty"`
	ExpiresAt      *time.Time       `json:"expires_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// LotListResponse represents the lots of an account
type LotListResponse struct {
	Lots []LotResponse `json:"lots"`
}

// MapLotsToDTO maps lot rows to their DTO
func MapLotsToDTO(lots []schema.CreditLot) *LotListResponse {
	resp := &LotListResponse{Lots: make([]LotResponse, 0, len(lots))}
	for _, l := range lots {
		resp.Lots = append(resp.Lots, LotResponse{
			ID:             l.ID,
			AmountMicro:    l.AmountMicro,
			RemainingMicro: l.RemainingMicro,
			Origin:         l.Origin,
			SourceRef:      l.SourceRef,
			ExpiresAt:      l.ExpiresAt,
			CreatedAt:      l.CreatedAt,
		})
	}
	return resp
}

// CreditResponse represents the outcome of a credit
type CreditResponse struct {
	LotID    string `json:"lot_id,omitempty"`
	Replayed bool   `json:"replayed"`
	// Queued is set when the credit failed transiently and was queued for retry
	Queued     bool   `json:"queued,omitempty"`
	DLQEntryID uint64 `json:"dlq_entry_id,omitempty"`
}

// DebitResponse represents the outcome of a debit
type DebitResponse = ledger.DebitResult

// ReservationResponse represents a reservation
type ReservationResponse = ledger.Reservation

// FinalizeResponse represents the outcome of a settlement
type FinalizeResponse = settlement.Result

// BudgetStatusResponse represents an agent's budget for the current UTC day
type BudgetStatusResponse = budget.Status

// CampaignResponse represents a grant campaign
type CampaignResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	BudgetMicro           int64     `json:"budget_micro"`
	SpentMicro            int64     `json:"spent_micro"`
	GrantExpiresInSeconds *int64    `json:"grant_expires_in_seconds,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// MapCampaignToDTO maps a campaign row to its DTO
func MapCampaignToDTO(c *schema.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		BudgetMicro:           c.BudgetMicro,
		SpentMicro:            c.SpentMicro,
		GrantExpiresInSeconds: c.GrantExpiresInSeconds,
		CreatedAt:             c.CreatedAt,
	}
}

// GrantResponse represents an issued grant
type GrantResponse struct {
	GrantID              string     `json:"grant_id"`
	LotID                string     `json:"lot_id"`
	CampaignID           string     `json:"campaign_id"`
	AccountID            string     `json:"account_id"`
	AmountMicro          int64      `json:"amount_micro"`
	RemainingBudgetMicro int64      `json:"remaining_budget_micro"`
	LotExpiresAt         *time.Time `json:"lot_expires_at,omitempty"`
}

// MapGrantToDTO maps a grant result to its DTO
func MapGrantToDTO(g *ledger.GrantResult) *GrantResponse {
	return &GrantResponse{
		GrantID:              g.GrantID,
		LotID:                g.LotID,
		CampaignID:           g.CampaignID,
		AccountID:            g.AccountID,
		AmountMicro:          g.AmountMicro,
		RemainingBudgetMicro: g.RemainingBudget,
		LotExpiresAt:         g.LotExpiresAt,
	}
}

// UsageEventResponse represents an audit trail entry
type UsageEventResponse struct {
	EventID                     string          `json:"event_id"`
	AccountID                   string          `json:"account_id"`
	CommunityID                 *string         `json:"community_id,omitempty"`
	NftID                       *string         `json:"nft_id,omitempty"`
	PoolID                      *string         `json:"pool_id,omitempty"`
	TokensInput                 int64           `json:"tokens_input"`
	TokensOutput                int64           `json:"tokens_output"`
	AmountMicro                 int64           `json:"amount_micro"`
	ReservationID               string          `json:"reservation_id"`
	FinalizationID              string          `json:"finalization_id"`
	ConservationGuardResult     int16           `json:"conservation_guard_result"`
	ConservationGuardViolations json.RawMessage `json:"conservation_guard_violations,omitempty"`
	CreatedAt                   time.Time       `json:"created_at"`
}

// UsageEventListResponse represents a page of the audit trail
type UsageEventListResponse struct {
	Events []UsageEventResponse `json:"events"`
	Total  uint64               `json:"total"`
}

// MapUsageEventsToDTO maps usage event rows to their DTO
func MapUsageEventsToDTO(events []schema.UsageEvent, total uint64) *UsageEventListResponse {
	resp := &UsageEventListResponse{Events: make([]UsageEventResponse, 0, len(events)), Total: total}
	for _, e := range events {
		item := UsageEventResponse{
			EventID:                 e.EventID,
			AccountID:               e.AccountID,
			CommunityID:             e.CommunityID,
			NftID:                   e.NftID,
			PoolID:                  e.PoolID,
			TokensInput:             e.TokensInput,
			TokensOutput:            e.TokensOutput,
			AmountMicro:             e.AmountMicro,
			ReservationID:           e.ReservationID,
			FinalizationID:          e.FinalizationID,
			ConservationGuardResult: e.ConservationGuardResult,
			CreatedAt:               e.CreatedAt,
		}
		if len(e.ConservationGuardViolations) > 0 {
			item.ConservationGuardViolations = json.RawMessage(e.ConservationGuardViolations)
		}
		resp.Events = append(resp.Events, item)
	}
	return resp
}

// GuardReportResponse represents a conservation check
type GuardReportResponse = ledger.GuardReport

// DLQEntryResponse represents a DLQ entry
type DLQEntryResponse struct {
	ID            uint64                  `json:"id"`
	OperationType schema.DLQOperationType `json:"operation_type"`
	Payload       json.RawMessage         `json:"payload"`
	ErrorMessage  *string                 `json:"error_message,omitempty"`
	RetryCount    int                     `json:"retry_count"`
	MaxRetries    int                     `json:"max_retries"`
	Status        schema.DLQStatus        `json:"status"`
	NextRetryAt   time.Time               `json:"next_retry_at"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	CompletedAt   *time.Time              `json:"completed_at,omitempty"`
}

// MapDLQEntryToDTO maps a DLQ row to its DTO
func MapDLQEntryToDTO(e *schema.BillingDLQEntry) *DLQEntryResponse {
	return &DLQEntryResponse{
		ID:            e.ID,
		OperationType: e.OperationType,
		Payload:       json.RawMessage(e.Payload),
		ErrorMessage:  e.ErrorMessage,
		RetryCount:    e.RetryCount,
		MaxRetries:    e.MaxRetries,
		Status:        e.Status,
		NextRetryAt:   e.NextRetryAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		CompletedAt:   e.CompletedAt,
	}
}

// DLQEntryListResponse represents a page of DLQ entries
type DLQEntryListResponse struct {
	Entries []DLQEntryResponse `json:"entries"`
	Total   uint64             `json:"total"`
}

// MapDLQEntriesToDTO maps DLQ rows to their DTO
func MapDLQEntriesToDTO(entries []schema.BillingDLQEntry, total uint64) *DLQEntryListResponse {
	resp := &DLQEntryListResponse{Entries: make([]DLQEntryResponse, 0, len(entries)), Total: total}
	for i := range entries {
		resp.Entries = append(resp.Entries, *MapDLQEntryToDTO(&entries[i]))
	}
	return resp
}

// ConfigEntryResponse represents a billing config value
type ConfigEntryResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConfigListResponse represents all billing config values
type ConfigListResponse struct {
	Entries []ConfigEntryResponse `json:"entries"`
}

// MapConfigToDTO maps config rows to their DTO
func MapConfigToDTO(entries []schema.BillingConfig) *ConfigListResponse {
	resp := &ConfigListResponse{Entries: make([]ConfigEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ConfigEntryResponse{
			Key:         e.Key,
			Value:       e.Value,
			Description: e.Description,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return resp
}
