package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// CampaignInput is a request to create a grant campaign
type CampaignInput struct {
	Name        string
	BudgetMicro int64
	// GrantTTL sets the lifetime of issued grant lots; zero means they never expire
	GrantTTL time.Duration
}

// GrantInput is a request to grant credit from a campaign
type GrantInput struct {
	CampaignID  string
	AccountID   string
	AmountMicro int64
}

// GrantResult is the outcome of a grant
type GrantResult struct {
	GrantID         string
	LotID           string
	CampaignID      string
	AccountID       string
	AmountMicro     int64
	RemainingBudget int64
	LotExpiresAt    *time.Time
}

func (l *ledger) CreateCampaign(ctx context.Context, input CampaignInput) (*schema.Campaign, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: campaign name is required", domain.ErrInvalidArgument)
	}
	if input.BudgetMicro <= 0 {
		return nil, fmt.Errorf("%w: campaign budget must be positive", domain.ErrInvalidAmount)
	}
	if input.GrantTTL < 0 {
		return nil, fmt.Errorf("%w: grant ttl must not be negative", domain.ErrInvalidArgument)
	}

	now := l.clock.Now()
	campaign := schema.Campaign{
		ID:          uuid.NewString(),
		Name:        input.Name,
		BudgetMicro: input.BudgetMicro,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.GrantTTL > 0 {
		seconds := int64(input.GrantTTL / time.Second)
		campaign.GrantExpiresInSeconds = &seconds
	}

	if err := l.store.CreateCampaign(ctx, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

// grantSourceRef is the lot source ref of a grant; one grant per account per campaign
func grantSourceRef(campaignID, accountID string) string {
	return fmt.Sprintf("grant:%s:%s", campaignID, accountID)
}

func (l *ledger) IssueGrant(ctx context.Context, input GrantInput) (*GrantResult, error) {
	if input.AmountMicro <= 0 {
		return nil, fmt.Errorf("%w: grant amount must be positive", domain.ErrInvalidAmount)
	}

	var result *GrantResult
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		now := l.clock.Now()

		// Lock order: account, then campaign
		account, err := tx.LockAccount(ctx, input.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		campaign, err := tx.LockCampaign(ctx, input.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return domain.ErrCampaignNotFound
		}

		if campaign.SpentMicro+input.AmountMicro > campaign.BudgetMicro {
			return fmt.Errorf("%w: campaign %s has %d left, grant needs %d", domain.ErrCampaignBudgetExceeded,
				campaign.ID, campaign.BudgetMicro-campaign.SpentMicro, input.AmountMicro)
		}

		var expiresAt *time.Time
		if campaign.GrantExpiresInSeconds != nil {
			t := now.Add(time.Duration(*campaign.GrantExpiresInSeconds) * time.Second)
			expiresAt = &t
		}

		ref := grantSourceRef(campaign.ID, account.ID)
		lot := schema.CreditLot{
			ID:             uuid.NewString(),
			AccountID:      account.ID,
			AmountMicro:    input.AmountMicro,
			RemainingMicro: input.AmountMicro,
			Origin:         domain.LotOriginGrant,
			SourceRef:      &ref,
			ExpiresAt:      expiresAt,
			CreatedAt:      now,
		}
		if err := tx.CreateLot(ctx, &lot); err != nil {
			if errors.Is(err, domain.ErrDuplicateSourceRef) {
				return domain.ErrGrantAlreadyIssued
			}
			return err
		}

		if err := tx.AddCampaignSpend(ctx, campaign.ID, input.AmountMicro); err != nil {
			return err
		}

		grant := schema.CampaignGrant{
			ID:          uuid.NewString(),
			CampaignID:  campaign.ID,
			AccountID:   account.ID,
			LotID:       lot.ID,
			AmountMicro: input.AmountMicro,
			CreatedAt:   now,
		}
		if err := tx.CreateCampaignGrant(ctx, &grant); err != nil {
			return err
		}

		result = &GrantResult{
			GrantID:         grant.ID,
			LotID:           lot.ID,
			CampaignID:      campaign.ID,
			AccountID:       account.ID,
			AmountMicro:     input.AmountMicro,
			RemainingBudget: campaign.BudgetMicro - campaign.SpentMicro - input.AmountMicro,
			LotExpiresAt:    expiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Issued grant",
		zap.String("campaignID", result.CampaignID),
		zap.String("accountID", result.AccountID),
		zap.Int64("amountMicro", result.AmountMicro))

	return result, nil
}
