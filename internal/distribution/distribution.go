package distribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
)

// Request asks for the revenue of one finalization to be shared out
type Request struct {
	FinalizationID string  `json:"finalization_id"`
	AccountID      string  `json:"account_id"`
	CommunityID    *string `json:"community_id,omitempty"`
	AmountMicro    int64   `json:"amount_micro"`
}

// Share is the credit minted for one system account
type Share struct {
	EntityType  domain.EntityType `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	AccountID   string            `json:"account_id"`
	AmountMicro int64             `json:"amount_micro"`
	LotID       string            `json:"lot_id"`
	Replayed    bool              `json:"replayed"`
}

// Result is the outcome of a distribution
type Result struct {
	FinalizationID string  `json:"finalization_id"`
	Shares         []Share `json:"shares"`
}

// Distributor credits system accounts with their share of settled usage
//
//go:generate mockgen -source=distribution.go -destination=../mocks/distributor.go -package=mocks -mock_names=Distributor=MockDistributor
type Distributor interface {
	// Distribute credits every non-zero share in one transaction; replaying a finalization is a no-op
	Distribute(ctx context.Context, req Request) (*Result, error)
}

type distributor struct {
	store  store.Store
	ledger ledger.Ledger
	config billingconfig.Reader
	clock  adapter.Clock
}

// NewDistributor creates a revenue distributor
func NewDistributor(st store.Store, l ledger.Ledger, config billingconfig.Reader, clock adapter.Clock) Distributor {
	return &distributor{
		store:  st,
		ledger: l,
		config: config,
		clock:  clock,
	}
}

// shareOf returns floor(amount × bps / 10000)
func shareOf(amountMicro, bps int64) int64 {
	return decimal.NewFromInt(amountMicro).
		Mul(decimal.NewFromInt(bps)).
		Div(decimal.NewFromInt(domain.BASIS_POINTS_DENOMINATOR)).
		Floor().
		IntPart()
}

// sourceRef keys the lot minted for one share so a replayed distribution mints nothing
func sourceRef(finalizationID string, entityType domain.EntityType) string {
	return fmt.Sprintf("dist:%s:%s", finalizationID, entityType)
}

func (d *distributor) Distribute(ctx context.Context, req Request) (*Result, error) {
	if req.FinalizationID == "" {
		return nil, fmt.Errorf("%w: finalization id is required", domain.ErrInvalidArgument)
	}
	if req.AmountMicro < 0 {
		return nil, fmt.Errorf("%w: distributed amount must not be negative", domain.ErrInvalidAmount)
	}

	split, err := billingconfig.GetRevenueSplit(ctx, d.config)
	if err != nil {
		return nil, err
	}

	poolID := domain.SYSTEM_ENTITY_ID
	if req.CommunityID != nil && *req.CommunityID != "" {
		poolID = *req.CommunityID
	}

	planned := []Share{
		{EntityType: domain.EntityTypeFoundation, EntityID: domain.SYSTEM_ENTITY_ID, AmountMicro: shareOf(req.AmountMicro, split.FoundationBps)},
		{EntityType: domain.EntityTypeCommons, EntityID: domain.SYSTEM_ENTITY_ID, AmountMicro: shareOf(req.AmountMicro, split.CommonsBps)},
		{EntityType: domain.EntityTypeCommunityPool, EntityID: poolID, AmountMicro: shareOf(req.AmountMicro, split.CommunityPoolBps)},
	}

	result := &Result{FinalizationID: req.FinalizationID, Shares: make([]Share, 0, len(planned))}
	err = d.store.Transaction(ctx, func(tx store.Store) error {
		for _, share := range planned {
			if share.AmountMicro == 0 {
				continue
			}

			account, err := tx.EnsureSystemAccount(ctx, store.CreateAccountInput{
				ID:         uuid.NewString(),
				EntityType: share.EntityType,
				EntityID:   share.EntityID,
				CreatedAt:  d.clock.Now(),
			})
			if err != nil {
				return err
			}

			ref := sourceRef(req.FinalizationID, share.EntityType)
			credit, err := d.ledger.CreditInTx(ctx, tx, ledger.CreditInput{
				AccountID:   account.ID,
				AmountMicro: share.AmountMicro,
				Origin:      domain.LotOriginDistribution,
				SourceRef:   &ref,
			})
			if err != nil {
				return fmt.Errorf("failed to credit %s share: %w", share.EntityType, err)
			}

			share.AccountID = account.ID
			share.LotID = credit.LotID
			share.Replayed = credit.Replayed
			result.Shares = append(result.Shares, share)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Distributed revenue",
		zap.String("finalizationID", req.FinalizationID),
		zap.Int64("amountMicro", req.AmountMicro),
		zap.Int("shares", len(result.Shares)))

	return result, nil
}
