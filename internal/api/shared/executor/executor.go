package executor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/constants"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/dto"
	apierrors "github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/errors"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/settlement"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// UsageEventQuery filters the audit trail
type UsageEventQuery struct {
	AccountID       *string
	CommunityID     *string
	Since           *time.Time
	Until           *time.Time
	GuardFailedOnly bool
	Limit           int
	Offset          uint64
}

// DLQQuery filters DLQ listings
type DLQQuery struct {
	Status        *schema.DLQStatus
	OperationType *schema.DLQOperationType
	Limit         int
	Offset        uint64
}

// Executor is the interface for the API executor. Every error it returns is an *APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Accounts
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, accountID string) (*dto.AccountResponse, error)
	SeedSystemAccounts(ctx context.Context, req dto.SeedSystemAccountsRequest) (*dto.AccountListResponse, error)
	GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error)
	ListLots(ctx context.Context, accountID string) (*dto.LotListResponse, error)
	Credit(ctx context.Context, accountID string, req dto.CreditRequest) (*dto.CreditResponse, error)
	Debit(ctx context.Context, accountID string, req dto.DebitRequest) (*dto.DebitResponse, error)

	// Reservations
	Reserve(ctx context.Context, accountID string, req dto.ReserveRequest) (*dto.ReservationResponse, error)
	GetReservation(ctx context.Context, reservationID string) (*dto.ReservationResponse, error)
	Finalize(ctx context.Context, reservationID string, req dto.FinalizeRequest) (*dto.FinalizeResponse, error)
	Cancel(ctx context.Context, reservationID string) (*dto.ReservationResponse, error)

	// Agent budgets
	GetBudget(ctx context.Context, accountID string) (*dto.BudgetStatusResponse, error)
	SetBudget(ctx context.Context, accountID string, req dto.SetBudgetRequest) (*dto.BudgetStatusResponse, error)

	// Campaigns
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	IssueGrant(ctx context.Context, campaignID string, req dto.IssueGrantRequest) (*dto.GrantResponse, error)

	// Operations
	ListUsageEvents(ctx context.Context, query UsageEventQuery) (*dto.UsageEventListResponse, error)
	CheckConservation(ctx context.Context) (*dto.GuardReportResponse, error)
	ListDLQEntries(ctx context.Context, query DLQQuery) (*dto.DLQEntryListResponse, error)
	RequeueDLQEntry(ctx context.Context, id uint64) (*dto.DLQEntryResponse, error)
	ListConfig(ctx context.Context) (*dto.ConfigListResponse, error)
	SetConfig(ctx context.Context, key string, req dto.SetConfigRequest) (*dto.ConfigListResponse, error)
}

type executor struct {
	ledger  ledger.Ledger
	budget  budget.Service
	settler settlement.Settler
	dlq     dlq.Service
	config  billingconfig.Editor
}

func NewExecutor(l ledger.Ledger, b budget.Service, settler settlement.Settler, q dlq.Service, config billingconfig.Editor) Executor {
	return &executor{
		ledger:  l,
		budget:  b,
		settler: settler,
		dlq:     q,
		config:  config,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constants.DEFAULT_PAGE_SIZE
	}
	return min(limit, constants.MAX_PAGE_SIZE)
}

func (e *executor) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	var account *schema.CreditAccount
	var err error
	// System accounts are unique per entity; user and agent accounts are created fresh
	if domain.IsSystemEntityType(req.EntityType) {
		account, err = e.ledger.EnsureAccount(ctx, req.EntityType, req.EntityID)
	} else {
		account, err = e.ledger.CreateAccount(ctx, req.EntityType, req.EntityID)
	}
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) GetAccount(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	account, err := e.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) SeedSystemAccounts(ctx context.Context, req dto.SeedSystemAccountsRequest) (*dto.AccountListResponse, error) {
	accounts, err := e.ledger.SeedSystemAccounts(ctx, req.CommunityIDs)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	resp := &dto.AccountListResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, *dto.MapAccountToDTO(&accounts[i]))
	}
	return resp, nil
}

func (e *executor) GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error) {
	balance, err := e.ledger.GetBalance(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapBalanceToDTO(accountID, balance), nil
}

func (e *executor) ListLots(ctx context.Context, accountID string) (*dto.LotListResponse, error) {
	lots, err := e.ledger.ListLots(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapLotsToDTO(lots), nil
}

func (e *executor) Credit(ctx context.Context, accountID string, req dto.CreditRequest) (*dto.CreditResponse, error) {
	result, err := e.ledger.Credit(ctx, ledger.CreditInput{
		AccountID:   accountID,
		AmountMicro: req.AmountMicro,
		Origin:      req.Origin,
		ExpiresAt:   req.ExpiresAt,
		SourceRef:   req.SourceRef,
	})
	if err != nil {
		if req.SourceRef == nil || domain.IsBusinessError(err) {
			return nil, apierrors.FromError(err)
		}
		return e.queueCredit(ctx, accountID, req, err)
	}

	return &dto.CreditResponse{LotID: result.LotID, Replayed: result.Replayed}, nil
}

// queueCredit hands a credit that failed on infrastructure to the DLQ.
// Only credits with a source ref are queued, so the replay cannot mint twice.
func (e *executor) queueCredit(ctx context.Context, accountID string, req dto.CreditRequest, cause error) (*dto.CreditResponse, error) {
	op := schema.DLQOperationDeposit
	if req.Origin == domain.LotOriginRefund {
		op = schema.DLQOperationRefund
	}

	// The payment behind the credit has already happened; a client disconnect must not lose it
	entry, err := e.dlq.Enqueue(context.WithoutCancel(ctx), op, dlq.CreditPayload{
		AccountID:   accountID,
		AmountMicro: req.AmountMicro,
		SourceRef:   *req.SourceRef,
		ExpiresAt:   req.ExpiresAt,
	}, cause)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to queue credit: %w", err),
			zap.String("accountID", accountID),
			zap.String("sourceRef", *req.SourceRef),
			zap.NamedError("cause", cause))
		return nil, apierrors.FromError(cause)
	}

	return &dto.CreditResponse{Queued: true, DLQEntryID: entry.ID}, nil
}

func (e *executor) Debit(ctx context.Context, accountID string, req dto.DebitRequest) (*dto.DebitResponse, error) {
	result, err := e.ledger.Debit(ctx, accountID, req.AmountMicro)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return result, nil
}

// Reserve routes agent accounts through the daily budget
func (e *executor) Reserve(ctx context.Context, accountID string, req dto.ReserveRequest) (*dto.ReservationResponse, error) {
	account, err := e.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	var reservation *ledger.Reservation
	if account.EntityType == domain.EntityTypeAgent {
		reservation, err = e.budget.ReserveForInference(ctx, accountID, req.AmountMicro, req.TTL())
	} else {
		reservation, err = e.ledger.Reserve(ctx, ledger.ReserveInput{
			AccountID:   accountID,
			AmountMicro: req.AmountMicro,
			TTL:         req.TTL(),
		})
	}
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return reservation, nil
}

func (e *executor) GetReservation(ctx context.Context, reservationID string) (*dto.ReservationResponse, error) {
	reservation, err := e.ledger.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return reservation, nil
}

func (e *executor) Finalize(ctx context.Context, reservationID string, req dto.FinalizeRequest) (*dto.FinalizeResponse, error) {
	reservation, err := e.ledger.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	result, err := e.settler.Finalize(ctx, settlement.FinalizeRequest{
		ReservationID:   reservationID,
		ActualCostMicro: req.ActualCostMicro,
		FinalizationID:  req.FinalizationID,
		AccountID:       req.AccountID,
		IsAgent:         reservation.IsAgent,
		Usage: ledger.Usage{
			CommunityID:  req.CommunityID,
			NftID:        req.NftID,
			PoolID:       req.PoolID,
			TokensInput:  req.TokensInput,
			TokensOutput: req.TokensOutput,
		},
	})
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return result, nil
}

func (e *executor) Cancel(ctx context.Context, reservationID string) (*dto.ReservationResponse, error) {
	reservation, err := e.ledger.Cancel(ctx, reservationID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	// A released agent hold no longer counts toward today's spend
	if reservation.IsAgent {
		if err := e.budget.Invalidate(ctx, reservation.AccountID); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate budget cache after cancel",
				zap.String("accountID", reservation.AccountID),
				zap.Error(err))
		}
	}

	return reservation, nil
}

func (e *executor) GetBudget(ctx context.Context, accountID string) (*dto.BudgetStatusResponse, error) {
	account, err := e.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}
	if account.EntityType != domain.EntityTypeAgent {
		return nil, apierrors.FromError(fmt.Errorf("%w: budgets apply to agent accounts only", domain.ErrInvalidEntityType))
	}

	status, err := e.budget.GetBudgetStatus(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return status, nil
}

func (e *executor) SetBudget(ctx context.Context, accountID string, req dto.SetBudgetRequest) (*dto.BudgetStatusResponse, error) {
	if err := e.budget.SetAgentBudget(ctx, accountID, req.DailyCapMicro, req.RefillThresholdMicro); err != nil {
		return nil, apierrors.FromError(err)
	}
	logger.InfoCtx(ctx, "Agent budget changed",
		zap.String("accountID", accountID),
		zap.Int64("dailyCapMicro", req.DailyCapMicro))

	status, err := e.budget.GetBudgetStatus(ctx, accountID)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return status, nil
}

func (e *executor) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := e.ledger.CreateCampaign(ctx, ledger.CampaignInput{
		Name:        req.Name,
		BudgetMicro: req.BudgetMicro,
		GrantTTL:    time.Duration(req.GrantTTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapCampaignToDTO(campaign), nil
}

func (e *executor) IssueGrant(ctx context.Context, campaignID string, req dto.IssueGrantRequest) (*dto.GrantResponse, error) {
	grant, err := e.ledger.IssueGrant(ctx, ledger.GrantInput{
		CampaignID:  campaignID,
		AccountID:   req.AccountID,
		AmountMicro: req.AmountMicro,
	})
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapGrantToDTO(grant), nil
}

func (e *executor) ListUsageEvents(ctx context.Context, query UsageEventQuery) (*dto.UsageEventListResponse, error) {
	events, total, err := e.ledger.GetAuditTrail(ctx, store.UsageEventFilter{
		AccountID:       query.AccountID,
		CommunityID:     query.CommunityID,
		Since:           query.Since,
		Until:           query.Until,
		GuardFailedOnly: query.GuardFailedOnly,
		Limit:           clampLimit(query.Limit),
		Offset:          query.Offset,
	})
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapUsageEventsToDTO(events, total), nil
}

func (e *executor) CheckConservation(ctx context.Context) (*dto.GuardReportResponse, error) {
	report, err := e.ledger.CheckSystem(ctx)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return report, nil
}

func (e *executor) ListDLQEntries(ctx context.Context, query DLQQuery) (*dto.DLQEntryListResponse, error) {
	entries, total, err := e.dlq.List(ctx, store.DLQEntryFilter{
		Status:        query.Status,
		OperationType: query.OperationType,
		Limit:         clampLimit(query.Limit),
		Offset:        query.Offset,
	})
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapDLQEntriesToDTO(entries, total), nil
}

func (e *executor) RequeueDLQEntry(ctx context.Context, id uint64) (*dto.DLQEntryResponse, error) {
	entry, err := e.dlq.Requeue(ctx, id)
	if err != nil {
		return nil, apierrors.FromError(err)
	}
	logger.InfoCtx(ctx, "DLQ entry requeued", zap.Uint64("entryID", id))

	return dto.MapDLQEntryToDTO(entry), nil
}

func (e *executor) ListConfig(ctx context.Context) (*dto.ConfigListResponse, error) {
	entries, err := e.config.List(ctx)
	if err != nil {
		return nil, apierrors.FromError(err)
	}

	return dto.MapConfigToDTO(entries), nil
}

func (e *executor) SetConfig(ctx context.Context, key string, req dto.SetConfigRequest) (*dto.ConfigListResponse, error) {
	if err := e.config.Set(ctx, key, req.Value, req.Description); err != nil {
		return nil, apierrors.FromError(err)
	}
	logger.InfoCtx(ctx, "Billing config changed", zap.String("key", key), zap.String("value", req.Value))

	return e.ListConfig(ctx)
}
