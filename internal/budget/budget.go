package budget

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// Config holds the budget defaults used for agents without an explicit budget
type Config struct {
	DefaultDailyCapMicro        int64
	DefaultRefillThresholdMicro int64
	// InstanceCount is the number of instances sharing the cache; it sizes the degraded ceiling
	InstanceCount int
}

// CheckResult is the outcome of a budget check
type CheckResult struct {
	Allowed        bool  `json:"allowed"`
	RemainingMicro int64 `json:"remaining_micro"`
	SpentMicro     int64 `json:"spent_micro"`
	CapMicro       int64 `json:"cap_micro"`
}

// Status is the budget of an agent on the current UTC day
type Status struct {
	AccountID            string `json:"account_id"`
	Date                 string `json:"date"`
	CapMicro             int64  `json:"cap_micro"`
	SpentMicro           int64  `json:"spent_micro"`
	RemainingMicro       int64  `json:"remaining_micro"`
	RefillThresholdMicro int64  `json:"refill_threshold_micro"`
	AvailableMicro       int64  `json:"available_micro"`
	NeedsRefill          bool   `json:"needs_refill"`
	CacheMode            string `json:"cache_mode"`
	// EffectiveCeilingMicro is what the agent can actually spend today across all instances;
	// it exceeds CapMicro while the cache is degraded
	EffectiveCeilingMicro int64 `json:"effective_ceiling_micro"`
}

// Service enforces per-agent daily spend caps
//
//go:generate mockgen -source=budget.go -destination=../mocks/budget_service.go -package=mocks -mock_names=Service=MockBudgetService
type Service interface {
	// CheckBudget reports whether requestedMicro fits in today's remaining budget
	CheckBudget(ctx context.Context, accountID string, requestedMicro int64) (*CheckResult, error)
	// RecordFinalizationInTransaction records finalized agent spend in the caller's transaction
	RecordFinalizationInTransaction(ctx context.Context, tx store.Store, accountID, reservationID string, amountMicro int64) error
	// NeedsRefill reports whether the available balance is below the refill threshold; advisory only
	NeedsRefill(ctx context.Context, accountID string) (bool, error)
	// ReserveForInference checks the budget, then places an agent reservation
	ReserveForInference(ctx context.Context, accountID string, amountMicro int64, ttl time.Duration) (*ledger.Reservation, error)
	// GetBudgetStatus returns today's budget figures
	GetBudgetStatus(ctx context.Context, accountID string) (*Status, error)
	// SetAgentBudget sets the daily cap and refill threshold of an agent
	SetAgentBudget(ctx context.Context, accountID string, dailyCapMicro, refillThresholdMicro int64) error
	// Invalidate drops today's cached finalized spend of an account
	Invalidate(ctx context.Context, accountID string) error
}

type service struct {
	store  store.Store
	ledger ledger.Ledger
	cache  Cache
	config billingconfig.Reader
	clock  adapter.Clock
	cfg    Config
}

// NewService creates a budget service
func NewService(st store.Store, l ledger.Ledger, cache Cache, config billingconfig.Reader, clock adapter.Clock, cfg Config) Service {
	if cfg.InstanceCount <= 0 {
		cfg.InstanceCount = 1
	}

	return &service{
		store:  st,
		ledger: l,
		cache:  cache,
		config: config,
		clock:  clock,
		cfg:    cfg,
	}
}

// limits resolves the cap and refill threshold of an agent
func (s *service) limits(ctx context.Context, accountID string) (capMicro, thresholdMicro int64, err error) {
	b, err := s.store.GetAgentBudget(ctx, accountID)
	if err != nil {
		return 0, 0, err
	}
	if b != nil {
		return b.DailyCapMicro, b.RefillThresholdMicro, nil
	}

	capMicro, err = s.config.GetInt64(ctx, billingconfig.KeyAgentDailyCapMicro, s.cfg.DefaultDailyCapMicro)
	if err != nil {
		return 0, 0, err
	}
	thresholdMicro, err = s.config.GetInt64(ctx, billingconfig.KeyAgentRefillThresholdMicro, s.cfg.DefaultRefillThresholdMicro)
	if err != nil {
		return 0, 0, err
	}

	return capMicro, thresholdMicro, nil
}

// spend returns the agent's spend on the UTC day of now: finalized spend plus the
// agent reservations opened that day that are still active at now
func (s *service) spend(ctx context.Context, accountID string, now time.Time) (int64, error) {
	finalized, err := s.finalizedSpend(ctx, accountID, now)
	if err != nil {
		return 0, err
	}

	// Holds lapse without any write, so they are always summed against now
	dayStart := domain.StartOfUTCDay(now)
	held, err := s.store.SumAgentActiveReservations(ctx, accountID, dayStart, dayStart.Add(24*time.Hour), now)
	if err != nil {
		return 0, err
	}

	return finalized + held, nil
}

// finalizedSpend returns the recorded spend of the day, cached until the next UTC midnight.
// It only changes on finalize, which invalidates the entry.
func (s *service) finalizedSpend(ctx context.Context, accountID string, now time.Time) (int64, error) {
	key := spendKey(accountID, now)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Budget cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	finalized, err := s.store.SumAgentSpend(ctx, accountID, domain.StartOfUTCDay(now))
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetWithTTL(ctx, key, finalized, domain.UntilNextUTCMidnight(now)); err != nil {
		logger.WarnCtx(ctx, "Budget cache write failed", zap.String("key", key), zap.Error(err))
	}

	return finalized, nil
}

func (s *service) CheckBudget(ctx context.Context, accountID string, requestedMicro int64) (*CheckResult, error) {
	if requestedMicro < 0 {
		return nil, fmt.Errorf("%w: requested amount must not be negative", domain.ErrInvalidAmount)
	}

	capMicro, _, err := s.limits(ctx, accountID)
	if err != nil {
		return nil, err
	}
	spent, err := s.spend(ctx, accountID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Allowed:        spent+requestedMicro <= capMicro,
		RemainingMicro: max(capMicro-spent, 0),
		SpentMicro:     spent,
		CapMicro:       capMicro,
	}, nil
}

func (s *service) RecordFinalizationInTransaction(ctx context.Context, tx store.Store, accountID, reservationID string, amountMicro int64) error {
	if amountMicro < 0 {
		return fmt.Errorf("%w: spend must not be negative", domain.ErrInvalidAmount)
	}

	now := s.clock.Now()
	created, err := tx.CreateAgentSpendRecord(ctx, &schema.AgentSpendRecord{
		AccountID:     accountID,
		ReservationID: reservationID,
		SpendDate:     domain.StartOfUTCDay(now),
		AmountMicro:   amountMicro,
		CreatedAt:     now,
	})
	if err != nil {
		return err
	}
	if !created {
		logger.DebugCtx(ctx, "Agent spend already recorded", zap.String("reservationID", reservationID))
	}

	return nil
}

func (s *service) NeedsRefill(ctx context.Context, accountID string) (bool, error) {
	_, threshold, err := s.limits(ctx, accountID)
	if err != nil {
		return false, err
	}
	balance, err := s.ledger.GetBalance(ctx, accountID)
	if err != nil {
		return false, err
	}

	return balance.AvailableMicro < threshold, nil
}

func (s *service) ReserveForInference(ctx context.Context, accountID string, amountMicro int64, ttl time.Duration) (*ledger.Reservation, error) {
	check, err := s.CheckBudget(ctx, accountID, amountMicro)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		metrics.BudgetDenials.Inc()
		logger.InfoCtx(ctx, "Agent reservation denied by daily cap",
			zap.String("accountID", accountID),
			zap.Int64("requestedMicro", amountMicro),
			zap.Int64("spentMicro", check.SpentMicro),
			zap.Int64("capMicro", check.CapMicro))
		return nil, &domain.DailyCapExceededError{
			AccountID:      accountID,
			RequestedMicro: amountMicro,
			SpentMicro:     check.SpentMicro,
			CapMicro:       check.CapMicro,
		}
	}

	reservation, err := s.ledger.Reserve(ctx, ledger.ReserveInput{
		AccountID:   accountID,
		AmountMicro: amountMicro,
		TTL:         ttl,
		IsAgent:     true,
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *service) GetBudgetStatus(ctx context.Context, accountID string) (*Status, error) {
	now := s.clock.Now()

	capMicro, threshold, err := s.limits(ctx, accountID)
	if err != nil {
		return nil, err
	}
	spent, err := s.spend(ctx, accountID, now)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	mode := s.cache.Mode()
	ceiling := capMicro
	if mode == ModeMemoryFallback {
		ceiling = capMicro * int64(s.cfg.InstanceCount)
	}

	return &Status{
		AccountID:             accountID,
		Date:                  domain.UTCDay(now),
		CapMicro:              capMicro,
		SpentMicro:            spent,
		RemainingMicro:        max(capMicro-spent, 0),
		RefillThresholdMicro:  threshold,
		AvailableMicro:        balance.AvailableMicro,
		NeedsRefill:           balance.AvailableMicro < threshold,
		CacheMode:             mode,
		EffectiveCeilingMicro: ceiling,
	}, nil
}

func (s *service) SetAgentBudget(ctx context.Context, accountID string, dailyCapMicro, refillThresholdMicro int64) error {
	if dailyCapMicro < 0 || refillThresholdMicro < 0 {
		return fmt.Errorf("%w: budget amounts must not be negative", domain.ErrInvalidAmount)
	}

	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if account.EntityType != domain.EntityTypeAgent {
		return fmt.Errorf("%w: budgets apply to agent accounts only", domain.ErrInvalidEntityType)
	}

	if err := s.store.UpsertAgentBudget(ctx, &schema.AgentBudget{
		AccountID:            accountID,
		DailyCapMicro:        dailyCapMicro,
		RefillThresholdMicro: refillThresholdMicro,
		UpdatedAt:            s.clock.Now(),
	}); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Set agent budget",
		zap.String("accountID", accountID),
		zap.Int64("dailyCapMicro", dailyCapMicro),
		zap.Int64("refillThresholdMicro", refillThresholdMicro))

	return nil
}

func (s *service) Invalidate(ctx context.Context, accountID string) error {
	return s.cache.Del(ctx, spendKey(accountID, s.clock.Now()))
}
