package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/testutil/pgtest"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pgtest.Main(m, &testDB)
}

// budgetEnv wires the budget service to a real ledger inside a rolled-back transaction
type budgetEnv struct {
	store   store.Store
	ledger  ledger.Ledger
	service budget.Service
	clock   *testClock
}

func setupBudget(t *testing.T) *budgetEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	clock := newTestClock(ctrl, time.Now().UTC().Truncate(24*time.Hour).Add(10*time.Hour))
	st := store.NewPGStore(pgtest.BeginTx(t, testDB))
	l := ledger.NewLedger(st, mocks.NewMockAlertEmitter(ctrl), clock, ledger.Config{})

	return &budgetEnv{
		store:   st,
		ledger:  l,
		service: budget.NewService(st, l, budget.NewMemoryCache(clock), billingconfig.NewService(st, clock), clock, budget.Config{}),
		clock:   clock,
	}
}

func (e *budgetEnv) fundedAgent(t *testing.T, amountMicro int64) string {
	t.Helper()
	ctx := context.Background()

	account, err := e.ledger.EnsureAccount(ctx, domain.EntityTypeAgent, "agent-"+uuid.NewString())
	require.NoError(t, err)
	_, err = e.ledger.Credit(ctx, ledger.CreditInput{AccountID: account.ID, AmountMicro: amountMicro, Origin: domain.LotOriginDeposit})
	require.NoError(t, err)

	return account.ID
}

// settle finalizes an agent reservation together with its budget record
func (e *budgetEnv) settle(t *testing.T, reservation *ledger.Reservation, costMicro int64) {
	t.Helper()
	ctx := context.Background()

	err := e.store.Transaction(ctx, func(tx store.Store) error {
		result, err := e.ledger.FinalizeInTx(ctx, tx, ledger.FinalizeInput{
			ReservationID:   reservation.ID,
			ActualCostMicro: costMicro,
			FinalizationID:  "fin-" + uuid.NewString(),
		})
		if err != nil {
			return err
		}
		return e.service.RecordFinalizationInTransaction(ctx, tx, reservation.AccountID, reservation.ID, result.FinalizedMicro)
	})
	require.NoError(t, err)
	require.NoError(t, e.service.Invalidate(ctx, reservation.AccountID))
}

func TestService_DailyCap(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	agent := env.fundedAgent(t, 10_000_000)
	require.NoError(t, env.service.SetAgentBudget(ctx, agent, 2_000_000, 1_000_000))

	first, err := env.service.ReserveForInference(ctx, agent, 1_500_000, 0)
	require.NoError(t, err)
	assert.True(t, first.IsAgent)

	// The open hold already counts toward today's spend
	_, err = env.service.ReserveForInference(ctx, agent, 1_000_000, 0)
	assert.ErrorIs(t, err, domain.ErrDailyCapExceeded)

	env.settle(t, first, 1_500_000)

	_, err = env.service.ReserveForInference(ctx, agent, 1_500_000, 0)
	var capErr *domain.DailyCapExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, int64(1_500_000), capErr.SpentMicro)
	assert.Equal(t, int64(2_000_000), capErr.CapMicro)

	check, err := env.service.CheckBudget(ctx, agent, 500_000)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, int64(500_000), check.RemainingMicro)

	// A new UTC day starts from zero
	env.clock.advance(24 * time.Hour)
	next, err := env.service.ReserveForInference(ctx, agent, 1_500_000, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStateActive, next.State)
}

func TestService_CanceledHoldFreesBudget(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	agent := env.fundedAgent(t, 10_000_000)
	require.NoError(t, env.service.SetAgentBudget(ctx, agent, 2_000_000, 0))

	hold, err := env.service.ReserveForInference(ctx, agent, 2_000_000, 0)
	require.NoError(t, err)

	_, err = env.ledger.Cancel(ctx, hold.ID)
	require.NoError(t, err)
	require.NoError(t, env.service.Invalidate(ctx, agent))

	_, err = env.service.ReserveForInference(ctx, agent, 2_000_000, 0)
	require.NoError(t, err)
}

func TestService_DefaultsFromBillingConfig(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	agent := env.fundedAgent(t, 20_000_000)

	// Seeded default cap is 10 units
	check, err := env.service.CheckBudget(ctx, agent, 10_000_001)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, int64(10_000_000), check.CapMicro)

	require.NoError(t, env.store.UpsertBillingConfig(ctx, &schema.BillingConfig{
		Key:       billingconfig.KeyAgentDailyCapMicro,
		Value:     "20000000",
		UpdatedAt: env.clock.now,
	}))
	check, err = env.service.CheckBudget(ctx, agent, 10_000_001)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
}

func TestService_StatusAndRefill(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	agent := env.fundedAgent(t, 3_000_000)
	require.NoError(t, env.service.SetAgentBudget(ctx, agent, 5_000_000, 2_000_000))

	needs, err := env.service.NeedsRefill(ctx, agent)
	require.NoError(t, err)
	assert.False(t, needs)

	hold, err := env.service.ReserveForInference(ctx, agent, 1_500_000, 0)
	require.NoError(t, err)
	env.settle(t, hold, 1_200_000)

	// Advisory only: spending below the threshold is still allowed
	needs, err = env.service.NeedsRefill(ctx, agent)
	require.NoError(t, err)
	assert.True(t, needs)

	status, err := env.service.GetBudgetStatus(ctx, agent)
	require.NoError(t, err)
	assert.Equal(t, domain.UTCDay(env.clock.now), status.Date)
	assert.Equal(t, int64(5_000_000), status.CapMicro)
	assert.Equal(t, int64(1_200_000), status.SpentMicro)
	assert.Equal(t, int64(3_800_000), status.RemainingMicro)
	assert.Equal(t, int64(1_800_000), status.AvailableMicro)
	assert.True(t, status.NeedsRefill)
	assert.Equal(t, budget.ModeMemory, status.CacheMode)
	assert.Equal(t, int64(5_000_000), status.EffectiveCeilingMicro)
}

func TestService_SetAgentBudget(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	user, err := env.ledger.EnsureAccount(ctx, domain.EntityTypeUser, "user-"+uuid.NewString())
	require.NoError(t, err)

	err = env.service.SetAgentBudget(ctx, user.ID, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidEntityType)

	err = env.service.SetAgentBudget(ctx, uuid.NewString(), 1, 0)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = env.service.SetAgentBudget(ctx, env.fundedAgent(t, 1), -1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestService_SpendCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	key := "budget:spend:acc-1:2024-01-15"

	setup := func(t *testing.T) (*mocks.MockStore, *mocks.MockBudgetCache, budget.Service) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		cache := mocks.NewMockBudgetCache(ctrl)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()
		config := mocks.NewMockBillingConfigReader(ctrl)
		config.EXPECT().GetInt64(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, def int64) (int64, error) { return def, nil }).
			AnyTimes()
		st.EXPECT().GetAgentBudget(gomock.Any(), "acc-1").Return(nil, nil).AnyTimes()

		svc := budget.NewService(st, mocks.NewMockLedger(ctrl), cache, config, clock, budget.Config{DefaultDailyCapMicro: 2_000_000})
		return st, cache, svc
	}

	t.Run("cache hit skips the spend sum", func(t *testing.T) {
		st, cache, svc := setup(t)
		cache.EXPECT().Get(gomock.Any(), key).Return(int64(1_900_000), true, nil)
		st.EXPECT().SumAgentActiveReservations(gomock.Any(), "acc-1", gomock.Any(), gomock.Any(), now).Return(int64(0), nil)

		check, err := svc.CheckBudget(ctx, "acc-1", 200_000)
		require.NoError(t, err)
		assert.False(t, check.Allowed)
		assert.Equal(t, int64(100_000), check.RemainingMicro)
	})

	t.Run("cache miss stores finalized spend until midnight", func(t *testing.T) {
		st, cache, svc := setup(t)
		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

		cache.EXPECT().Get(gomock.Any(), key).Return(int64(0), false, nil)
		st.EXPECT().SumAgentSpend(gomock.Any(), "acc-1", day).Return(int64(500_000), nil)
		st.EXPECT().SumAgentActiveReservations(gomock.Any(), "acc-1", day, day.Add(24*time.Hour), now).Return(int64(300_000), nil)
		cache.EXPECT().SetWithTTL(gomock.Any(), key, int64(500_000), 6*time.Hour).Return(nil)

		check, err := svc.CheckBudget(ctx, "acc-1", 1_200_000)
		require.NoError(t, err)
		assert.True(t, check.Allowed)
		assert.Equal(t, int64(800_000), check.SpentMicro)
	})

	t.Run("cache errors fall through to the database", func(t *testing.T) {
		st, cache, svc := setup(t)

		cache.EXPECT().Get(gomock.Any(), key).Return(int64(0), false, errors.New("boom"))
		st.EXPECT().SumAgentSpend(gomock.Any(), "acc-1", gomock.Any()).Return(int64(0), nil)
		st.EXPECT().SumAgentActiveReservations(gomock.Any(), "acc-1", gomock.Any(), gomock.Any(), now).Return(int64(0), nil)
		cache.EXPECT().SetWithTTL(gomock.Any(), key, int64(0), gomock.Any()).Return(errors.New("boom"))

		check, err := svc.CheckBudget(ctx, "acc-1", 2_000_000)
		require.NoError(t, err)
		assert.True(t, check.Allowed)
	})

	t.Run("degraded cache reports the multiplied ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		cache := mocks.NewMockBudgetCache(ctrl)
		l := mocks.NewMockLedger(ctrl)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		st.EXPECT().GetAgentBudget(gomock.Any(), "acc-1").
			Return(&schema.AgentBudget{AccountID: "acc-1", DailyCapMicro: 1_000_000}, nil)
		cache.EXPECT().Get(gomock.Any(), key).Return(int64(0), true, nil)
		st.EXPECT().SumAgentActiveReservations(gomock.Any(), "acc-1", gomock.Any(), gomock.Any(), now).Return(int64(0), nil)
		cache.EXPECT().Mode().Return(budget.ModeMemoryFallback)
		l.EXPECT().GetBalance(gomock.Any(), "acc-1").Return(&ledger.Balance{AccountID: "acc-1", AvailableMicro: 5_000_000}, nil)

		svc := budget.NewService(st, l, cache, mocks.NewMockBillingConfigReader(ctrl), clock, budget.Config{InstanceCount: 3})
		status, err := svc.GetBudgetStatus(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, budget.ModeMemoryFallback, status.CacheMode)
		assert.Equal(t, int64(3_000_000), status.EffectiveCeilingMicro)
	})
}

func TestService_LapsedHoldLeavesCachedSpend(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := newTestClock(ctrl, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	expiresAt := time.Date(2024, 1, 15, 10, 5, 0, 0, time.UTC)

	st.EXPECT().GetAgentBudget(gomock.Any(), "acc-1").
		Return(&schema.AgentBudget{AccountID: "acc-1", DailyCapMicro: 2_000_000}, nil).AnyTimes()
	// Finalized spend is read once, then served from the cache
	st.EXPECT().SumAgentSpend(gomock.Any(), "acc-1", gomock.Any()).Return(int64(0), nil).Times(1)
	st.EXPECT().SumAgentActiveReservations(gomock.Any(), "acc-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _, now time.Time) (int64, error) {
			if now.Before(expiresAt) {
				return 1_500_000, nil
			}
			return 0, nil
		}).AnyTimes()

	svc := budget.NewService(st, mocks.NewMockLedger(ctrl), budget.NewMemoryCache(clock), mocks.NewMockBillingConfigReader(ctrl), clock, budget.Config{})

	check, err := svc.CheckBudget(ctx, "acc-1", 1_000_000)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, int64(1_500_000), check.SpentMicro)

	clock.advance(5 * time.Hour)
	check, err = svc.CheckBudget(ctx, "acc-1", 1_000_000)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, int64(0), check.SpentMicro)
}

func TestService_ExpiredHoldFreesBudget(t *testing.T) {
	env := setupBudget(t)
	ctx := context.Background()

	agent := env.fundedAgent(t, 10_000_000)
	require.NoError(t, env.service.SetAgentBudget(ctx, agent, 2_000_000, 0))

	_, err := env.service.ReserveForInference(ctx, agent, 1_500_000, 5*time.Minute)
	require.NoError(t, err)

	_, err = env.service.ReserveForInference(ctx, agent, 1_000_000, 5*time.Minute)
	assert.ErrorIs(t, err, domain.ErrDailyCapExceeded)

	// Nothing finalizes or cancels the hold; it lapses on its own
	env.clock.advance(10 * time.Minute)
	_, err = env.service.ReserveForInference(ctx, agent, 1_000_000, 5*time.Minute)
	require.NoError(t, err)
}
