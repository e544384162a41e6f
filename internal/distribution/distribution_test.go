package distribution_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/distribution"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/testutil/pgtest"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pgtest.Main(m, &testDB)
}

type distributionEnv struct {
	store       store.Store
	ledger      ledger.Ledger
	config      *billingconfig.Service
	distributor distribution.Distributor
}

func setupDistribution(t *testing.T, foundationBps, commonsBps, poolBps string) *distributionEnv {
	t.Helper()
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()

	st := store.NewPGStore(pgtest.BeginTx(t, testDB))
	l := ledger.NewLedger(st, mocks.NewMockAlertEmitter(ctrl), clock, ledger.Config{})
	config := billingconfig.NewService(st, clock)

	require.NoError(t, config.Set(ctx, billingconfig.KeyFoundationBps, foundationBps, nil))
	require.NoError(t, config.Set(ctx, billingconfig.KeyCommonsBps, commonsBps, nil))
	require.NoError(t, config.Set(ctx, billingconfig.KeyCommunityPoolBps, poolBps, nil))

	return &distributionEnv{
		store:       st,
		ledger:      l,
		config:      config,
		distributor: distribution.NewDistributor(st, l, config, clock),
	}
}

func (e *distributionEnv) balanceOf(t *testing.T, entityType domain.EntityType, entityID string) int64 {
	t.Helper()
	ctx := context.Background()

	account, err := e.store.GetAccountByEntity(ctx, entityType, entityID)
	require.NoError(t, err)
	if account == nil {
		return 0
	}
	balance, err := e.ledger.GetBalance(ctx, account.ID)
	require.NoError(t, err)
	return balance.TotalMicro
}

func TestDistributor_Distribute(t *testing.T) {
	ctx := context.Background()

	t.Run("credits each system account its share", func(t *testing.T) {
		env := setupDistribution(t, "500", "250", "1000")
		community := "community-" + uuid.NewString()
		before := env.balanceOf(t, domain.EntityTypeFoundation, domain.SYSTEM_ENTITY_ID)

		result, err := env.distributor.Distribute(ctx, distribution.Request{
			FinalizationID: "fin-" + uuid.NewString(),
			AccountID:      uuid.NewString(),
			CommunityID:    &community,
			AmountMicro:    1_000_000,
		})
		require.NoError(t, err)
		require.Len(t, result.Shares, 3)

		assert.Equal(t, before+50_000, env.balanceOf(t, domain.EntityTypeFoundation, domain.SYSTEM_ENTITY_ID))
		assert.Equal(t, int64(100_000), env.balanceOf(t, domain.EntityTypeCommunityPool, community))
		for _, share := range result.Shares {
			assert.False(t, share.Replayed)
			assert.NotEmpty(t, share.LotID)
		}
	})

	t.Run("replay mints nothing new", func(t *testing.T) {
		env := setupDistribution(t, "500", "0", "0")
		req := distribution.Request{FinalizationID: "fin-" + uuid.NewString(), AmountMicro: 2_000_000}
		before := env.balanceOf(t, domain.EntityTypeFoundation, domain.SYSTEM_ENTITY_ID)

		first, err := env.distributor.Distribute(ctx, req)
		require.NoError(t, err)
		second, err := env.distributor.Distribute(ctx, req)
		require.NoError(t, err)

		require.Len(t, second.Shares, 1)
		assert.True(t, second.Shares[0].Replayed)
		assert.Equal(t, first.Shares[0].LotID, second.Shares[0].LotID)
		assert.Equal(t, before+100_000, env.balanceOf(t, domain.EntityTypeFoundation, domain.SYSTEM_ENTITY_ID))
	})

	t.Run("shares round down and zero shares are skipped", func(t *testing.T) {
		env := setupDistribution(t, "500", "0", "0")

		result, err := env.distributor.Distribute(ctx, distribution.Request{FinalizationID: "fin-" + uuid.NewString(), AmountMicro: 333})
		require.NoError(t, err)
		require.Len(t, result.Shares, 1)
		assert.Equal(t, int64(16), result.Shares[0].AmountMicro)

		result, err = env.distributor.Distribute(ctx, distribution.Request{FinalizationID: "fin-" + uuid.NewString(), AmountMicro: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Shares)
	})

	t.Run("split above one hundred percent is rejected", func(t *testing.T) {
		env := setupDistribution(t, "6000", "3000", "2000")

		_, err := env.distributor.Distribute(ctx, distribution.Request{FinalizationID: "fin-" + uuid.NewString(), AmountMicro: 1_000})
		assert.Error(t, err)
	})

	t.Run("finalization id is required", func(t *testing.T) {
		env := setupDistribution(t, "0", "0", "0")

		_, err := env.distributor.Distribute(ctx, distribution.Request{AmountMicro: 1_000})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
