package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/cli"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

type cliEnv struct {
	ledger    *mocks.MockLedger
	config    *mocks.MockBillingConfigEditor
	dlq       *mocks.MockDLQService
	connected int
}

func newCLIEnv(t *testing.T) *cliEnv {
	ctrl := gomock.NewController(t)
	return &cliEnv{
		ledger: mocks.NewMockLedger(ctrl),
		config: mocks.NewMockBillingConfigEditor(ctrl),
		dlq:    mocks.NewMockDLQService(ctrl),
	}
}

func (e *cliEnv) execute(args ...string) (string, error) {
	root := cli.NewRootCommand(func(ctx context.Context, opts *cli.RootOptions) (*cli.Services, func(), error) {
		e.connected++
		return &cli.Services{Ledger: e.ledger, Config: e.config, DLQ: e.dlq}, func() {}, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedSystemAccounts(t *testing.T) {
	env := newCLIEnv(t)
	env.ledger.EXPECT().
		SeedSystemAccounts(gomock.Any(), []string{"c-1", "c-2"}).
		Return([]schema.CreditAccount{
			{ID: "acc-f", EntityType: domain.EntityTypeFoundation, EntityID: "foundation"},
			{ID: "acc-c", EntityType: domain.EntityTypeCommons, EntityID: "commons"},
		}, nil)

	out, err := env.execute("seed-system-accounts", "c-1", "c-2")
	require.NoError(t, err)
	assert.Contains(t, out, "acc-f")
	assert.Contains(t, out, "foundation")
}

func TestConfigCommands(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		env := newCLIEnv(t)
		env.config.EXPECT().Get(gomock.Any(), "distribution.commons_bps").Return("500", true, nil)

		out, err := env.execute("config", "get", "distribution.commons_bps")
		require.NoError(t, err)
		assert.Equal(t, "500\n", out)
	})

	t.Run("get missing", func(t *testing.T) {
		env := newCLIEnv(t)
		env.config.EXPECT().Get(gomock.Any(), "nope").Return("", false, nil)

		_, err := env.execute("config", "get", "nope")
		assert.Error(t, err)
	})

	t.Run("set with description", func(t *testing.T) {
		env := newCLIEnv(t)
		env.config.EXPECT().
			Set(gomock.Any(), "budget.default_daily_cap_micro", "20000000", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, desc *string) error {
				require.NotNil(t, desc)
				assert.Equal(t, "raised for launch", *desc)
				return nil
			})

		_, err := env.execute("config", "set", "budget.default_daily_cap_micro", "20000000", "--description", "raised for launch")
		require.NoError(t, err)
	})

	t.Run("set without description", func(t *testing.T) {
		env := newCLIEnv(t)
		env.config.EXPECT().
			Set(gomock.Any(), "budget.default_daily_cap_micro", "20000000", (*string)(nil)).
			Return(nil)

		_, err := env.execute("config", "set", "budget.default_daily_cap_micro", "20000000")
		require.NoError(t, err)
	})

	t.Run("list as json", func(t *testing.T) {
		env := newCLIEnv(t)
		env.config.EXPECT().List(gomock.Any()).Return([]schema.BillingConfig{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
		}, nil)

		out, err := env.execute("--format", "json", "config", "list")
		require.NoError(t, err)
		var values []schema.BillingConfig
		require.NoError(t, json.Unmarshal([]byte(out), &values))
		assert.Len(t, values, 2)
	})
}

func TestDLQCommands(t *testing.T) {
	t.Run("list with filter", func(t *testing.T) {
		env := newCLIEnv(t)
		msg := "timeout"
		env.dlq.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f store.DLQEntryFilter) ([]schema.BillingDLQEntry, uint64, error) {
				require.NotNil(t, f.Status)
				assert.Equal(t, schema.DLQStatusManualReview, *f.Status)
				assert.Equal(t, 10, f.Limit)
				return []schema.BillingDLQEntry{{
					ID:            3,
					OperationType: schema.DLQOperationDistribution,
					Status:        schema.DLQStatusManualReview,
					RetryCount:    3,
					MaxRetries:    3,
					ErrorMessage:  &msg,
					NextRetryAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				}}, 1, nil
			})

		out, err := env.execute("dlq", "list", "--status", "manual_review", "--limit", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "distribution")
		assert.Contains(t, out, "3/3")
		assert.Contains(t, out, "1 of 1 entries")
	})

	t.Run("invalid status never connects", func(t *testing.T) {
		env := newCLIEnv(t)
		_, err := env.execute("dlq", "list", "--status", "lost")
		assert.Error(t, err)
		assert.Zero(t, env.connected)
	})

	t.Run("requeue", func(t *testing.T) {
		env := newCLIEnv(t)
		env.dlq.EXPECT().Requeue(gomock.Any(), uint64(3)).Return(&schema.BillingDLQEntry{
			ID:     3,
			Status: schema.DLQStatusPending,
		}, nil)

		out, err := env.execute("dlq", "requeue", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "entry 3 requeued")
	})

	t.Run("requeue missing", func(t *testing.T) {
		env := newCLIEnv(t)
		env.dlq.EXPECT().Requeue(gomock.Any(), uint64(9)).Return(nil, domain.ErrDLQEntryNotFound)

		_, err := env.execute("dlq", "requeue", "9")
		assert.ErrorIs(t, err, domain.ErrDLQEntryNotFound)
	})
}

func TestGuardCheck(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		env := newCLIEnv(t)
		env.ledger.EXPECT().CheckSystem(gomock.Any()).Return(&ledger.GuardReport{Passed: true}, nil)

		out, err := env.execute("guard", "check")
		require.NoError(t, err)
		assert.Contains(t, out, "conservation: ok")
	})

	t.Run("violation fails the command", func(t *testing.T) {
		env := newCLIEnv(t)
		env.ledger.EXPECT().CheckSystem(gomock.Any()).Return(&ledger.GuardReport{
			Passed: false,
			Violations: []ledger.Violation{{
				Invariant: "lot_balance",
				AccountID: "acc-1",
				Message:   "remaining exceeds credited",
			}},
		}, nil)

		out, err := env.execute("guard", "check")
		assert.True(t, errors.Is(err, cli.ErrGuardFailed))
		assert.Contains(t, out, "lot_balance")
		assert.Contains(t, out, "account acc-1")
	})
}

func TestInvalidFormat(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.execute("--format", "yaml", "guard", "check")
	assert.Error(t, err)
	assert.Zero(t, env.connected)
}
