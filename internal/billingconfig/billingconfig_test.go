package billingconfig_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

func TestService_GetInt64(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		stored      *schema.BillingConfig
		storeErr    error
		expected    int64
		expectError bool
	}{
		{
			name:     "missing key returns default",
			expected: 42,
		},
		{
			name:     "stored integer",
			stored:   &schema.BillingConfig{Key: billingconfig.KeyCommonsBps, Value: "2500"},
			expected: 2500,
		},
		{
			name:        "non-integer value",
			stored:      &schema.BillingConfig{Key: billingconfig.KeyCommonsBps, Value: "25%"},
			expectError: true,
		},
		{
			name:        "store error",
			storeErr:    errors.New("connection reset"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mocks.NewMockStore(ctrl)
			st.EXPECT().GetBillingConfig(ctx, billingconfig.KeyCommonsBps).Return(tt.stored, tt.storeErr)

			svc := billingconfig.NewService(st, mocks.NewMockClock(ctrl))
			value, err := svc.GetInt64(ctx, billingconfig.KeyCommonsBps, 42)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestService_Set(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("stores value with timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(now)

		description := "foundation share"
		st.EXPECT().UpsertBillingConfig(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *schema.BillingConfig) error {
				assert.Equal(t, billingconfig.KeyFoundationBps, cfg.Key)
				assert.Equal(t, "1000", cfg.Value)
				assert.Equal(t, &description, cfg.Description)
				assert.Equal(t, now, cfg.UpdatedAt)
				return nil
			})

		svc := billingconfig.NewService(st, clock)
		require.NoError(t, svc.Set(ctx, billingconfig.KeyFoundationBps, "1000", &description))
	})

	t.Run("rejects out of range basis points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := billingconfig.NewService(mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl))

		err := svc.Set(ctx, billingconfig.KeyCommunityPoolBps, "10001", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects negative caps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := billingconfig.NewService(mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl))

		err := svc.Set(ctx, billingconfig.KeyAgentDailyCapMicro, "-1", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("accepts free-form values for unknown keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(now)
		st.EXPECT().UpsertBillingConfig(ctx, gomock.Any()).Return(nil)

		svc := billingconfig.NewService(st, clock)
		require.NoError(t, svc.Set(ctx, "billing.mode", "shadow", nil))
	})
}

func TestGetRevenueSplit(t *testing.T) {
	ctx := context.Background()

	t.Run("reads all shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := mocks.NewMockBillingConfigReader(ctrl)
		reader.EXPECT().GetInt64(ctx, billingconfig.KeyFoundationBps, int64(0)).Return(int64(1000), nil)
		reader.EXPECT().GetInt64(ctx, billingconfig.KeyCommonsBps, int64(0)).Return(int64(500), nil)
		reader.EXPECT().GetInt64(ctx, billingconfig.KeyCommunityPoolBps, int64(0)).Return(int64(2500), nil)

		split, err := billingconfig.GetRevenueSplit(ctx, reader)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), split.Total())
		assert.Equal(t, int64(2500), split.CommunityPoolBps)
	})

	t.Run("rejects a split above 100%", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := mocks.NewMockBillingConfigReader(ctrl)
		reader.EXPECT().GetInt64(ctx, gomock.Any(), int64(0)).Return(int64(5000), nil).Times(3)

		_, err := billingconfig.GetRevenueSplit(ctx, reader)
		assert.Error(t, err)
	})
}
