package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/dto"
	apierrors "github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/errors"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/executor"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

func newTestExecutor(t *testing.T) (executor.Executor, *mocks.MockLedger, *mocks.MockDLQService) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctrl)
	q := mocks.NewMockDLQService(ctrl)
	return executor.NewExecutor(l, nil, nil, q, nil), l, q
}

func TestExecutor_Credit(t *testing.T) {
	ctx := context.Background()
	sourceRef := "pay-1"
	expiresAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("credits the account", func(t *testing.T) {
		exec, l, _ := newTestExecutor(t)
		l.EXPECT().
			Credit(gomock.Any(), ledger.CreditInput{
				AccountID:   "acc-1",
				AmountMicro: 5_000_000,
				Origin:      domain.LotOriginDeposit,
				SourceRef:   &sourceRef,
			}).
			Return(&ledger.CreditResult{LotID: "lot-1"}, nil)

		resp, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{AmountMicro: 5_000_000, Origin: domain.LotOriginDeposit, SourceRef: &sourceRef})
		require.NoError(t, err)
		assert.Equal(t, "lot-1", resp.LotID)
		assert.False(t, resp.Queued)
	})

	t.Run("transient deposit failure is queued", func(t *testing.T) {
		exec, l, q := newTestExecutor(t)
		cause := errors.New("connection reset by peer")
		l.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, cause)
		q.EXPECT().
			Enqueue(gomock.Any(), schema.DLQOperationDeposit, dlq.CreditPayload{
				AccountID:   "acc-1",
				AmountMicro: 5_000_000,
				SourceRef:   sourceRef,
				ExpiresAt:   &expiresAt,
			}, cause).
			Return(&schema.BillingDLQEntry{ID: 42}, nil)

		resp, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{
			AmountMicro: 5_000_000,
			Origin:      domain.LotOriginDeposit,
			SourceRef:   &sourceRef,
			ExpiresAt:   &expiresAt,
		})
		require.NoError(t, err)
		assert.True(t, resp.Queued)
		assert.Equal(t, uint64(42), resp.DLQEntryID)
		assert.Empty(t, resp.LotID)
	})

	t.Run("transient refund failure is queued as a refund", func(t *testing.T) {
		exec, l, q := newTestExecutor(t)
		l.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock detected"))
		q.EXPECT().
			Enqueue(gomock.Any(), schema.DLQOperationRefund, gomock.Any(), gomock.Any()).
			Return(&schema.BillingDLQEntry{ID: 7}, nil)

		resp, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{AmountMicro: 1_000, Origin: domain.LotOriginRefund, SourceRef: &sourceRef})
		require.NoError(t, err)
		assert.True(t, resp.Queued)
	})

	t.Run("business errors are not queued", func(t *testing.T) {
		exec, l, _ := newTestExecutor(t)
		l.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAccountNotFound)

		_, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{AmountMicro: 1_000, Origin: domain.LotOriginDeposit, SourceRef: &sourceRef})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("credit without source ref is not queued", func(t *testing.T) {
		exec, l, _ := newTestExecutor(t)
		l.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset by peer"))

		_, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{AmountMicro: 1_000, Origin: domain.LotOriginDeposit})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
	})

	t.Run("failed queue surfaces the original error", func(t *testing.T) {
		exec, l, q := newTestExecutor(t)
		l.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset by peer"))
		q.EXPECT().Enqueue(gomock.Any(), schema.DLQOperationDeposit, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database is down"))

		_, err := exec.Credit(ctx, "acc-1", dto.CreditRequest{AmountMicro: 1_000, Origin: domain.LotOriginDeposit, SourceRef: &sourceRef})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
		assert.ErrorContains(t, apiErr.Cause, "connection reset by peer")
	})
}
