package webhook_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

func TestDeliverer_Deliver(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 5, 0, time.UTC)

	t.Run("posts signed payload with headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		clock := mocks.NewMockClock(ctrl)
		deliverer := webhook.NewDeliverer(testHexSecret, httpClient, clock)

		event := testEvent("01JG8XAMPLE1234567890123456")
		clock.EXPECT().Now().Return(now)
		httpClient.EXPECT().
			Post(gomock.Any(), "https://hooks.example.com/ledger", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body []byte) ([]byte, error) {
				assert.Equal(t, "application/json", headers["Content-Type"])
				assert.Equal(t, event.EventID, headers[webhook.HeaderEventID])
				assert.Equal(t, strconv.FormatInt(now.Unix(), 10), headers[webhook.HeaderTimestamp])

				ok, err := webhook.VerifySignature(testHexSecret, now.Unix(), event.EventID, body, headers[webhook.HeaderSignature])
				require.NoError(t, err)
				assert.True(t, ok)
				return nil, nil
			})

		err := deliverer.Deliver(context.Background(), webhook.Delivery{URL: "https://hooks.example.com/ledger", Event: event})
		require.NoError(t, err)
	})

	t.Run("returns transport errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		clock := mocks.NewMockClock(ctrl)
		deliverer := webhook.NewDeliverer(testHexSecret, httpClient, clock)

		clock.EXPECT().Now().Return(now)
		httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		err := deliverer.Deliver(context.Background(), webhook.Delivery{URL: "https://hooks.example.com/ledger", Event: testEvent("01JG8XAMPLE1234567890123456")})
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("rejects delivery without url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deliverer := webhook.NewDeliverer(testHexSecret, mocks.NewMockHTTPClient(ctrl), mocks.NewMockClock(ctrl))

		err := deliverer.Deliver(context.Background(), webhook.Delivery{Event: testEvent("01JG8XAMPLE1234567890123456")})
		assert.Error(t, err)
	})
}
