package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
	natsjs "github.com/0xHoneyJar/loa-freeside-sub007/internal/providers/jetstream"
)

func testConfig() natsjs.Config {
	return natsjs.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "CREDIT_ALERTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test",
	}
}

func TestNewPublisher(t *testing.T) {
	t.Run("ensures alert stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(conn, js, nil)
		js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
				assert.Equal(t, "CREDIT_ALERTS", cfg.Name)
				assert.Equal(t, []string{"credit.alerts.>"}, cfg.Subjects)
				return nil
			})

		pub, err := natsjs.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		require.NoError(t, err)
		require.NotNil(t, pub)
	})

	t.Run("connect failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

		pub, err := natsjs.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		assert.Error(t, err)
		assert.Nil(t, pub)
	})

	t.Run("stream failure closes connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
		js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
		conn.EXPECT().Close()

		pub, err := natsjs.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		assert.Error(t, err)
		assert.Nil(t, pub)
	})
}

func TestPublisher_PublishAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)

	pub, err := natsjs.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	alert := &domain.Alert{
		ID:        "01JG8XAMPLE1234567890123456",
		Kind:      domain.AlertKindConservationViolation,
		Severity:  domain.AlertSeverityCritical,
		Message:   "conservation guard failed",
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(gomock.Any(), "credit.alerts.conservation_violation", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			assert.Contains(t, string(data), `"kind":"conservation_violation"`)
			return &jetstream.PubAck{Stream: "CREDIT_ALERTS", Sequence: 1}, nil
		})
	require.NoError(t, pub.PublishAlert(context.Background(), alert))

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	assert.Error(t, pub.PublishAlert(context.Background(), alert))

	conn.EXPECT().Close()
	pub.Close()
}
