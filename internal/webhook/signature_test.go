package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

const testHexSecret = "746573742d7365637265742d6b6579"

func testEvent(eventID string) webhook.WebhookEvent {
	return webhook.WebhookEvent{
		EventID:   eventID,
		EventType: webhook.EventTypeReservationFinalized,
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Data:      json.RawMessage(`{"reservation_id":"c3b5d1f2-6d7e-4f0a-9a43-8f1a2b3c4d5e","finalized_micro":800000}`),
	}
}

func TestGenerateSignedPayload(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 5, 0, time.UTC)

	t.Run("generates valid payload and signature", func(t *testing.T) {
		event := testEvent("01JG8XAMPLE1234567890123456")

		payload, signature, timestamp, err := webhook.GenerateSignedPayload(testHexSecret, event, now)
		require.NoError(t, err)

		// Verify payload is valid JSON
		var parsedEvent webhook.WebhookEvent
		require.NoError(t, json.Unmarshal(payload, &parsedEvent))
		assert.Equal(t, event.EventID, parsedEvent.EventID)
		assert.Equal(t, event.EventType, parsedEvent.EventType)
		assert.JSONEq(t, string(event.Data), string(parsedEvent.Data))

		assert.Equal(t, now.Unix(), timestamp)

		// Verify signature can be validated
		signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, event.EventID, string(payload))
		secretBytes, err := hex.DecodeString(testHexSecret)
		require.NoError(t, err)
		h := hmac.New(sha256.New, secretBytes)
		h.Write([]byte(signaturePayload))
		assert.Equal(t, "sha256="+hex.EncodeToString(h.Sum(nil)), signature)
	})

	t.Run("different events produce different signatures", func(t *testing.T) {
		_, sig1, _, err := webhook.GenerateSignedPayload(testHexSecret, testEvent("01JG8XAMPLE1111111111111111"), now)
		require.NoError(t, err)
		_, sig2, _, err := webhook.GenerateSignedPayload(testHexSecret, testEvent("01JG8XAMPLE2222222222222222"), now)
		require.NoError(t, err)

		assert.NotEqual(t, sig1, sig2)
	})

	t.Run("different secrets produce different signatures", func(t *testing.T) {
		event := testEvent("01JG8XAMPLE1234567890123456")

		_, sig1, _, err := webhook.GenerateSignedPayload(testHexSecret, event, now)
		require.NoError(t, err)
		_, sig2, _, err := webhook.GenerateSignedPayload("6f746865722d736563726574", event, now)
		require.NoError(t, err)

		assert.NotEqual(t, sig1, sig2)
	})

	t.Run("invalid hex secret returns error", func(t *testing.T) {
		_, _, _, err := webhook.GenerateSignedPayload("not-hex", testEvent("01JG8XAMPLE1234567890123456"), now)
		assert.Error(t, err)
	})
}

func TestVerifySignature(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 5, 0, time.UTC)
	event := testEvent("01JG8XAMPLE1234567890123456")

	payload, signature, timestamp, err := webhook.GenerateSignedPayload(testHexSecret, event, now)
	require.NoError(t, err)

	t.Run("accepts a matching signature", func(t *testing.T) {
		ok, err := webhook.VerifySignature(testHexSecret, timestamp, event.EventID, payload, signature)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		tampered := []byte(string(payload) + " ")
		ok, err := webhook.VerifySignature(testHexSecret, timestamp, event.EventID, tampered, signature)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects a replayed timestamp", func(t *testing.T) {
		ok, err := webhook.VerifySignature(testHexSecret, timestamp+60, event.EventID, payload, signature)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
