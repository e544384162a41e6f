package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// GenerateSignedPayload generates a signed webhook payload with HMAC-SHA256 signature.
// The secret is hex encoded.
// Returns the JSON payload, signature header value, timestamp, and any error
func GenerateSignedPayload(secret string, event WebhookEvent, now time.Time) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = json.Marshal(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = now.Unix()

	signature, err = sign(secret, timestamp, event.EventID, payload)
	if err != nil {
		return nil, "", 0, err
	}

	return payload, signature, timestamp, nil
}

// VerifySignature checks a signature header value against the payload
func VerifySignature(secret string, timestamp int64, eventID string, payload []byte, signature string) (bool, error) {
	expected, err := sign(secret, timestamp, eventID, payload)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// sign computes "sha256=<hex>" over {timestamp}.{event_id}.{json_body}
func sign(secret string, timestamp int64, eventID string, payload []byte) (string, error) {
	key, err := hex.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to decode webhook secret: %w", err)
	}

	h := hmac.New(sha256.New, key)
	h.Write([]byte(fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(payload))))

	return "sha256=" + hex.EncodeToString(h.Sum(nil)), nil
}
