package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func succeededEnvelope(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"id":   "evt_1",
		"type": "payment_intent.succeeded",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":       "pi_123",
				"amount":   150050,
				"currency": "rub",
				"status":   "succeeded",
				"metadata": map[string]string{"userId": "u1"},
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
}

func TestVerifyAcceptsSignedPayload(t *testing.T) {
	payload := succeededEnvelope(t)
	v := NewWebhookVerifier(testWebhookSecret)

	evt, err := v.Verify(payload, signPayload(t, payload, testWebhookSecret, time.Now()))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if evt.ID != "evt_1" || evt.Type != EventPaymentSucceeded {
		t.Fatalf("unexpected event %+v", evt)
	}

	intent, err := DecodeIntent(evt.Data)
	if err != nil {
		t.Fatalf("DecodeIntent: %v", err)
	}
	if intent.ID != "pi_123" || intent.Amount != 150050 || intent.Metadata["userId"] != "u1" {
		t.Fatalf("unexpected intent %+v", intent)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	payload := succeededEnvelope(t)
	v := NewWebhookVerifier(testWebhookSecret)

	_, err := v.Verify(payload, signPayload(t, payload, "whsec_other", time.Now()))
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	payload := succeededEnvelope(t)
	sig := signPayload(t, payload, testWebhookSecret, time.Now())

	tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","amount":999999}}}`)
	v := NewWebhookVerifier(testWebhookSecret)
	if _, err := v.Verify(tampered, sig); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	payload := succeededEnvelope(t)
	v := NewWebhookVerifier(testWebhookSecret)

	sig := signPayload(t, payload, testWebhookSecret, time.Now().Add(-time.Hour))
	if _, err := v.Verify(payload, sig); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyUnconfiguredSecret(t *testing.T) {
	v := NewWebhookVerifier("")
	if _, err := v.Verify([]byte(`{}`), "t=1,v1=abc"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDecodeIntentMissingID(t *testing.T) {
	_, err := DecodeIntent([]byte(`{"amount": 100, "currency": "rub"}`))
	if !errors.Is(err, ErrMalformedEvent) {
		t.Fatalf("expected ErrMalformedEvent, got %v", err)
	}
}

func TestDecodeIntentNonPositiveAmount(t *testing.T) {
	_, err := DecodeIntent([]byte(`{"id": "pi_1", "amount": 0, "currency": "rub"}`))
	if !errors.Is(err, ErrMalformedEvent) {
		t.Fatalf("expected ErrMalformedEvent, got %v", err)
	}
}

func TestDecodeIntentInvalidJSON(t *testing.T) {
	_, err := DecodeIntent([]byte(`{`))
	if !errors.Is(err, ErrMalformedEvent) {
		t.Fatalf("expected ErrMalformedEvent, got %v", err)
	}
}
