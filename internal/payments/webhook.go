package payments

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82/webhook"
)

// Event kinds this system reacts to. Anything else is acknowledged and ignored.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

var (
	// ErrBadSignature indicates the event envelope failed signature
	// verification and must be rejected without any state change.
	ErrBadSignature = errors.New("invalid webhook signature")

	// ErrMalformedEvent indicates a verified event whose payload is missing
	// required fields.
	ErrMalformedEvent = errors.New("malformed event payload")
)

// Event is a verified webhook notification.
type Event struct {
	ID   string
	Type string
	Data json.RawMessage
}

// IntentPayload is the payment-intent object carried inside a webhook event,
// decoded at the boundary instead of read field-by-field from untyped JSON.
type IntentPayload struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`

	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

// DecodeIntent parses an event payload into a typed intent. Events without an
// intent id or a positive amount are rejected as malformed.
func DecodeIntent(raw json.RawMessage) (*IntentPayload, error) {
	var p IntentPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: missing intent id", ErrMalformedEvent)
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("%w: non-positive amount", ErrMalformedEvent)
	}
	return &p, nil
}

// WebhookVerifier checks processor signatures on raw webhook payloads.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Verify checks the Stripe-Signature header against the raw body and returns
// the contained event. Signature verification is the only defense against
// forged events.
func (v *WebhookVerifier) Verify(payload []byte, sigHeader string) (Event, error) {
	if v.secret == "" {
		return Event{}, ErrNotConfigured
	}

	// The processor pins events to the account's API version, which may
	// differ from the SDK's; signature validity is what matters here.
	evt, err := webhook.ConstructEventWithOptions(payload, sigHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	out := Event{
		ID:   evt.ID,
		Type: string(evt.Type),
	}
	if evt.Data != nil {
		out.Data = evt.Data.Raw
	}
	return out, nil
}
