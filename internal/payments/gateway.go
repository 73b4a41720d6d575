package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// ErrNotConfigured is returned when the processor secret key is absent. The
// request fails, the process does not.
var ErrNotConfigured = errors.New("payment processor not configured")

// Intent is the processor-owned payment intent, reduced to the fields this
// system reads. Its authoritative state lives in the processor.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountMinor  int64
	Currency     string
}

// IntentInput describes a new payment intent. Amount is in currency-major
// units, the way the storefront reports cart totals.
type IntentInput struct {
	Amount   float64
	Currency string
	UserID   string
}

// Gateway wraps the Stripe API client. The client is initialized lazily on
// first use and reused for the process lifetime.
type Gateway struct {
	secretKey string

	once sync.Once
	api  *client.API
}

func NewGateway(secretKey string) *Gateway {
	return &Gateway{secretKey: secretKey}
}

func (g *Gateway) clientAPI() (*client.API, error) {
	if g.secretKey == "" {
		return nil, ErrNotConfigured
	}
	g.once.Do(func() {
		g.api = client.New(g.secretKey, nil)
	})
	return g.api, nil
}

// MinorUnits converts a currency-major amount to the processor's minor units.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent creates a payment intent for the given amount and attaches the
// user id as opaque metadata. No idempotency key is sent: repeated calls for
// the same logical checkout create distinct intents.
func (g *Gateway) CreateIntent(ctx context.Context, in IntentInput) (*Intent, error) {
	api, err := g.clientAPI()
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(MinorUnits(in.Amount)),
		Currency:    stripe.String(strings.ToLower(in.Currency)),
		Description: stripe.String(fmt.Sprintf("Purchase for user %s", in.UserID)),
	}
	params.Context = ctx
	params.AddMetadata("userId", in.UserID)

	pi, err := api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// RetrieveIntent fetches the current state of an intent from the processor.
func (g *Gateway) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	api, err := g.clientAPI()
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent %s: %w", id, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
