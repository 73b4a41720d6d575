package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tireshop/internal/domain"
	"tireshop/internal/payments"
	orderrepo "tireshop/internal/repository/order"
)

// ErrInvalidInput marks validation failures the caller should surface as a
// 400. Anything else from this service is a server-side failure.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	gateway gateway
	orders  ordersRepo
	logger  *log.Logger
}

type gateway interface {
	CreateIntent(ctx context.Context, in payments.IntentInput) (*payments.Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*payments.Intent, error)
}

type ordersRepo interface {
	CompleteCheckout(ctx context.Context, in orderrepo.CompleteCheckoutInput) (*domain.Order, error)
}

func New(gw gateway, orders ordersRepo, logger *log.Logger) *Service {
	return &Service{gateway: gw, orders: orders, logger: logger}
}

// CreateIntent validates checkout input and asks the processor for a payment
// intent. The database is never touched here; the order is written only when
// the processor confirms payment through the webhook.
func (s *Service) CreateIntent(ctx context.Context, amount float64, currency, userID string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(currency) == "" {
		return "", fmt.Errorf("%w: currency required", ErrInvalidInput)
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: user id required", ErrInvalidInput)
	}

	intent, err := s.gateway.CreateIntent(ctx, payments.IntentInput{
		Amount:   amount,
		Currency: currency,
		UserID:   userID,
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// HandleEvent reconciles a verified processor event with order state.
//
// On payment_intent.succeeded the order record is written and the user's cart
// cleared atomically. A storage error propagates so the receiver answers 500
// and the processor redelivers the event; no retry happens here. All other
// outcomes (failed payments, unknown event types, succeeded events without a
// user id) are logged and acknowledged.
func (s *Service) HandleEvent(ctx context.Context, evt payments.Event) error {
	switch evt.Type {
	case payments.EventPaymentSucceeded:
		intent, err := payments.DecodeIntent(evt.Data)
		if err != nil {
			return err
		}

		userID := intent.Metadata["userId"]
		if userID == "" {
			s.logger.Printf("succeeded intent %s carries no userId metadata, skipping order write", intent.ID)
			return nil
		}

		order, err := s.orders.CompleteCheckout(ctx, orderrepo.CompleteCheckoutInput{
			PaymentIntentID: intent.ID,
			UserID:          userID,
			AmountCents:     intent.Amount,
			Currency:        intent.Currency,
		})
		if err != nil {
			return fmt.Errorf("complete checkout %s for user %s: %w", intent.ID, userID, err)
		}
		s.logger.Printf("order %s completed for user %s (%.2f %s), cart cleared",
			order.PaymentIntentID, userID, order.Amount, order.Currency)

	case payments.EventPaymentFailed:
		intent, err := payments.DecodeIntent(evt.Data)
		if err != nil {
			s.logger.Printf("payment failed event %s undecodable: %v", evt.ID, err)
			return nil
		}
		reason := ""
		if intent.LastPaymentError != nil {
			reason = intent.LastPaymentError.Message
		}
		s.logger.Printf("payment intent %s failed for %d %s: %s", intent.ID, intent.Amount, intent.Currency, reason)

	default:
		s.logger.Printf("unhandled event type %s", evt.Type)
	}

	return nil
}

// StatusResult is the user-facing reading of an intent's processor state.
// Advisory only; the authoritative order write happens in HandleEvent.
type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Status re-derives an intent's state by querying the processor, the same
// check the storefront performs after an out-of-band verification redirect.
func (s *Service) Status(ctx context.Context, intentID string) (StatusResult, error) {
	if strings.TrimSpace(intentID) == "" {
		return StatusResult{}, fmt.Errorf("%w: intent id required", ErrInvalidInput)
	}

	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return StatusResult{}, err
	}

	switch intent.Status {
	case "succeeded":
		return StatusResult{Status: "succeeded", Message: "Payment completed successfully."}, nil
	case "processing":
		return StatusResult{Status: "processing", Message: "Payment is processing."}, nil
	case "requires_payment_method":
		return StatusResult{Status: "requires_payment_method", Message: "Payment failed, please try another payment method."}, nil
	case "requires_action":
		return StatusResult{Status: "requires_action", Message: "Additional verification is required."}, nil
	default:
		return StatusResult{Status: intent.Status, Message: "Something went wrong."}, nil
	}
}
