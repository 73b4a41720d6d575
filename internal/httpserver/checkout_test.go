package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tireshop/internal/payments"
	checkoutsvc "tireshop/internal/service/checkout"
	"tireshop/internal/validation"

	"github.com/gin-gonic/gin"
)

type stubCheckoutService struct {
	createCalls  int
	clientSecret string
	createErr    error
	lastAmount   float64
	lastCurrency string
	lastUserID   string

	handleCalls int
	handleErr   error
	lastEvent   payments.Event

	statusResult checkoutsvc.StatusResult
	statusErr    error
}

func (s *stubCheckoutService) CreateIntent(_ context.Context, amount float64, currency, userID string) (string, error) {
	s.createCalls++
	s.lastAmount = amount
	s.lastCurrency = currency
	s.lastUserID = userID
	return s.clientSecret, s.createErr
}

func (s *stubCheckoutService) HandleEvent(_ context.Context, evt payments.Event) error {
	s.handleCalls++
	s.lastEvent = evt
	return s.handleErr
}

func (s *stubCheckoutService) Status(_ context.Context, _ string) (checkoutsvc.StatusResult, error) {
	return s.statusResult, s.statusErr
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func paymentIntentRouter(svc CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout/payment-intent", createPaymentIntentHandler(discardLogger(), svc, validation.New()))
	router.GET("/checkout/status/:intentID", checkoutStatusHandler(discardLogger(), svc))
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePaymentIntentHappyPath(t *testing.T) {
	svc := &stubCheckoutService{clientSecret: "pi_1_secret_x"}
	router := paymentIntentRouter(svc)

	rec := postJSON(router, "/checkout/payment-intent", `{"amount": 1500.50, "currency": "rub", "userId": "u1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "pi_1_secret_x") {
		t.Fatalf("client secret missing from body %s", rec.Body.String())
	}
	if svc.lastAmount != 1500.50 || svc.lastCurrency != "rub" || svc.lastUserID != "u1" {
		t.Fatalf("unexpected service call %+v", svc)
	}
}

func TestCreatePaymentIntentRejectsInvalidBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"currency": "rub", "userId": "u1"}`},
		{"zero amount", `{"amount": 0, "currency": "rub", "userId": "u1"}`},
		{"negative amount", `{"amount": -5, "currency": "rub", "userId": "u1"}`},
		{"non-numeric amount", `{"amount": "abc", "currency": "rub", "userId": "u1"}`},
		{"missing currency", `{"amount": 100, "userId": "u1"}`},
		{"missing user", `{"amount": 100, "currency": "rub"}`},
		{"not json", `amount=100`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubCheckoutService{}
			router := paymentIntentRouter(svc)

			rec := postJSON(router, "/checkout/payment-intent", tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if svc.createCalls != 0 {
				t.Fatalf("service called %d times for invalid input", svc.createCalls)
			}
		})
	}
}

func TestCreatePaymentIntentProcessorFailure(t *testing.T) {
	svc := &stubCheckoutService{createErr: errors.New("processor unavailable")}
	router := paymentIntentRouter(svc)

	rec := postJSON(router, "/checkout/payment-intent", `{"amount": 100, "currency": "rub", "userId": "u1"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unable to create payment intent") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCreatePaymentIntentUnconfigured(t *testing.T) {
	svc := &stubCheckoutService{createErr: payments.ErrNotConfigured}
	router := paymentIntentRouter(svc)

	rec := postJSON(router, "/checkout/payment-intent", `{"amount": 100, "currency": "rub", "userId": "u1"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "server configuration error") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCheckoutStatus(t *testing.T) {
	svc := &stubCheckoutService{statusResult: checkoutsvc.StatusResult{Status: "succeeded", Message: "Payment completed successfully."}}
	router := paymentIntentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/checkout/status/pi_123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "succeeded") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
