package httpserver

import (
	"errors"
	"log"
	"net/http"

	"tireshop/internal/payments"
	checkoutsvc "tireshop/internal/service/checkout"
	"tireshop/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type paymentIntentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required"`
	UserID   string  `json:"userId" validate:"required"`
}

// createPaymentIntentHandler asks the processor for a payment intent and
// returns its client secret. The cart and orders are untouched here.
func createPaymentIntentHandler(logger *log.Logger, svc CheckoutService, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentIntentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		clientSecret, err := svc.CreateIntent(c.Request.Context(), req.Amount, req.Currency, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, checkoutsvc.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, payments.ErrNotConfigured):
				logger.Printf("create payment intent: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "server configuration error"})
			default:
				logger.Printf("create payment intent: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create payment intent", "details": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}

// checkoutStatusHandler re-derives intent status from the processor for the
// storefront's post-redirect check.
func checkoutStatusHandler(logger *log.Logger, svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Status(c.Request.Context(), c.Param("intentID"))
		if err != nil {
			switch {
			case errors.Is(err, checkoutsvc.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, payments.ErrNotConfigured):
				logger.Printf("checkout status: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "server configuration error"})
			default:
				logger.Printf("checkout status: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to retrieve payment status"})
			}
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
