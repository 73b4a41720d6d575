package httpserver

import (
	"errors"
	"io"
	"log"
	"net/http"

	"tireshop/internal/payments"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps the raw payload read for signature verification.
const maxWebhookBody = 1 << 20

// webhookHandler receives processor-signed events and hands them to the
// reconciler. Every branch acknowledges receipt except a bad signature (400)
// and a failed database write (500, the processor redelivers).
func webhookHandler(logger *log.Logger, verifier WebhookVerifier, svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}

		evt, err := verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			if errors.Is(err, payments.ErrNotConfigured) {
				logger.Printf("webhook: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "server configuration error"})
				return
			}
			logger.Printf("webhook signature verification failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		if err := svc.HandleEvent(c.Request.Context(), evt); err != nil {
			if errors.Is(err, payments.ErrMalformedEvent) {
				logger.Printf("webhook event %s malformed: %v", evt.ID, err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
				return
			}
			logger.Printf("webhook event %s: %v", evt.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
