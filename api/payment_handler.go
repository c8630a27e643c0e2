package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	pay "github.com/courtside/training-booking-backend/payment"
)

type PaymentService interface {
	HandleCheckoutCompleted(ctx context.Context, payload []byte, signatureHeader string) (pay.AckResult, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/webhook", h.HandleWebhook)
}

// HandleWebhook receives the gateway's signed notification. A 500 tells the
// gateway to retry; anything acknowledged with 200 (including idempotent
// no-ops and intentional skips) will not be redelivered.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := h.service.HandleCheckoutCompleted(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))

	if err != nil {
		c.Error(err)

		if errors.Is(err, pay.ErrInvalidSignature) || errors.Is(err, pay.ErrMalformedPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook request"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process notification"})
		return
	}

	c.JSON(http.StatusOK, result)
}
