package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IntentCreator is the slice of the payments client the handler needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent creates a Stripe intent for the body's price and
// returns only the client-side confirmation secret.
func CreatePaymentIntent(gateway IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /create-payment-intent"
		defer handlePanic(c, route)

		var req paymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		secret, err := gateway.CreateIntent(c.Request.Context(), req.Price)
		if err != nil {
			respondWithError(c, http.StatusBadGateway, route, "payment gateway error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}
