package controllers

import (
	"net/http"

	"checkout-service/models"

	"github.com/gin-gonic/gin"
)

// CheckoutController serves the storefront page and the plan catalog. It only
// ever sees the public gateway key id; the secret stays in the gateway client.
type CheckoutController struct {
	KeyID string
	Plans []models.Plan
}

func NewCheckoutController(keyID string) *CheckoutController {
	return &CheckoutController{
		KeyID: keyID,
		Plans: models.PricingPlans,
	}
}

// Storefront renders the pricing page with the hosted checkout wiring.
func (cc *CheckoutController) Storefront(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Plans": cc.Plans,
		"KeyID": cc.KeyID,
	})
}

// ListPlans returns the plan catalog as JSON.
func (cc *CheckoutController) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Plans)
}
