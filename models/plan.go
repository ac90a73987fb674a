package models

// Plan is a storefront pricing plan. Amount is in whole rupees; the checkout
// page converts to paise before creating an order.
type Plan struct {
	Title       string   `json:"title"`
	Amount      int64    `json:"amount"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

// PricingPlans is the static plan catalog rendered on the storefront page.
var PricingPlans = []Plan{
	{
		Title:       "Basic Plan",
		Amount:      499,
		Description: "Perfect for small businesses",
		Image:       "https://images.unsplash.com/photo-1518770660439-4636190af475",
		Features: []string{
			"1 User",
			"5GB Storage",
			"Basic Support",
			"Email Support",
		},
	},
	{
		Title:       "Pro Plan",
		Amount:      999,
		Description: "Ideal for growing teams",
		Image:       "https://images.unsplash.com/photo-1526614180703-827d23e7c8f2",
		Features: []string{
			"5 Users",
			"20GB Storage",
			"Priority Support",
			"24/7 Phone Support",
			"API Access",
		},
	},
	{
		Title:       "Enterprise Plan",
		Amount:      1999,
		Description: "For large organizations",
		Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		Features: []string{
			"Unlimited Users",
			"100GB Storage",
			"Dedicated Support",
			"Custom Integration",
			"Advanced Analytics",
			"SLA Agreement",
		},
	},
}
