// Package payments turns a subscribe request into a checkout outcome.
//
// No gateway is called. Card providers return fixed placeholder checkout
// links; the invoice provider returns no link and leaves the subscription
// pending until the invoice is paid.
package payments

import "github.com/dalemusser/coursehub/internal/domain/models"

const (
	StripeCheckoutURL = "https://buy.stripe.com/test_12345"
	PayPalCheckoutURL = "https://www.paypal.com/checkoutnow?token=TEST123"
)

// Checkout is the result of starting a subscription.
type Checkout struct {
	Provider    models.Provider
	Status      models.SubscriptionStatus
	CheckoutURL *string // nil for invoice
	// NeedsInvoice reports that an InvoiceRequest must be recorded.
	NeedsInvoice bool
}

// Start returns the checkout outcome for p.
func Start(p models.Provider) Checkout {
	switch p {
	case models.ProviderStripe:
		return card(p, StripeCheckoutURL)
	case models.ProviderPayPal:
		return card(p, PayPalCheckoutURL)
	default:
		return Checkout{
			Provider:     models.ProviderInvoice,
			Status:       models.StatusPending,
			NeedsInvoice: true,
		}
	}
}

func card(p models.Provider, url string) Checkout {
	return Checkout{Provider: p, Status: models.StatusActive, CheckoutURL: &url}
}
