package payment

import (
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentlink"
	"github.com/stripe/stripe-go/v82/price"
	"github.com/stripe/stripe-go/v82/product"

	"paynowbot/models"
)

// StripeGenerator implements PaymentRequestGenerator for customers who
// cannot scan a PayNow QR, e.g. card payments from overseas visitors.
type StripeGenerator struct {
	apiKey string
}

// NewStripeGenerator creates a new Stripe payment link generator.
func NewStripeGenerator(apiKey string) PaymentRequestGenerator {
	return &StripeGenerator{
		apiKey: apiKey,
	}
}

// Generate creates a one-time Stripe payment link carrying the sale's
// transaction reference.
func (s *StripeGenerator) Generate(sale *models.Sale) (*models.PaymentRequest, error) {
	stripe.Key = s.apiKey

	productParams := &stripe.ProductParams{
		Name:        stripe.String(fmt.Sprintf("Sale %s", sale.TransactionID)),
		Description: stripe.String(sale.DisplayReference),
	}
	prod, err := product.New(productParams)
	if err != nil {
		log.Printf("Stripe product error: %v", err)
		return nil, fmt.Errorf("failed to create Stripe product: %w", err)
	}

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String("sgd"),
		UnitAmount: stripe.Int64(int64(sale.Amount * 100)), // Convert to cents
		Product:    stripe.String(prod.ID),
	}
	pr, err := price.New(priceParams)
	if err != nil {
		log.Printf("Stripe price error: %v", err)
		return nil, fmt.Errorf("failed to create Stripe price: %w", err)
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(pr.ID),
				Quantity: stripe.Int64(1),
			},
		},
		CustomerCreation: stripe.String("always"),
	}
	link, err := paymentlink.New(linkParams)
	if err != nil {
		log.Printf("Stripe payment link error: %v", err)
		return nil, fmt.Errorf("failed to create Stripe payment link: %w", err)
	}

	log.Printf("Successfully created Stripe payment link for %s: %s", sale.TransactionID, link.URL)
	return &models.PaymentRequest{
		Provider: models.ProviderStripe,
		Link:     link.URL,
	}, nil
}
