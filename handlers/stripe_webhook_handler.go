package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"paynowbot/services"
)

// StripeWebhookHandler listens for card-payment completions so the channel
// hears about a paid sale without anyone checking the Stripe dashboard.
type StripeWebhookHandler struct {
	endpointSecret string
	slackService   *services.SlackService
	salesChannelID string
}

// NewStripeWebhookHandler creates a new Stripe webhook handler. An empty
// salesChannelID disables the Slack notification and only logs completions.
func NewStripeWebhookHandler(endpointSecret string, slackService *services.SlackService, salesChannelID string) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		endpointSecret: endpointSecret,
		slackService:   slackService,
		salesChannelID: salesChannelID,
	}
}

// HandleWebhook processes incoming Stripe webhook events
func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const MaxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading webhook payload: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.endpointSecret)
	if err != nil {
		log.Printf("Error verifying webhook signature: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.handleCheckoutSessionCompleted(event)
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

// handleCheckoutSessionCompleted processes successful checkout sessions
func (h *StripeWebhookHandler) handleCheckoutSessionCompleted(event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Printf("Error parsing checkout session: %v", err)
		return
	}

	amount := float64(session.AmountTotal) / 100
	log.Printf("Checkout session completed: %s (amount %.2f %s)", session.ID, amount, session.Currency)

	if h.salesChannelID != "" {
		h.slackService.PostPaymentConfirmation(h.salesChannelID, session.ID, amount)
	}
}
