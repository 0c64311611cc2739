package models

import "time"

// SaleRequest carries the inputs a sale workflow collects before a payment
// request is minted.
type SaleRequest struct {
	BaseAmount   float64 `json:"base_amount"`
	OperatorName string  `json:"operator_name"`
	CustomerName string  `json:"customer_name"` // customer or table label
	Company      string  `json:"company"`
}

// Sale is the result handed back to the chat layer: the wire payload plus
// the identifiers shown to staff and on the payer's banking app.
type Sale struct {
	Request          SaleRequest `json:"request"`
	Amount           float64     `json:"amount"` // base amount with surcharge applied
	Payload          string      `json:"payload,omitempty"`
	TransactionID    string      `json:"transaction_id"`
	DisplayReference string      `json:"display_reference"`
	CreatedAt        time.Time   `json:"created_at"`
}

// PaymentProvider represents the payment service provider
type PaymentProvider string

const (
	ProviderPayNow PaymentProvider = "paynow"
	ProviderStripe PaymentProvider = "stripe"
)

// PaymentRequest is what a provider hands back for the customer to pay:
// a QR image for PayNow, a hosted link for card providers.
type PaymentRequest struct {
	Provider PaymentProvider `json:"provider"`
	Payload  string          `json:"payload,omitempty"`
	QRImage  []byte          `json:"-"`
	Link     string          `json:"link,omitempty"`
}

// ReferenceStyle selects how the payer-visible bill reference is built.
type ReferenceStyle string

const (
	ReferenceTemplate ReferenceStyle = "template" // "TxnID - Operator - Name"
	ReferenceToken    ReferenceStyle = "token"    // "TxnID-<random hex>"
)
