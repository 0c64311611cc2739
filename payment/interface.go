package payment

import "paynowbot/models"

// PaymentRequestGenerator turns a prepared sale into something a customer
// can pay.
type PaymentRequestGenerator interface {
	Generate(sale *models.Sale) (*models.PaymentRequest, error)
}
