package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"paynowbot/models"
	"paynowbot/payment"
	"paynowbot/txnref"
)

// SaleService runs the sale workflow: it applies the surcharge policy,
// mints the transaction id and display reference, and asks a payment
// provider for something the customer can pay with.
type SaleService struct {
	allocator        *txnref.Allocator
	generators       map[models.PaymentProvider]payment.PaymentRequestGenerator
	surchargePercent float64
	referenceStyle   models.ReferenceStyle
}

func NewSaleService(allocator *txnref.Allocator, surchargePercent float64, style models.ReferenceStyle) *SaleService {
	return &SaleService{
		allocator:        allocator,
		generators:       make(map[models.PaymentProvider]payment.PaymentRequestGenerator),
		surchargePercent: surchargePercent,
		referenceStyle:   style,
	}
}

// RegisterGenerator wires a provider into the service. Providers not
// registered (e.g. Stripe without an API key) are reported as unknown.
func (s *SaleService) RegisterGenerator(p models.PaymentProvider, gen payment.PaymentRequestGenerator) {
	s.generators[p] = gen
}

// HasProvider reports whether a generator is registered for p.
func (s *SaleService) HasProvider(p models.PaymentProvider) bool {
	_, ok := s.generators[p]
	return ok
}

// CreateSale runs one sale end to end and returns the completed sale along
// with the payment request to show the customer. The transaction id is
// minted before payload assembly, so a failed generation still consumes a
// counter slot.
func (s *SaleService) CreateSale(req models.SaleRequest, provider models.PaymentProvider) (*models.Sale, *models.PaymentRequest, error) {
	gen, ok := s.generators[provider]
	if !ok {
		return nil, nil, fmt.Errorf("unknown provider: %s", provider)
	}

	sale := &models.Sale{
		Request:   req,
		Amount:    s.chargedAmount(req.BaseAmount),
		CreatedAt: time.Now(),
	}
	sale.TransactionID = s.allocator.NextID(req.Company)
	sale.DisplayReference = s.reference(sale.TransactionID, req)

	pr, err := gen.Generate(sale)
	if err != nil {
		log.Printf("Error generating %s payment request for %s: %v", provider, sale.TransactionID, err)
		return nil, nil, err
	}
	sale.Payload = pr.Payload

	log.Printf("Created sale %s: amount=%.2f, operator=%s, company=%s, provider=%s",
		sale.TransactionID, sale.Amount, req.OperatorName, req.Company, provider)
	return sale, pr, nil
}

// chargedAmount applies the flat surcharge percentage to the base amount.
// A zero percentage leaves the amount untouched.
func (s *SaleService) chargedAmount(base float64) float64 {
	if s.surchargePercent <= 0 {
		return base
	}
	return base * (1 + s.surchargePercent/100)
}

// reference builds the payer-visible bill reference per the configured
// style: the "TxnID - Operator - Name" template clipped to the wire bound,
// or a short random token appended to the transaction id.
func (s *SaleService) reference(txnID string, req models.SaleRequest) string {
	if s.referenceStyle == models.ReferenceToken {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err == nil {
			return txnID + "-" + hex.EncodeToString(buf)
		}
		log.Printf("random token unavailable, falling back to template reference")
	}
	return txnref.BuildReference(txnID, req.OperatorName, req.CustomerName)
}
