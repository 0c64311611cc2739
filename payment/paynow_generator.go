package payment

import (
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"

	"paynowbot/models"
	"paynowbot/paynow"
)

// qrImageSize is the pixel width of the generated PNG.
const qrImageSize = 512

// PayNowConfig holds the merchant-side settings shared by every QR the
// generator mints.
type PayNowConfig struct {
	ProxyType    paynow.ProxyType
	ProxyValue   string
	MerchantName string
	MerchantCity string
	Editable     bool
	Expiry       string
}

// PayNowGenerator implements PaymentRequestGenerator for PayNow SGQR codes.
type PayNowGenerator struct {
	cfg PayNowConfig
}

// NewPayNowGenerator creates a new PayNow QR generator.
func NewPayNowGenerator(cfg PayNowConfig) PaymentRequestGenerator {
	return &PayNowGenerator{cfg: cfg}
}

// Generate assembles the PayNow payload for the sale and renders it as a
// PNG QR image. The payload string is passed to the barcode encoder
// verbatim; level M is what payment terminals expect for SGQR.
func (g *PayNowGenerator) Generate(sale *models.Sale) (*models.PaymentRequest, error) {
	payload, err := paynow.Build(paynow.Request{
		Amount:        sale.Amount,
		BillReference: sale.DisplayReference,
		MerchantName:  g.cfg.MerchantName,
		MerchantCity:  g.cfg.MerchantCity,
		ProxyType:     g.cfg.ProxyType,
		ProxyValue:    g.cfg.ProxyValue,
		Editable:      g.cfg.Editable,
		Expiry:        g.cfg.Expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build PayNow payload: %w", err)
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR image: %w", err)
	}

	log.Printf("Generated PayNow QR for %s (amount %.2f)", sale.TransactionID, sale.Amount)
	return &models.PaymentRequest{
		Provider: models.ProviderPayNow,
		Payload:  payload,
		QRImage:  png,
	}, nil
}
