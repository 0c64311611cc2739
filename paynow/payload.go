// Package paynow assembles EMVCo/SGQR payment payloads addressed to a
// PayNow proxy. The output is a plain TLV text stream ending in a
// CRC16-CCITT trailer, ready to be handed to a QR image encoder.
package paynow

import (
	"fmt"
	"strings"
)

// Top-level EMVCo tags, listed in assembly order.
const (
	tagPayloadFormat       = "00"
	tagInitiationMethod    = "01"
	tagMerchantAccountInfo = "26"
	tagCurrency            = "53"
	tagAmount              = "54"
	tagCountryCode         = "58"
	tagMerchantName        = "59"
	tagMerchantCity        = "60"
	tagAdditionalData      = "62"
	tagChecksum            = "63"
)

const (
	payloadFormatEMV    = "01"
	initiationDynamicQR = "12"
	currencySGD         = "702"
	countrySingapore    = "SG"
	subTagBillRef       = "01"
	checksumLength      = "04"

	// MaxDisplayLen bounds the merchant name and bill reference wire fields.
	MaxDisplayLen = 25
)

// Request carries everything needed to assemble one PayNow payload. A
// payload is a pure function of its Request: identical requests always
// produce identical strings.
type Request struct {
	Amount        float64
	BillReference string
	MerchantName  string
	MerchantCity  string
	ProxyType     ProxyType
	ProxyValue    string
	Editable      bool
	Expiry        string
}

// Build assembles the full SGQR/EMVCo wire string for req, checksum trailer
// included. MerchantName and BillReference are silently clipped to 25
// characters to fit the wire field width. Construction is all-or-nothing:
// on error no partial payload is returned.
func Build(req Request) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("amount %.2f: %w", req.Amount, ErrInvalidAmount)
	}

	account, err := NewMerchantAccountInfo(req.ProxyType, req.ProxyValue, req.Editable, req.Expiry)
	if err != nil {
		return "", err
	}
	accountBlock, err := account.encodeSubfields()
	if err != nil {
		return "", err
	}

	billRef, err := EncodeField(subTagBillRef, clip(req.BillReference, MaxDisplayLen))
	if err != nil {
		return "", err
	}

	fields := [][2]string{
		{tagPayloadFormat, payloadFormatEMV},
		{tagInitiationMethod, initiationDynamicQR},
		{tagMerchantAccountInfo, accountBlock},
		{tagCurrency, currencySGD},
		{tagAmount, fmt.Sprintf("%.2f", req.Amount)},
		{tagCountryCode, countrySingapore},
		{tagMerchantName, clip(req.MerchantName, MaxDisplayLen)},
		{tagMerchantCity, req.MerchantCity},
		{tagAdditionalData, billRef},
	}

	var body strings.Builder
	for _, f := range fields {
		field, err := EncodeField(f[0], f[1])
		if err != nil {
			return "", err
		}
		body.WriteString(field)
	}

	// The checksum covers the body plus the checksum field's own tag and
	// length, but not its value, per EMVCo convention.
	trailer := body.String() + tagChecksum + checksumLength
	return trailer + Checksum(trailer), nil
}
