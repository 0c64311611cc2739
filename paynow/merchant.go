package paynow

import (
	"fmt"
	"regexp"
	"strings"
)

// ProxyType selects which PayNow proxy addresses the merchant account.
type ProxyType string

const (
	ProxyMobile ProxyType = "mobile"
	ProxyUEN    ProxyType = "uen"
)

const (
	payNowGUI       = "SG.PAYNOW"
	proxyCodeMobile = "0"
	proxyCodeUEN    = "2"

	subTagGUI       = "00"
	subTagProxyType = "01"
	subTagProxyVal  = "02"
	subTagEditable  = "03"
	subTagExpiry    = "04"
)

var localMobilePattern = regexp.MustCompile(`^[89]\d{7}$`)

// MerchantAccountInfo is the PayNow proxy block carried under tag 26.
// ProxyValue is always stored in normalized form.
type MerchantAccountInfo struct {
	ProxyType  ProxyType
	ProxyValue string
	Editable   bool
	Expiry     string
}

// NewMerchantAccountInfo validates and normalizes the raw proxy value for
// the given proxy type. Mobile numbers are reduced to the 8-digit local
// form; UENs are taken as-is but must be present.
func NewMerchantAccountInfo(proxyType ProxyType, rawProxy string, editable bool, expiry string) (*MerchantAccountInfo, error) {
	info := &MerchantAccountInfo{ProxyType: proxyType, Editable: editable, Expiry: expiry}

	switch proxyType {
	case ProxyMobile:
		local, err := normalizeMobile(rawProxy)
		if err != nil {
			return nil, err
		}
		info.ProxyValue = local
	case ProxyUEN:
		uen := strings.TrimSpace(rawProxy)
		if uen == "" {
			return nil, fmt.Errorf("uen proxy not configured: %w", ErrMissingConfiguration)
		}
		info.ProxyValue = uen
	default:
		return nil, fmt.Errorf("proxy type %q: %w", proxyType, ErrInvalidProxyValue)
	}

	return info, nil
}

// normalizeMobile strips every non-digit character and reduces the result to
// the 8-digit local number. Exactly four shapes are accepted: a bare 8-digit
// number, or the same number behind a "65", "065" or "0065" country prefix.
// The local number must start with 8 or 9.
func normalizeMobile(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	var local string
	switch {
	case len(digits) == 8:
		local = digits
	case len(digits) == 10 && strings.HasPrefix(digits, "65"):
		local = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "065"):
		local = digits[3:]
	case len(digits) == 12 && strings.HasPrefix(digits, "0065"):
		local = digits[4:]
	default:
		return "", fmt.Errorf("mobile %q: %w", raw, ErrInvalidProxyValue)
	}

	if !localMobilePattern.MatchString(local) {
		return "", fmt.Errorf("mobile %q: %w", raw, ErrInvalidProxyValue)
	}
	return local, nil
}

// encodeSubfields concatenates the proxy subfields in wire order. The caller
// wraps the result under the top-level merchant-account-info tag.
func (m *MerchantAccountInfo) encodeSubfields() (string, error) {
	proxyCode := proxyCodeMobile
	if m.ProxyType == ProxyUEN {
		proxyCode = proxyCodeUEN
	}
	editable := "0"
	if m.Editable {
		editable = "1"
	}

	subfields := [][2]string{
		{subTagGUI, payNowGUI},
		{subTagProxyType, proxyCode},
		{subTagProxyVal, m.ProxyValue},
		{subTagEditable, editable},
	}
	if m.Expiry != "" {
		subfields = append(subfields, [2]string{subTagExpiry, m.Expiry})
	}

	var b strings.Builder
	for _, sf := range subfields {
		field, err := EncodeField(sf[0], sf[1])
		if err != nil {
			return "", err
		}
		b.WriteString(field)
	}
	return b.String(), nil
}
