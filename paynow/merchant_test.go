package paynow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMobileAcceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare local number", "91234567"},
		{"with country code", "6591234567"},
		{"with zero prefixed country code", "06591234567"},
		{"with double zero prefixed country code", "006591234567"},
		{"formatted with plus and spaces", "+65 9123 4567"},
		{"formatted with dashes", "9123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := NewMerchantAccountInfo(ProxyMobile, tt.raw, false, "")
			require.NoError(t, err)
			assert.Equal(t, "91234567", info.ProxyValue)
		})
	}
}

func TestNormalizeMobileRejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"does not start with 8 or 9", "12345678"},
		{"too short", "9123456"},
		{"too long without known prefix", "991234567"},
		{"wrong country code", "4491234567"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMerchantAccountInfo(ProxyMobile, tt.raw, false, "")
			require.ErrorIs(t, err, ErrInvalidProxyValue)
		})
	}
}

func TestUENProxy(t *testing.T) {
	info, err := NewMerchantAccountInfo(ProxyUEN, "201912345A", true, "")
	require.NoError(t, err)
	assert.Equal(t, "201912345A", info.ProxyValue)

	_, err = NewMerchantAccountInfo(ProxyUEN, "  ", false, "")
	require.ErrorIs(t, err, ErrMissingConfiguration)
}

func TestEncodeSubfields(t *testing.T) {
	info, err := NewMerchantAccountInfo(ProxyMobile, "91234567", false, "")
	require.NoError(t, err)

	block, err := info.encodeSubfields()
	require.NoError(t, err)
	assert.Equal(t, "0009SG.PAYNOW"+"01010"+"020891234567"+"03010", block)
}

func TestEncodeSubfieldsUENWithExpiry(t *testing.T) {
	info, err := NewMerchantAccountInfo(ProxyUEN, "201912345A", true, "20301231")
	require.NoError(t, err)

	block, err := info.encodeSubfields()
	require.NoError(t, err)
	assert.Equal(t, "0009SG.PAYNOW"+"01012"+"0210201912345A"+"03011"+"040820301231", block)
}
