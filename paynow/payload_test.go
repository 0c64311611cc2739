package paynow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Amount:        103.00,
		BillReference: "L001 - Alice - Table 5",
		MerchantName:  "Lunar Bar",
		MerchantCity:  "Singapore",
		ProxyType:     ProxyMobile,
		ProxyValue:    "91234567",
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build(testRequest())
	require.NoError(t, err)
	second, err := Build(testRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildFieldOrder(t *testing.T) {
	payload, err := Build(testRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payload, "000201"+"010212"+"26"), "payload = %s", payload)
	assert.Contains(t, payload, "5303702")
	assert.Contains(t, payload, "5406103.00")
	assert.Contains(t, payload, "5802SG")
	assert.Contains(t, payload, "5909Lunar Bar")
	assert.Contains(t, payload, "6009Singapore")
	assert.Contains(t, payload, "62260122L001 - Alice - Table 5")
}

func TestBuildChecksumSelfConsistent(t *testing.T) {
	payload, err := Build(testRequest())
	require.NoError(t, err)

	require.Greater(t, len(payload), 8)
	body := payload[:len(payload)-4]
	checksum := payload[len(payload)-4:]

	assert.True(t, strings.HasSuffix(body, tagChecksum+checksumLength))
	assert.Regexp(t, "^[0-9A-F]{4}$", checksum)
	assert.Equal(t, checksum, Checksum(body))
}

func TestBuildClipsDisplayFields(t *testing.T) {
	req := testRequest()
	req.MerchantName = strings.Repeat("N", 40)
	req.BillReference = strings.Repeat("R", 40)

	payload, err := Build(req)
	require.NoError(t, err)

	assert.Contains(t, payload, "5925"+strings.Repeat("N", 25))
	assert.Contains(t, payload, "62290125"+strings.Repeat("R", 25))
	assert.NotContains(t, payload, strings.Repeat("R", 26))
}

func TestBuildRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1, -0.01} {
		req := testRequest()
		req.Amount = amount
		_, err := Build(req)
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestBuildPropagatesProxyErrors(t *testing.T) {
	req := testRequest()
	req.ProxyValue = "12345678"
	_, err := Build(req)
	require.ErrorIs(t, err, ErrInvalidProxyValue)

	req = testRequest()
	req.ProxyType = ProxyUEN
	req.ProxyValue = ""
	_, err = Build(req)
	require.ErrorIs(t, err, ErrMissingConfiguration)
}

func TestBuildAmountAlwaysTwoDecimals(t *testing.T) {
	req := testRequest()
	req.Amount = 7.5
	payload, err := Build(req)
	require.NoError(t, err)
	assert.Contains(t, payload, "54047.50")
}
