package paynow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeField(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		value string
		want  string
	}{
		{"simple value", "00", "01", "000201"},
		{"empty value", "01", "", "0100"},
		{"length is zero padded", "62", "abc", "6203abc"},
		{"double digit length", "59", "Brewed By The Bay", "5917Brewed By The Bay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeField(tt.tag, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFieldStructure(t *testing.T) {
	value := strings.Repeat("x", 99)
	got, err := EncodeField("26", value)
	require.NoError(t, err)
	assert.Equal(t, "26"+"99"+value, got)
}

func TestEncodeFieldTooLong(t *testing.T) {
	_, err := EncodeField("26", strings.Repeat("x", 100))
	require.ErrorIs(t, err, ErrFieldTooLong)
}

func TestEncodeFieldRejectsBadTag(t *testing.T) {
	_, err := EncodeField("123", "value")
	require.Error(t, err)

	_, err = EncodeField("1", "value")
	require.Error(t, err)
}
