package paynow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"standard check string", "123456789", "29B1"},
		{"empty input keeps the seed", "", "FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.data))
		})
	}
}

func TestChecksumIsDeterministic(t *testing.T) {
	data := "00020101021226370009SG.PAYNOW010100208912345670301063046"
	assert.Equal(t, Checksum(data), Checksum(data))
}

func TestChecksumFormat(t *testing.T) {
	got := Checksum("hello")
	assert.Len(t, got, 4)
	assert.Regexp(t, "^[0-9A-F]{4}$", got)
}
