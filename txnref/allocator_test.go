package txnref

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Lunar", "L"},
		{"Wave", "W"},
		{"Ion", "I"},
		{"101", "1"},
		{"Nightjar", "X"},
		{"", "X"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Prefix(tt.company), "company %q", tt.company)
	}
}

func TestNextIDFormat(t *testing.T) {
	a := NewAllocator(time.UTC)
	a.now = fixedClock(time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	assert.Equal(t, "L001", a.NextID("Lunar"))
	assert.Equal(t, "L002", a.NextID("Lunar"))
	assert.Equal(t, "W001", a.NextID("Wave"))
	assert.Equal(t, "X001", a.NextID("Nightjar"))
}

func TestNextIDWrapsAt999(t *testing.T) {
	a := NewAllocator(time.UTC)
	a.now = fixedClock(time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	var last string
	for i := 0; i < 999; i++ {
		last = a.NextID("Lunar")
	}
	require.Equal(t, "L999", last)

	// The counter cycles back to 1, never 0.
	assert.Equal(t, "L001", a.NextID("Lunar"))
}

func TestWindowKeyNoonBoundary(t *testing.T) {
	a := NewAllocator(time.UTC)

	a.now = fixedClock(time.Date(2026, 8, 30, 11, 59, 59, 0, time.UTC))
	assert.Equal(t, "2026-08-29@noon", a.windowKey(), "before noon belongs to yesterday's window")

	a.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-08-30@noon", a.windowKey(), "noon starts today's window")
}

func TestNoonResetClearsAllCompanies(t *testing.T) {
	a := NewAllocator(time.UTC)
	a.now = fixedClock(time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC))

	a.NextID("Lunar")
	a.NextID("Lunar")
	a.NextID("Wave")

	// Cross the noon boundary: one allocation resets every company's
	// counter, not just the requester's.
	a.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "L001", a.NextID("Lunar"))
	assert.Equal(t, "W001", a.NextID("Wave"))
}

func TestNextIDUniqueUnderConcurrency(t *testing.T) {
	a := NewAllocator(time.UTC)
	a.now = fixedClock(time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	const workers = 20
	const perWorker = 10

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- a.NextID("Lunar")
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestBuildReference(t *testing.T) {
	assert.Equal(t, "L001 - Alice - Table 5", BuildReference("L001", "Alice", "Table 5"))
}

func TestBuildReferenceNeverExceedsBound(t *testing.T) {
	tests := []struct {
		txnID    string
		operator string
		name     string
	}{
		{"L001", "Alice", "Table 5"},
		{"W042", "Bartholomew", "A very long customer name"},
		{"X999", "", ""},
	}

	for _, tt := range tests {
		ref := BuildReference(tt.txnID, tt.operator, tt.name)
		assert.LessOrEqual(t, len(ref), MaxReferenceLen, "reference %q", ref)
	}
}

func TestBuildReferenceTruncatesWithoutEllipsis(t *testing.T) {
	ref := BuildReference("W042", "Bartholomew", "A very long customer name")
	full := fmt.Sprintf("%s - %s - %s", "W042", "Bartholomew", "A very long customer name")
	assert.Equal(t, full[:MaxReferenceLen], ref)
}
