// Package txnref mints the transaction ids and display references attached
// to PayNow sales. Ids are unique per company within a reset window that
// rolls over at local noon rather than midnight, matching the venues'
// trading day.
package txnref

import (
	"fmt"
	"sync"
	"time"
)

// MaxReferenceLen bounds the display reference to the bill-reference wire
// field width.
const MaxReferenceLen = 25

// counterLimit is the highest counter value; the sequence cycles 1..999.
const counterLimit = 999

// Prefix returns the single-character id prefix for a company. Unknown
// companies share the catch-all X prefix.
func Prefix(company string) string {
	switch company {
	case "Lunar":
		return "L"
	case "Wave":
		return "W"
	case "Ion":
		return "I"
	case "101":
		return "1"
	default:
		return "X"
	}
}

// Allocator owns the per-company sequence counters. All mutation happens
// under one mutex so concurrent sales cannot mint duplicate ids within a
// window.
type Allocator struct {
	mu       sync.Mutex
	resetKey string
	counters map[string]int
	loc      *time.Location
	now      func() time.Time
}

// NewAllocator returns an allocator evaluating the noon boundary in loc.
// A nil loc falls back to the process-local timezone.
func NewAllocator(loc *time.Location) *Allocator {
	if loc == nil {
		loc = time.Local
	}
	return &Allocator{
		counters: make(map[string]int),
		loc:      loc,
		now:      time.Now,
	}
}

// windowKey returns the date key of the current allocation window. Windows
// run from local noon to the next local noon, so before noon the previous
// calendar date still owns the window.
func (a *Allocator) windowKey() string {
	t := a.now().In(a.loc)
	if t.Hour() < 12 {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format("2006-01-02") + "@noon"
}

// NextID mints the next transaction id for company. When the noon window
// rolls over, counters for every company are cleared together before the
// allocation; within a window each company cycles 1..999, never 0.
func (a *Allocator) NextID(company string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := a.windowKey()
	if key != a.resetKey {
		a.resetKey = key
		a.counters = make(map[string]int)
	}

	n := (a.counters[company] % counterLimit) + 1
	a.counters[company] = n
	return fmt.Sprintf("%s%03d", Prefix(company), n)
}

// BuildReference composes the payer-visible reference
// "<txnID> - <operator> - <name>" and hard-truncates it to 25 characters.
// No ellipsis is added; the tail is simply dropped.
func BuildReference(txnID, operator, name string) string {
	ref := fmt.Sprintf("%s - %s - %s", txnID, operator, name)
	if len(ref) > MaxReferenceLen {
		ref = ref[:MaxReferenceLen]
	}
	return ref
}
