package quote

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ReferencePrefix starts every reference token.
const ReferencePrefix = "ET-"

// ReferenceGenerator hands out reference tokens built from the last six
// digits of a millisecond clock. The clock never repeats a value within a
// process, so concurrent requests in the same millisecond get distinct
// tokens.
type ReferenceGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

// NewReferenceGenerator returns a generator backed by the wall clock.
func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{now: time.Now}
}

// Next returns the next reference token.
func (g *ReferenceGenerator) Next() string {
	for {
		prev := g.last.Load()
		ts := g.now().UnixMilli()
		if ts <= prev {
			ts = prev + 1
		}
		if g.last.CompareAndSwap(prev, ts) {
			return FormatReference(ts)
		}
	}
}

// FormatReference renders a millisecond timestamp as a reference token.
func FormatReference(ms int64) string {
	if ms < 0 {
		ms = -ms
	}
	return fmt.Sprintf("%s%06d", ReferencePrefix, ms%1_000_000)
}
