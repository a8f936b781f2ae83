package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Document number prefixes.
const (
	PrefixPurchase  = "PUR"
	PrefixQuotation = "QUO"
	PrefixInvoice   = "INV"
)

// NumberGenerator issues document numbers of the form
// PREFIX-<epoch-milliseconds>. Successive calls within the same
// millisecond bump the suffix so two documents created back to back in
// one process never collide.
type NumberGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewNumberGenerator builds a generator backed by the wall clock.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now}
}

// Next returns a fresh document number for the given prefix.
func (g *NumberGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}
