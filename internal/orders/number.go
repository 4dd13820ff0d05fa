package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/am-nutrition/storefront/internal/errors"
)

// CounterStore advances the persisted order counter.
type CounterStore interface {
	IncrOrderCounter(ctx context.Context) (int64, error)
}

// NumberGenerator produces human-readable order numbers: prefix, a YYMMDD
// date code in UTC, and the counter zero-padded to three digits. The counter
// advances atomically with generation and is never rolled back, even when the
// order's remote write later fails.
type NumberGenerator struct {
	counter CounterStore
	prefix  string
	now     func() time.Time
}

func NewNumberGenerator(counter CounterStore, prefix string) *NumberGenerator {
	return &NumberGenerator{
		counter: counter,
		prefix:  prefix,
		now:     time.Now,
	}
}

func (g *NumberGenerator) Next(ctx context.Context) (string, error) {

	n, err := g.counter.IncrOrderCounter(ctx)
	if err != nil {
		return "", errors.InternalError("Failed to generate order number").WithError(err)
	}

	return fmt.Sprintf("%s%s%03d", g.prefix, g.now().UTC().Format("060102"), n), nil
}
