package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds a single round trip to the remote store. The
// storefront serves reads from its local snapshot, so a remote call that
// cannot finish inside this window fails instead of stalling the caller.
const DefaultDBTimeout = 5 * time.Second

// WithDBTimeout derives the context used for one remote read or write.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
