package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

// RetryMiddleware retries a failed send up to maxRetries times with
// exponential backoff, skipping the retry entirely once ctx is cancelled —
// a cancelled context means the caller gave up, not that the controller is
// temporarily unreachable.
func RetryMiddleware(maxRetries int, baseDelay time.Duration) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, msg protocol.Message) error {
			err := next(ctx, msg)
			mid, rev := msg.MidRevision()
			for i := 0; i < maxRetries; i++ {
				if err == nil {
					return nil
				}
				if errors.Is(err, context.Canceled) {
					return err
				}
				log.Printf("mid=%d rev=%d direction=out retry %d after error: %s", mid, rev, i+1, err)

				select {
				case <-time.After(baseDelay * time.Duration(1<<i)):
				case <-ctx.Done():
					return ctx.Err()
				}
				err = next(ctx, msg)
			}
			return err
		}
	}
}
