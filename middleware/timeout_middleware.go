package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

// TimeOutMiddleware enforces a maximum duration for each outbound send.
// If next doesn't return within timeout, this gives up waiting on it and
// reports a timeout error.
//
// Implementation:
//  1. Derive a context with timeout (ctx.Done() fires when timeout expires).
//  2. Run next in a goroutine, sending its result to a buffered channel.
//  3. Select between that channel and ctx.Done().
//
// Note: the goroutine running next is not forcibly stopped — it keeps
// running in the background (EventLoop.Send itself already respects ctx, so
// in practice it unblocks promptly, but a future middleware that ignores ctx
// should not be able to wedge this one).
func TimeOutMiddleware(timeout time.Duration) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, msg protocol.Message) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- next(ctx, msg)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				mid, rev := msg.MidRevision()
				return fmt.Errorf("middleware: send mid=%d rev=%d timed out after %s", mid, rev, timeout)
			}
		}
	}
}
