package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/dezemand/openprotocol-go/protocol"
)

// RateLimitMiddleware gates the outbound path with a token bucket: tokens
// are added at rate r per second, up to burst. Each Send call consumes one
// token, protecting the controller from a request storm the same way the
// teacher protected its RPC server — just pointed at EventLoop.Send instead
// of a handler.
//
// Unlike the teacher's server-side limiter, which rejected outright once the
// bucket ran dry, a dropped outbound request here has no response channel to
// carry the rejection back on, so this waits for a token instead of
// discarding the message; ctx cancellation still aborts the wait.
//
// CRITICAL: the limiter is created in the outer closure (once per middleware
// construction), not inside the returned SendFunc — creating it per-call
// would hand every request a fresh, full bucket and defeat the limiter
// entirely.
func RateLimitMiddleware(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, msg protocol.Message) error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			return next(ctx, msg)
		}
	}
}
