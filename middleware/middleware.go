// Package middleware implements the onion model middleware chain for the
// outbound send path: there is no server handler to wrap in this protocol
// (the controller is always the listener, never us), so the chain wraps
// client.EventLoop.Send instead.
//
// Onion model execution order:
//
//	Chain(A, B, C)(send)  →  A(B(C(send)))
//
//	Call:    A.before → B.before → C.before → send
//	Return:  send → C.after → B.after → A.after
//
// Each middleware can:
//   - Do pre-processing (before calling next)
//   - Call next(ctx, msg) to pass the request further in
//   - Do post-processing (after next returns)
//   - Short-circuit by returning an error without calling next (e.g. rate limiting)
package middleware

import (
	"context"

	"github.com/dezemand/openprotocol-go/protocol"
)

// SendFunc is the function signature for the outbound path. Both
// client.EventLoop.Send and every middleware-wrapped stage share this shape.
type SendFunc func(ctx context.Context, msg protocol.Message) error

// Middleware takes a SendFunc and returns a new one that wraps it.
type Middleware func(next SendFunc) SendFunc

// Chain composes multiple middlewares into a single middleware. It builds
// the chain from right to left so the first middleware in the list is the
// outermost layer (runs first on the way in, last on the way out).
//
// Example:
//
//	chain := Chain(LoggingMiddleware(), RateLimitMiddleware(5, 10))
//	send := chain(loop.Send)
//	// Call order: Logging → RateLimit → loop.Send
func Chain(middlewares ...Middleware) Middleware {
	return func(next SendFunc) SendFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
