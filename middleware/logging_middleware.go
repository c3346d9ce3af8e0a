package middleware

import (
	"context"
	"log"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

// LoggingMiddleware records the MID, revision, and duration of each
// outbound send, plus any error next returns.
//
// Example output:
//
//	mid=10 rev=1 direction=out duration=38µs
//	mid=10 rev=1 direction=out error: write tcp ...: broken pipe
func LoggingMiddleware() Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, msg protocol.Message) error {
			start := time.Now()
			mid, rev := msg.MidRevision()

			err := next(ctx, msg)

			log.Printf("mid=%d rev=%d direction=out duration=%s", mid, rev, time.Since(start))
			if err != nil {
				log.Printf("mid=%d rev=%d direction=out error: %s", mid, rev, err)
			}
			return err
		}
	}
}
