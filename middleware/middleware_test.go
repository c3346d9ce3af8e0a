package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

func echoSend(ctx context.Context, msg protocol.Message) error {
	return nil
}

func slowSend(ctx context.Context, msg protocol.Message) error {
	time.Sleep(200 * time.Millisecond)
	return nil
}

func failingSend(calls *int, failTimes int) SendFunc {
	return func(ctx context.Context, msg protocol.Message) error {
		*calls++
		if *calls <= failTimes {
			return errors.New("connection refused")
		}
		return nil
	}
}

func TestLogging(t *testing.T) {
	send := LoggingMiddleware()(echoSend)

	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}

func TestTimeoutPass(t *testing.T) {
	send := TimeOutMiddleware(500 * time.Millisecond)(echoSend)

	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}

func TestTimeoutExceeded(t *testing.T) {
	send := TimeOutMiddleware(50 * time.Millisecond)(slowSend)

	err := send(context.Background(), protocol.MID0010rev1{})
	if err == nil {
		t.Fatal("expect a timeout error, got nil")
	}
}

func TestRateLimitThrottlesBurst(t *testing.T) {
	// rate=1000/s, burst=2: the first two calls pass immediately, the third
	// waits roughly 1ms for its token rather than being rejected outright.
	send := RateLimitMiddleware(1000, 2)(echoSend)

	for i := 0; i < 2; i++ {
		if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
			t.Fatalf("call %d: expect no error, got %v", i, err)
		}
	}

	start := time.Now()
	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("call 3: expect no error, got %v", err)
	}
	if time.Since(start) <= 0 {
		t.Fatalf("expected call 3 to wait for a refilled token")
	}
}

func TestRateLimitRespectsCancellation(t *testing.T) {
	send := RateLimitMiddleware(0.001, 1)(echoSend)

	// Drain the single burst token.
	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := send(ctx, protocol.MID0010rev1{}); err == nil {
		t.Fatal("expect a context error while waiting for a token, got nil")
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	send := RetryMiddleware(3, time.Millisecond)(failingSend(&calls, 2))

	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("expect eventual success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRetryGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	send := RetryMiddleware(2, time.Millisecond)(failingSend(&calls, 10))

	if err := send(context.Background(), protocol.MID0010rev1{}); err == nil {
		t.Fatal("expect an error after exhausting retries, got nil")
	}
	if calls != 3 { // one initial attempt + 2 retries
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestChain(t *testing.T) {
	chained := Chain(LoggingMiddleware(), TimeOutMiddleware(500*time.Millisecond))
	send := chained(echoSend)

	if err := send(context.Background(), protocol.MID0010rev1{}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}
