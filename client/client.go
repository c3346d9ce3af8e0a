// Package client implements the cooperative, single-goroutine event loop
// that owns one TCP connection to a tightening controller.
//
// It generalizes the teacher's transport.ClientTransport split of
// responsibilities — a dedicated reader goroutine feeding a shared state
// machine, a periodic liveness probe — into the three-way select spec.md's
// event loop calls for: outbound requests, inbound frames, and a keep-alive
// deadline all racing to produce the next Event.
//
//	caller ──Send(msg)──→ requests (bounded 1000) ─┐
//	readLoop ──ReadNextFrame──→ frames             ─┼──→ Poll() select ──→ Event
//	5s idle deadline ──────────────────────────────┘
package client

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rs/xid"

	"github.com/dezemand/openprotocol-go/protocol"
	"github.com/dezemand/openprotocol-go/transport"
)

// Logger is the minimal sink EventLoop writes to. When Config.Logger is nil
// the default is NewZapLogger, which adapts a production
// *zap.SugaredLogger (whose Infof has no Printf of its own) to this shape.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything; useful in tests and for callers that want
// Connect to build a plain (non-zap) loop.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}

// Config configures a single controller connection. It is a plain struct
// built by the caller — no flag/env parsing lives in this package, matching
// the teacher's preference for passing addresses as plain arguments.
type Config struct {
	Addr              string
	KeepAliveInterval time.Duration
	RequestQueueSize  int
	Logger            Logger
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = "127.0.0.1:4545"
	}
	if c.KeepAliveInterval <= 0 {
		c.KeepAliveInterval = 5 * time.Second
	}
	if c.RequestQueueSize <= 0 {
		c.RequestQueueSize = 1000
	}
	if c.Logger == nil {
		c.Logger = NewZapLogger()
	}
	return c
}

// EventKind tags which side of the connection an Event's message crossed.
type EventKind int

const (
	EventIncoming EventKind = iota
	EventOutgoing
)

func (k EventKind) String() string {
	if k == EventIncoming {
		return "Incoming"
	}
	return "Outgoing"
}

// Event is what Poll produces: a message that was either decoded off the
// wire or just handed to the transport.
type Event struct {
	Kind    EventKind
	Header  protocol.Header
	Message protocol.Message
}

type frameResult struct {
	header protocol.Header
	msg    protocol.Message
	err    error
}

// EventLoop owns a single TCP connection end to end: the teacher's shared
// transport + background recvLoop collapsed into one cooperative state
// machine with no locks, since exactly one goroutine (the caller of Poll)
// ever writes to conn or touches pending or the timer; the readLoop
// goroutine only reads conn, through the FrameReader.
type EventLoop struct {
	conn    net.Conn
	reader  *transport.FrameReader
	cfg     Config
	session xid.ID

	requests chan protocol.Message
	frames   chan frameResult

	pending  []Event
	fatalErr error

	timer *time.Timer
}

// Connect dials cfg.Addr, starts the background frame reader, and enqueues
// the MID 0001 handshake before returning — the caller observes the
// controller's MID 0002 reply as the first Incoming event from Poll.
func Connect(ctx context.Context, cfg Config) (*EventLoop, error) {
	cfg = cfg.withDefaults()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", cfg.Addr, err)
	}

	loop := newEventLoop(conn, cfg)
	loop.session = xid.New()
	cfg.Logger.Printf("sess=%s connected to %s", loop.session, cfg.Addr)

	go loop.readLoop(ctx)

	if err := loop.Send(ctx, protocol.MID0001rev7{}); err != nil {
		conn.Close()
		return nil, err
	}
	return loop, nil
}

func newEventLoop(conn net.Conn, cfg Config) *EventLoop {
	return &EventLoop{
		conn:     conn,
		reader:   transport.NewFrameReader(conn),
		cfg:      cfg,
		requests: make(chan protocol.Message, cfg.RequestQueueSize),
		frames:   make(chan frameResult, 16),
		timer:    time.NewTimer(cfg.KeepAliveInterval),
	}
}

// Close terminates the connection. In-flight bytes on the write path may be
// lost; the controller observes this as a transport close, matching
// spec.md's stated cancellation contract for the loop.
func (l *EventLoop) Close() error {
	l.timer.Stop()
	return l.conn.Close()
}

// Send enqueues msg for the event loop to write out. The channel is bounded
// (Config.RequestQueueSize, default 1000) — this is the only backpressure
// mechanism; Send blocks (or returns ctx.Err()) once the queue is full.
func (l *EventLoop) Send(ctx context.Context, msg protocol.Message) error {
	select {
	case l.requests <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readLoop runs in its own goroutine for the lifetime of the connection,
// continuously decoding frames and handing them to Poll over a buffered
// channel — the same single-reader-goroutine discipline the teacher's
// recvLoop used, since TCP reads must stay sequential to parse frame
// boundaries correctly.
func (l *EventLoop) readLoop(ctx context.Context) {
	for {
		header, msg, err := l.reader.ReadNextFrame(ctx)
		select {
		case l.frames <- frameResult{header: header, msg: msg, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the next Event or the first fatal error observed. Callers
// are expected to discard the loop after an error — there is no in-band
// retry at this layer.
func (l *EventLoop) Poll(ctx context.Context) (Event, error) {
	if len(l.pending) > 0 {
		ev := l.pending[0]
		l.pending = l.pending[1:]
		return ev, nil
	}
	if l.fatalErr != nil {
		err := l.fatalErr
		l.fatalErr = nil
		return Event{}, err
	}

	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()

	case msg := <-l.requests:
		if err := l.writeMessage(msg); err != nil {
			return Event{}, err
		}
		l.resetTimer()
		return Event{Kind: EventOutgoing, Message: msg}, nil

	case res := <-l.frames:
		return l.handleFrame(res)

	case <-l.timer.C:
		l.timer.Reset(l.cfg.KeepAliveInterval)
		keepAlive := protocol.MID9999rev1{}
		if err := l.writeMessage(keepAlive); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventOutgoing, Message: keepAlive}, nil
	}
}

// handleFrame turns one frameResult into the event Poll returns, draining
// any additional frames already sitting in the channel into pending so a
// burst of back-to-back inbound frames surfaces as one Incoming event per
// Poll call rather than being coalesced or dropped.
func (l *EventLoop) handleFrame(res frameResult) (Event, error) {
	if res.err != nil {
		return Event{}, res.err
	}
	l.resetTimer()
	first := Event{Kind: EventIncoming, Header: res.header, Message: res.msg}

	for {
		select {
		case next := <-l.frames:
			if next.err != nil {
				l.fatalErr = next.err
				return first, nil
			}
			l.pending = append(l.pending, Event{Kind: EventIncoming, Header: next.header, Message: next.msg})
		default:
			return first, nil
		}
	}
}

func (l *EventLoop) writeMessage(msg protocol.Message) error {
	frame, err := protocol.EncodeMessage(msg, protocol.HeaderOverrides{})
	if err != nil {
		return fmt.Errorf("client: encode message: %w", err)
	}
	frame = append(frame, 0x00)
	if _, err := l.conn.Write(frame); err != nil {
		return fmt.Errorf("client: write to %s: %w", l.cfg.Addr, err)
	}
	return nil
}

func (l *EventLoop) resetTimer() {
	if !l.timer.Stop() {
		select {
		case <-l.timer.C:
		default:
		}
	}
	l.timer.Reset(l.cfg.KeepAliveInterval)
}
